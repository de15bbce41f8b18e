package engine

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/math"
	"github.com/spaghettifunk/dungeon-sprites/engine/ui"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"start_height"`
	// The application name used in windowing, if applicable.
	Name     string `toml:"name"`
	LogLevel string `toml:"log_level"`
	// Sleep away the rest of each frame instead of spinning.
	LimitFrames bool `toml:"limit_frames"`

	// Watched for hot reload.
	AssetsDir       string `toml:"assets_dir"`
	AtlasPath       string `toml:"atlas"`
	SpriteSheetPath string `toml:"sprite_sheet"`
	ExportDir       string `toml:"export_dir"`
	// Workers encoding exported sprites in the background.
	ExportWorkers int `toml:"export_workers"`
	// Number of cells along each axis of the atlas.
	Grid math.Vec2i `toml:"grid"`

	PreviewSize       float32   `toml:"preview_size"`
	PreviewBackground math.Vec4 `toml:"preview_background"`

	// A .ttf/.otf/.ttc or BMFont .fnt file for labels. Empty means Go Regular.
	FontPath string  `toml:"font"`
	FontSize float32 `toml:"font_size"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:         100,
		StartPosY:         100,
		StartWidth:        1280,
		StartHeight:       720,
		Name:              "dungeon-sprites",
		LogLevel:          "info",
		LimitFrames:       true,
		AssetsDir:         "assets",
		AtlasPath:         "assets/atlas.png",
		SpriteSheetPath:   "assets/sprites.toml",
		ExportDir:         "export",
		ExportWorkers:     2,
		Grid:              math.NewVec2iSplat(8),
		PreviewSize:       128,
		PreviewBackground: math.NewVec4(0, 0, 0, 1),
		FontSize:          ui.DefaultFontSize,
	}
}

// LoadApplicationConfig reads path over the defaults. A missing file is not an
// error; the defaults are returned as they are.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			core.LogInfo("no config at %s, using defaults", path)
			return config, nil
		}
		return nil, err
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.Grid.X <= 0 || c.Grid.Y <= 0 {
		return fmt.Errorf("grid %s: %w", c.Grid, core.ErrInvalidGrid)
	}
	if c.StartWidth == 0 || c.StartHeight == 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.StartWidth, c.StartHeight)
	}
	if c.PreviewSize <= 0 {
		return fmt.Errorf("preview size must be positive, got %g", c.PreviewSize)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %g", c.FontSize)
	}
	if c.ExportWorkers < 1 {
		return fmt.Errorf("export_workers must be at least 1, got %d", c.ExportWorkers)
	}
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level is the parsed LogLevel, falling back to info.
func (c *ApplicationConfig) Level() core.LogLevel {
	level, err := core.ParseLogLevel(c.LogLevel)
	if err != nil {
		return core.InfoLevel
	}
	return level
}
