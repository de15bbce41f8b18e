package loaders

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/resources"
)

type SpriteSheetLoader struct{}

// DecodeSpriteSheet parses a TOML sprite sheet. Unknown keys are rejected so
// typos in hand-edited files surface instead of silently dropping data.
func DecodeSpriteSheet(data []byte) (*resources.SpriteSheetConfig, error) {
	config := &resources.SpriteSheetConfig{}
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	if config.Grid.X <= 0 || config.Grid.Y <= 0 {
		return nil, fmt.Errorf("grid %s: %w", config.Grid, core.ErrInvalidGrid)
	}
	return config, nil
}

func (sl *SpriteSheetLoader) Load(path string, params interface{}) (*resources.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config, err := DecodeSpriteSheet(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite sheet %s: %w", path, err)
	}

	return &resources.Resource{
		LoaderID: resources.ResourceTypeSpriteSheet,
		Name:     filepath.Base(path),
		FullPath: path,
		DataSize: uint64(len(data)),
		Data:     config,
	}, nil
}

func (sl *SpriteSheetLoader) Unload(r *resources.Resource) error {
	if r != nil {
		r.Data = nil
	}
	return nil
}

// SaveSpriteSheet writes config as TOML, replacing the file atomically.
func SaveSpriteSheet(path string, config *resources.SpriteSheetConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
