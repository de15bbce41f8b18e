package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/dungeon-sprites/engine/assets/loaders"
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
	"github.com/spaghettifunk/dungeon-sprites/engine/resources"
)

type AssetInfo struct {
	Path       string
	Type       resources.ResourceType
	LastLoaded time.Time
}

type AssetManager struct {
	assets  map[string]AssetInfo
	loaders map[resources.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	started  bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[resources.ResourceType]Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}

	// Register loaders
	am.registerLoader(resources.ResourceTypeImage, &loaders.ImageLoader{})
	am.registerLoader(resources.ResourceTypeSpriteSheet, &loaders.SpriteSheetLoader{})
	am.registerLoader(resources.ResourceTypeSystemFont, &loaders.SystemFontLoader{})
	am.registerLoader(resources.ResourceTypeBitmapFont, &loaders.BitmapFontLoader{})

	return am, nil
}

// Initialize indexes every asset below assetsDir and starts watching it.
func (am *AssetManager) Initialize(assetsDir string) error {
	if err := am.addRecursive(assetsDir); err != nil {
		return err
	}
	am.mutex.Lock()
	am.started = true
	am.mutex.Unlock()
	go am.start()
	return nil
}

// AddRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.closed() {
		return core.ErrAssetManagerClosed
	}
	return am.watchRecursive(name)
}

func (am *AssetManager) closed() bool {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return am.isClosed
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType resources.ResourceType, loader Loader) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.loaders[assetType] = loader
}

// Asset returns the index entry for path.
func (am *AssetManager) Asset(path string) (AssetInfo, bool) {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	asset, exists := am.assets[filepath.Clean(path)]
	return asset, exists
}

// Load an asset using the appropriate loader. Files outside the watched tree
// are loaded too, as long as their extension maps to a loader.
func (am *AssetManager) LoadAsset(path string, params interface{}) (*resources.Resource, error) {
	if am.closed() {
		return nil, core.ErrAssetManagerClosed
	}
	path = filepath.Clean(path)

	resourceType := determineAssetType(path)
	if resourceType == resources.ResourceTypeNone {
		return nil, fmt.Errorf("%s: %w", path, core.ErrUnknownResourceType)
	}

	am.mutex.Lock()
	loader, loaderExists := am.loaders[resourceType]
	if asset, exists := am.assets[path]; exists {
		// Update the loaded time
		asset.LastLoaded = time.Now()
		am.assets[path] = asset
	}
	am.mutex.Unlock()

	if !loaderExists {
		return nil, fmt.Errorf("%s: %w", resourceType, core.ErrLoaderNotFound)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, core.ErrAssetNotFound)
		}
		return nil, err
	}

	core.LogDebug("loading %s asset %s", resourceType, path)
	return loader.Load(path, params)
}

func (am *AssetManager) UnloadAsset(asset *resources.Resource) error {
	am.mutex.RLock()
	loader, exists := am.loaders[asset.LoaderID]
	am.mutex.RUnlock()
	if !exists {
		return fmt.Errorf("%s: %w", asset.LoaderID, core.ErrLoaderNotFound)
	}
	return loader.Unload(asset)
}

// Shutdown stops the watcher goroutine and releases the fsnotify handle.
func (am *AssetManager) Shutdown() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return nil
	}
	am.isClosed = true
	started := am.started
	am.mutex.Unlock()

	close(am.done)
	if !started {
		return am.fsnotify.Close()
	}
	<-am.stopped
	return nil
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {

		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			am.handleWatchEvent(e)

		case e, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", e)

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

func (am *AssetManager) handleWatchEvent(e fsnotify.Event) {
	path := filepath.Clean(e.Name)

	s, err := os.Stat(path)
	if err == nil && s.IsDir() {
		if e.Op&fsnotify.Create != 0 {
			if err := am.watchRecursive(path); err != nil {
				core.LogWarn("failed to watch %s: %s", path, err)
			}
		}
		return
	}

	// Handle create or modify events
	if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
		if am.handleFileEvent(path) {
			core.LogDebug("asset changed: %s", path)
			core.EventFire(core.EventContext{
				Type: core.EVENT_CODE_ASSET_RELOADED,
				Data: &core.AssetEvent{Path: path},
			})
		}
	}
	// Can't stat a deleted path, so treat it as both a file and a watched directory.
	if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		am.removeAsset(path)
		_ = am.fsnotify.Remove(path)
	}
}

// watchRecursive adds all directories under the given one to the watch list
// and indexes the files it finds.
func (am *AssetManager) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(filepath.Clean(walkPath))
		return nil
	})
}

// Handle the creation or modification of a file. Returns true if the file is
// a known asset type.
func (am *AssetManager) handleFileEvent(path string) bool {
	assetType := determineAssetType(path)
	if assetType == resources.ResourceTypeNone {
		return false
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.assets[path] = AssetInfo{
		Path:       path,
		Type:       assetType,
		LastLoaded: time.Now(),
	}
	return true
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, path)
}

func determineAssetType(path string) resources.ResourceType {
	switch filepath.Ext(path) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return resources.ResourceTypeImage
	case ".toml":
		return resources.ResourceTypeSpriteSheet
	case ".ttf", ".otf", ".ttc", ".otc":
		return resources.ResourceTypeSystemFont
	case ".fnt":
		return resources.ResourceTypeBitmapFont
	default:
		return resources.ResourceTypeNone
	}
}
