package core

import (
	"errors"
)

var (
	ErrEmptySelection      = errors.New("selection is empty")
	ErrOutOfBounds         = errors.New("cells lie outside the atlas grid")
	ErrSpriteNotFound      = errors.New("sprite not found")
	ErrDuplicateSprite     = errors.New("a sprite with this name already exists")
	ErrAtlasNotLoaded      = errors.New("atlas is not loaded")
	ErrInvalidGrid         = errors.New("atlas grid must be positive on both axes")
	ErrUnknownResourceType = errors.New("unknown resource type")
	ErrLoaderNotFound      = errors.New("no loader registered for resource type")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrAssetManagerClosed  = errors.New("asset manager already closed")
	ErrQueueFull           = errors.New("queue is full")
	ErrQueueEmpty          = errors.New("queue is empty")
)
