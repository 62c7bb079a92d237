package imaging

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// FrameCache keeps decoded frames in memory, keyed by file path.
//
// Cached frames are never handed out for drawing: Frame returns a fresh
// copy each time, so annotations from one call cannot leak into the next.
//
// FrameCache is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	cache := imaging.NewFrameCache()
//	frame, err := cache.Frame("/path/to/frame.png")
//	if err != nil {
//	    return err
//	}
//	annotator.Visualize(frame, result)
type FrameCache struct {
	mu     sync.RWMutex
	frames map[string]image.Image
}

// NewFrameCache creates an empty frame cache.
func NewFrameCache() *FrameCache {
	return &FrameCache{
		frames: make(map[string]image.Image),
	}
}

// Load returns the decoded frame at path, reading it from disk on first
// use. The returned image is shared and must be treated as read-only.
//
// Supported formats are PNG, JPEG and BMP. Different spellings of the same
// path produce separate cache entries.
func (c *FrameCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.frames[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imgio.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open frame %s", path)
	}

	c.mu.Lock()
	c.frames[path] = img
	c.mu.Unlock()

	return img, nil
}

// Frame returns a mutable copy of the frame at path. The copy owns its
// pixels; drawing on it leaves the cached frame untouched.
func (c *FrameCache) Frame(path string) (*image.NRGBA, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}

// Len reports the number of cached frames.
func (c *FrameCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.frames)
}

// Evict removes the frame cached under path, if any.
func (c *FrameCache) Evict(path string) {
	c.mu.Lock()
	delete(c.frames, path)
	c.mu.Unlock()
}

// Clear removes every cached frame.
func (c *FrameCache) Clear() {
	c.mu.Lock()
	c.frames = make(map[string]image.Image)
	c.mu.Unlock()
}

// FrameInfo describes a frame file.
type FrameInfo struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"` // from the file extension
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// LoadFrameInfo loads the frame at path through cache and describes it.
func LoadFrameInfo(cache *FrameCache, path string) (*FrameInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat frame")
	}

	bounds := img.Bounds()
	return &FrameInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        formatFromExt(path),
		FileSizeBytes: stat.Size(),
	}, nil
}

// Dimensions is the width and height of a frame.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the size of the frame at path.
func GetDimensions(cache *FrameCache, path string) (*Dimensions, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	return &Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".bmp":
		return "bmp"
	default:
		return "unknown"
	}
}
