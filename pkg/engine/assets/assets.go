// Package assets loads images and raw files from the asset directory and
// caches them for the lifetime of the process. Every consumer shares the
// cached value read-only.
//
// A missing or undecodable image never fails the caller: it is replaced by a
// placeholder and the failure is logged once.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"sync"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog"

	"loopescape/pkg/engine/logging"
)

// Placeholder fill for images that could not be loaded.
var colorMissing = color.RGBA{200, 0, 200, 255}

// Cache holds decoded images keyed by their slash-separated asset path.
type Cache struct {
	mu     sync.Mutex
	fsys   fs.FS
	images map[string]image.Image
	failed map[string]bool
	log    zerolog.Logger
}

var (
	sharedMu sync.Mutex
	shared   *Cache
)

// New creates a cache reading from fsys.
func New(fsys fs.FS) *Cache {
	return &Cache{
		fsys:   fsys,
		images: make(map[string]image.Image),
		failed: make(map[string]bool),
		log:    logging.New("assets"),
	}
}

// Init points the process-wide cache at dir. Calling it again replaces the
// cache.
func Init(dir string) *Cache {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	shared = New(os.DirFS(dir))
	return shared
}

// Shared returns the process-wide cache, creating it over ./assets on first
// use.
func Shared() *Cache {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		shared = New(os.DirFS("assets"))
	}
	return shared
}

// Image returns the decoded image at name. ok is false when the image could
// not be loaded, in which case img is nil and the caller picks a fallback.
func (c *Cache) Image(name string) (img image.Image, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images[name]; ok {
		return img, true
	}
	if c.failed[name] {
		return nil, false
	}

	img, err := c.decode(name)
	if err != nil {
		c.failed[name] = true
		c.log.Warn().Err(err).Str("asset", name).Msg("image unavailable, using fallback")
		return nil, false
	}
	c.images[name] = img
	return img, true
}

// ImageOr returns the image at name or a w x h placeholder.
func (c *Cache) ImageOr(name string, w, h int) image.Image {
	if img, ok := c.Image(name); ok {
		return img
	}
	return Placeholder(w, h, colorMissing)
}

func (c *Cache) decode(name string) (image.Image, error) {
	f, err := c.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Open returns a reader for a raw asset such as a sound file.
func (c *Cache) Open(name string) (io.ReadCloser, error) {
	f, err := c.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}

// Exists reports whether name is present in the asset directory.
func (c *Cache) Exists(name string) bool {
	_, err := fs.Stat(c.fsys, name)
	return err == nil
}

// List returns the sorted file names in dir matching the glob pattern.
// A missing directory yields no names.
func (c *Cache) List(dir, pattern string) []string {
	matches, err := fs.Glob(c.fsys, path.Join(dir, pattern))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// Placeholder draws a solid w x h image.
func Placeholder(w, h int, fill color.Color) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(w, h)
	dc.SetColor(fill)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	return dc.Image()
}
