// Package assets provides centralized loading and caching of character frame images.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// Manager loads character frame images from a base directory and caches them,
// ensuring each image is decoded only once and reused for every later draw.
//
// It doubles as the image resolver for character construction: Resolve reports
// whether an image identifier is loadable, so broken identifiers fail when the
// character is built instead of mid-playback.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal cache uses a standard
// Go map. For the single-threaded game loop this library targets, no
// synchronization is needed; concurrent loaders must synchronize externally
// or preload everything up front.
//
// Usage:
//
//	m := assets.NewManager("assets/eyes")
//	img, err := m.Image("eye_open.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type Manager struct {
	baseDir    string
	imageCache map[string]*ebiten.Image // Cache for loaded images: id -> Image
}

// NewManager creates a Manager rooted at the given base directory.
// Image identifiers are resolved as paths relative to it.
func NewManager(baseDir string) *Manager {
	return &Manager{
		baseDir:    baseDir,
		imageCache: make(map[string]*ebiten.Image),
	}
}

// BaseDir returns the directory image identifiers are resolved against.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// Image loads the image identified by id and caches it for future use.
// If the image has already been loaded, the cached version is returned.
// Supported formats: PNG and JPEG.
//
// Parameters:
//   - id: The image identifier, a path relative to the base directory.
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened, decoded, or converted.
func (m *Manager) Image(id string) (*ebiten.Image, error) {
	if cached, exists := m.imageCache[id]; exists {
		return cached, nil
	}

	path := filepath.Join(m.baseDir, id)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	m.imageCache[id] = ebitenImg

	return ebitenImg, nil
}

// Get retrieves a previously loaded image from the cache.
// It returns nil if the image has not been loaded yet; use Image to load
// and cache it first.
func (m *Manager) Get(id string) *ebiten.Image {
	return m.imageCache[id]
}

// Resolve reports whether the image identifier is loadable.
// It loads and caches the image as a side effect, so a successfully resolved
// identifier never touches the filesystem again at playback time.
// Resolve satisfies the core library's image resolver interface.
func (m *Manager) Resolve(id string) error {
	_, err := m.Image(id)
	return err
}

// Preload loads every identifier in ids, stopping at the first failure.
// Useful for warming the cache before the game loop starts.
func (m *Manager) Preload(ids []string) error {
	for _, id := range ids {
		if _, err := m.Image(id); err != nil {
			return fmt.Errorf("failed to preload %s: %w", id, err)
		}
	}
	return nil
}

// Count returns the number of cached images.
func (m *Manager) Count() int {
	return len(m.imageCache)
}
