package prism

import (
	"encoding/json"
	"image"
	"strings"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is an image resource that Materials refer to through their texture slots (Map, NormalMap, etc).
// Materials never own Textures; cloning a Material copies the reference, not the Texture.
type Texture struct {
	uuid        string
	Name        string
	SourceURL   string      // SourceURL is where the Texture was loaded from, if it was loaded through a TextureLoader.
	Source      image.Image // Source is the decoded image data.
	NeedsUpdate bool        // NeedsUpdate is set whenever Source changes and the GPU image should be rebuilt.

	ebitenImage *ebiten.Image
}

// NewTexture creates a new Texture with the name and source image given. img can be nil if the image isn't available yet.
func NewTexture(name string, img image.Image) *Texture {
	return &Texture{
		uuid:        generateUUID(),
		Name:        name,
		Source:      img,
		NeedsUpdate: img != nil,
	}
}

// UUID returns the Texture's unique identifier.
func (tex *Texture) UUID() string {
	return tex.uuid
}

// SetSource replaces the Texture's source image and flags it for a GPU update.
func (tex *Texture) SetSource(img image.Image) {
	tex.Source = img
	tex.NeedsUpdate = true
}

// Size returns the width and height of the source image, or 0, 0 if there isn't one.
func (tex *Texture) Size() (int, int) {
	if tex.Source == nil {
		return 0, 0
	}
	b := tex.Source.Bounds()
	return b.Dx(), b.Dy()
}

// EbitenImage returns the Texture's source as an *ebiten.Image, creating (or recreating, if NeedsUpdate is set) it
// as necessary. It returns nil if the Texture has no source image.
func (tex *Texture) EbitenImage() *ebiten.Image {
	if tex.Source == nil {
		return nil
	}
	if tex.ebitenImage == nil || tex.NeedsUpdate {
		if tex.ebitenImage != nil {
			tex.ebitenImage.Deallocate()
		}
		tex.ebitenImage = ebiten.NewImageFromImage(tex.Source)
		tex.NeedsUpdate = false
	}
	return tex.ebitenImage
}

// Dispose frees the GPU image, if one was created.
func (tex *Texture) Dispose() {
	if tex.ebitenImage != nil {
		tex.ebitenImage.Deallocate()
		tex.ebitenImage = nil
	}
}

// MarshalJSON writes the Texture as its uuid; the image data lives elsewhere.
func (tex *Texture) MarshalJSON() ([]byte, error) {
	return json.Marshal(tex.uuid)
}

func generateUUID() string {
	return strings.ToUpper(uuid.NewString())
}
