package prism

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	"github.com/solarlune/prism/loader"
	"golang.org/x/sync/errgroup"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotAnImage is returned (wrapped) when a loaded resource isn't a decodable image.
var ErrNotAnImage = errors.New("resource is not an image")

// TextureLoader loads Textures through a loader.Loader. PNG, JPEG, GIF, BMP, TIFF and WebP images are supported.
type TextureLoader struct {
	Loader *loader.Loader
}

// NewTextureLoader creates a TextureLoader reporting to the given LoadingManager (the default one if nil).
// Textures are cached separately from other resources, as raw bytes, under their URL.
func NewTextureLoader(manager *loader.LoadingManager) *TextureLoader {
	l := loader.New(manager)
	l.Cache = loader.NewCache()
	l.SetResponseType(loader.ResponseArrayBuffer)
	return &TextureLoader{Loader: l}
}

// Load loads and decodes the image at url into a new Texture, handing it to onLoad. Decoding errors go to onError,
// like transport errors do. Any callback may be nil.
func (tl *TextureLoader) Load(url string, onLoad func(*Texture), onProgress func(loader.ProgressEvent), onError func(error)) {
	tl.Loader.Load(url, func(response any) {
		tex, err := textureFromResponse(url, response)
		if err != nil {
			logger.Warnf("TextureLoader: %s", err)
			if onError != nil {
				onError(err)
			}
			return
		}
		if onLoad != nil {
			onLoad(tex)
		}
	}, onProgress, onError)
}

// Fetch loads and decodes the image at url, blocking until it's done.
func (tl *TextureLoader) Fetch(ctx context.Context, url string) (*Texture, error) {
	response, err := tl.Loader.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return textureFromResponse(url, response)
}

// FetchAll loads every URL concurrently, returning the Textures in the same order. The first error cancels the
// remaining loads and is returned.
func (tl *TextureLoader) FetchAll(ctx context.Context, urls ...string) ([]*Texture, error) {
	textures := make([]*Texture, len(urls))
	group, ctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		group.Go(func() error {
			tex, err := tl.Fetch(ctx, url)
			if err != nil {
				return err
			}
			textures[i] = tex
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return textures, nil
}

func textureFromResponse(url string, response any) (*Texture, error) {

	data, ok := response.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: %s: got %T", ErrNotAnImage, url, response)
	}

	img, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}

	tex := NewTexture(url, img)
	tex.SourceURL = url
	return tex, nil

}

// DecodeImage decodes image data in any of the supported formats.
func DecodeImage(data []byte) (image.Image, error) {
	if !filetype.IsImage(data) {
		return nil, ErrNotAnImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAnImage, err)
	}
	return img, nil
}
