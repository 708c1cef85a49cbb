package prism

import (
	"bytes"
	"context"
	"image"
	imgcolor "image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/solarlune/prism/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, imgcolor.NRGBA{R: uint8(x * 60), G: uint8(y * 60), B: 255, A: 255})
		}
	}
	buf := bytes.Buffer{}
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTextureServer(t *testing.T) *httptest.Server {
	t.Helper()
	small := encodeTestPNG(t, 4, 2)
	large := encodeTestPNG(t, 8, 8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/small.png":
			w.Write(small)
		case "/large.png":
			w.Write(large)
		case "/notes.txt":
			w.Write([]byte("definitely not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestTextureLoaderLoad(t *testing.T) {

	server := newTextureServer(t)
	tl := NewTextureLoader(loader.NewLoadingManager(nil, nil, nil))

	done := make(chan *Texture, 1)
	failed := make(chan error, 1)

	tl.Load(server.URL+"/small.png", func(tex *Texture) { done <- tex }, nil, func(err error) { failed <- err })

	select {
	case tex := <-done:
		w, h := tex.Size()
		assert.Equal(t, 4, w)
		assert.Equal(t, 2, h)
		assert.Equal(t, server.URL+"/small.png", tex.SourceURL)
		assert.True(t, tex.NeedsUpdate)
		assert.NotEmpty(t, tex.UUID())
	case err := <-failed:
		t.Fatal(err)
	case <-time.After(5 * time.Second):
		t.Fatal("texture never loaded")
	}

}

func TestTextureLoaderRejectsNonImages(t *testing.T) {

	recordLogs(t)

	server := newTextureServer(t)
	tl := NewTextureLoader(loader.NewLoadingManager(nil, nil, nil))

	_, err := tl.Fetch(context.Background(), server.URL+"/notes.txt")
	assert.ErrorIs(t, err, ErrNotAnImage)

	failed := make(chan error, 1)
	tl.Load(server.URL+"/notes.txt", func(tex *Texture) { t.Error("loaded a text file as a texture") }, nil, func(err error) { failed <- err })

	select {
	case err := <-failed:
		assert.ErrorIs(t, err, ErrNotAnImage)
	case <-time.After(5 * time.Second):
		t.Fatal("no error reported")
	}

}

func TestTextureLoaderFetchAll(t *testing.T) {

	server := newTextureServer(t)
	tl := NewTextureLoader(nil)

	textures, err := tl.FetchAll(context.Background(), server.URL+"/large.png", server.URL+"/small.png")
	require.NoError(t, err)
	require.Len(t, textures, 2)

	w, _ := textures[0].Size()
	assert.Equal(t, 8, w)
	w, _ = textures[1].Size()
	assert.Equal(t, 4, w)

	_, err = tl.FetchAll(context.Background(), server.URL+"/small.png", server.URL+"/missing.png")
	assert.ErrorIs(t, err, loader.ErrHTTPStatus)

}

func TestDecodeImage(t *testing.T) {

	img, err := DecodeImage(encodeTestPNG(t, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())

	_, err = DecodeImage([]byte("GIF89a but truncated"))
	assert.ErrorIs(t, err, ErrNotAnImage)

	_, err = DecodeImage(nil)
	assert.ErrorIs(t, err, ErrNotAnImage)

}
