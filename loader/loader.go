// Package loader fetches resources over HTTP, caching them by URL and reporting progress to a LoadingManager.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/h2non/filetype"
	"github.com/solarlune/prism/logging"
	"golang.org/x/sync/singleflight"
)

// ErrHTTPStatus is returned (wrapped) when a server answers with an error status (400 or above).
var ErrHTTPStatus = errors.New("http error status")

// Response types a Loader can decode bodies into.
const (
	ResponseText        = "text"        // ResponseText returns the body as a string. This is the default.
	ResponseArrayBuffer = "arraybuffer" // ResponseArrayBuffer returns the body as a []byte.
	ResponseJSON        = "json"        // ResponseJSON decodes the body as JSON into an any.
	ResponseBlob        = "blob"        // ResponseBlob returns the body as a Blob.
)

// Cross-origin modes.
const (
	CrossOriginAnonymous      = "anonymous"       // CrossOriginAnonymous drops credential headers from requests.
	CrossOriginUseCredentials = "use-credentials" // CrossOriginUseCredentials sends credential headers.
)

var credentialHeaders = []string{"Authorization", "Cookie", "Proxy-Authorization"}

// Blob is a response body with its MIME type. The MIME type comes from the Content-Type header, or is sniffed from
// the data if the server didn't send one.
type Blob struct {
	Data []byte
	MIME string
}

// ProgressEvent reports how much of a response body has been read.
type ProgressEvent struct {
	URL              string
	Loaded           int64
	Total            int64 // Total is the Content-Length, or -1 if it's unknown.
	LengthComputable bool
}

// Loader loads resources by URL.
//
// A Load for a URL that's already in the Cache calls onLoad right away, on the calling goroutine, without making a
// request or notifying the Manager. Otherwise the Manager is told the item started, the resource is requested on a
// new goroutine, and on completion the result is cached, handed to onLoad, and the item ended. Failures (transport
// errors and error statuses) go to onError, and the Manager gets ItemError followed by ItemEnd.
//
// Concurrent loads of the same URL that miss the cache share a single request.
type Loader struct {
	Manager *LoadingManager
	Cache   *Cache
	Client  *http.Client
	Header  http.Header // Header holds extra headers sent with each request.
	Logger  logging.Logger

	mu           sync.RWMutex
	responseType string
	crossOrigin  string

	group singleflight.Group
}

// New creates a Loader reporting to the given LoadingManager, using DefaultLoadingManager if manager is nil.
func New(manager *LoadingManager) *Loader {
	if manager == nil {
		manager = DefaultLoadingManager
	}
	return &Loader{
		Manager: manager,
		Cache:   DefaultCache,
		Client:  http.DefaultClient,
		Header:  http.Header{},
		Logger:  logging.NewNopLogger(),
	}
}

// SetResponseType sets how response bodies are decoded; see the Response constants.
func (l *Loader) SetResponseType(value string) {
	l.mu.Lock()
	l.responseType = value
	l.mu.Unlock()
}

// ResponseType returns the response type set with SetResponseType.
func (l *Loader) ResponseType() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.responseType
}

// SetCrossOrigin sets the cross-origin mode; see the CrossOrigin constants.
func (l *Loader) SetCrossOrigin(value string) {
	l.mu.Lock()
	l.crossOrigin = value
	l.mu.Unlock()
}

// CrossOrigin returns the cross-origin mode set with SetCrossOrigin.
func (l *Loader) CrossOrigin() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.crossOrigin
}

// Load loads the resource at url. Any of the callbacks may be nil. See Loader for how cache hits, progress and failures are reported.
func (l *Loader) Load(url string, onLoad func(any), onProgress func(ProgressEvent), onError func(error)) {

	if cached, ok := l.Cache.Get(url); ok {
		l.Logger.Debugf("loader: %s served from cache", url)
		if onLoad != nil {
			onLoad(cached)
		}
		return
	}

	l.Manager.ItemStart(url)

	go func() {

		response, err := l.fetch(context.Background(), url, onProgress)

		if err != nil {
			l.Logger.Warnf("loader: couldn't load %s: %s", url, err)
			if onError != nil {
				onError(err)
			}
			l.Manager.ItemError(url, err)
			l.Manager.ItemEnd(url)
			return
		}

		if onLoad != nil {
			onLoad(response)
		}
		l.Manager.ItemEnd(url)

	}()

}

// Fetch loads the resource at url and returns it, blocking until it's done. Cached resources are returned without a
// request. Fetch doesn't notify the Manager.
func (l *Loader) Fetch(ctx context.Context, url string) (any, error) {
	if cached, ok := l.Cache.Get(url); ok {
		return cached, nil
	}
	return l.fetch(ctx, url, nil)
}

// fetch shares one request among concurrent callers for the same url and response type. Only the caller that
// starts the request gets progress events.
func (l *Loader) fetch(ctx context.Context, url string, onProgress func(ProgressEvent)) (any, error) {
	responseType := l.ResponseType()
	response, err, shared := l.group.Do(responseType+" "+url, func() (any, error) {
		response, err := l.request(ctx, url, responseType, onProgress)
		if err != nil {
			return nil, err
		}
		l.Cache.Add(url, response)
		return response, nil
	})
	if shared {
		l.Logger.Debugf("loader: shared request for %s", url)
	}
	return response, err
}

func (l *Loader) request(ctx context.Context, url, responseType string, onProgress func(ProgressEvent)) (any, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	anonymous := l.CrossOrigin() == CrossOriginAnonymous
	for key, values := range l.Header {
		if anonymous && isCredentialHeader(key) {
			continue
		}
		req.Header[key] = append([]string(nil), values...)
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	l.Logger.Debugf("loader: GET %s", url)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s: %s", ErrHTTPStatus, url, resp.Status)
	}

	data, err := readBody(resp, url, onProgress)
	if err != nil {
		return nil, err
	}

	return l.decode(data, responseType, resp.Header.Get("Content-Type"))

}

const maxPreallocation = 1 << 20

func readBody(resp *http.Response, url string, onProgress func(ProgressEvent)) ([]byte, error) {

	// Content-Length is only a hint; a server can claim any size.
	buf := bytes.Buffer{}
	if resp.ContentLength > 0 {
		buf.Grow(int(min(resp.ContentLength, maxPreallocation)))
	}

	chunk := make([]byte, 32*1024)

	for {
		n, err := resp.Body.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if onProgress != nil {
				onProgress(ProgressEvent{
					URL:              url,
					Loaded:           int64(buf.Len()),
					Total:            resp.ContentLength,
					LengthComputable: resp.ContentLength >= 0,
				})
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", url, err)
		}
	}

	return buf.Bytes(), nil

}

func (l *Loader) decode(data []byte, responseType, contentType string) (any, error) {

	switch responseType {

	case "", ResponseText:
		return string(data), nil

	case ResponseArrayBuffer:
		return data, nil

	case ResponseJSON:
		var out any
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("error decoding JSON: %w", err)
		}
		return out, nil

	case ResponseBlob:
		return Blob{Data: data, MIME: mimeOf(data, contentType)}, nil

	}

	l.Logger.Warnf("loader: unknown response type %q, returning text", responseType)
	return string(data), nil

}

func mimeOf(data []byte, contentType string) string {
	if contentType != "" {
		return contentType
	}
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	return "application/octet-stream"
}

func isCredentialHeader(key string) bool {
	for _, h := range credentialHeaders {
		if strings.EqualFold(h, key) {
			return true
		}
	}
	return false
}
