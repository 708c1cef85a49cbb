package loader

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(manager *LoadingManager) *Loader {
	l := New(manager)
	l.Cache = NewCache()
	return l
}

type loadResult struct {
	value any
	err   error
}

func loadAndWait(t *testing.T, l *Loader, url string, onProgress func(ProgressEvent)) loadResult {
	t.Helper()
	done := make(chan loadResult, 1)
	l.Load(url,
		func(v any) { done <- loadResult{value: v} },
		onProgress,
		func(err error) { done <- loadResult{err: err} },
	)
	select {
	case r := <-done:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("load timed out")
	}
	return loadResult{}
}

func TestLoadCacheHitIsSynchronous(t *testing.T) {

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	var starts atomic.Int32
	ended := make(chan struct{})
	manager := NewLoadingManager(func() { close(ended) }, nil, nil)
	manager.OnStart = func(url string, loaded, total int) { starts.Add(1) }

	l := newTestLoader(manager)

	first := loadAndWait(t, l, server.URL, nil)
	require.NoError(t, first.err)
	assert.Equal(t, "hello", first.value)
	<-ended

	called := false
	var second any
	l.Load(server.URL, func(v any) {
		called = true
		second = v
	}, nil, nil)

	// onLoad must already have run by the time Load returns.
	assert.True(t, called)
	assert.Equal(t, first.value, second)
	assert.EqualValues(t, 1, hits.Load())
	assert.EqualValues(t, 1, starts.Load())

	loaded, total := manager.Counts()
	assert.Equal(t, 1, loaded)
	assert.Equal(t, 1, total)

}

func TestLoadErrorStatus(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	var managerErr error
	var mu sync.Mutex
	loadFinished := make(chan struct{})

	manager := NewLoadingManager(
		func() { close(loadFinished) },
		nil,
		func(url string, err error) {
			mu.Lock()
			managerErr = err
			mu.Unlock()
		},
	)

	l := newTestLoader(manager)

	result := loadAndWait(t, l, server.URL+"/missing.json", nil)
	require.Error(t, result.err)
	assert.ErrorIs(t, result.err, ErrHTTPStatus)
	assert.Nil(t, result.value)

	select {
	case <-loadFinished:
	case <-time.After(5 * time.Second):
		t.Fatal("manager never finished")
	}

	mu.Lock()
	assert.ErrorIs(t, managerErr, ErrHTTPStatus)
	mu.Unlock()

	loaded, total := manager.Counts()
	assert.Equal(t, 1, loaded)
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, l.Cache.Len())

}

func TestLoadTransportError(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	l := newTestLoader(NewLoadingManager(nil, nil, nil))
	result := loadAndWait(t, l, url, nil)
	assert.Error(t, result.err)
	assert.NotErrorIs(t, result.err, ErrHTTPStatus)

}

func TestLoadBogusContentLength(t *testing.T) {

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				http.ReadRequest(bufio.NewReader(conn))
				conn.Write([]byte("HTTP/1.1 200 OK\r\nContent-Length: 4611686018427387904\r\nConnection: close\r\n\r\nhi"))
			}(conn)
		}
	}()

	url := "http://" + listener.Addr().String() + "/huge.bin"

	ended := make(chan struct{})
	manager := NewLoadingManager(func() { close(ended) }, nil, nil)
	l := newTestLoader(manager)
	l.SetResponseType(ResponseArrayBuffer)

	result := loadAndWait(t, l, url, nil)
	assert.Error(t, result.err)
	assert.Nil(t, result.value)

	select {
	case <-ended:
	case <-time.After(5 * time.Second):
		t.Fatal("manager never finished")
	}
	assert.Equal(t, 0, l.Cache.Len())

	_, err = l.Fetch(context.Background(), url)
	assert.Error(t, err)

}

func TestResponseTypes(t *testing.T) {

	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"name": "brick", "size": 2}`))
		case "/image":
			// No Content-Type; the loader has to sniff it.
			w.Header()["Content-Type"] = nil
			w.Write(png)
		default:
			w.Write([]byte("plain"))
		}
	}))
	defer server.Close()

	ctx := context.Background()

	l := newTestLoader(nil)
	l.SetResponseType(ResponseJSON)
	v, err := l.Fetch(ctx, server.URL+"/data.json")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "brick", "size": 2.0}, v)

	l = newTestLoader(nil)
	l.SetResponseType(ResponseArrayBuffer)
	v, err = l.Fetch(ctx, server.URL+"/bytes")
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), v)

	l = newTestLoader(nil)
	l.SetResponseType(ResponseBlob)
	v, err = l.Fetch(ctx, server.URL+"/image")
	require.NoError(t, err)
	require.IsType(t, Blob{}, v)
	assert.Equal(t, "image/png", v.(Blob).MIME)
	assert.Equal(t, png, v.(Blob).Data)

	l = newTestLoader(nil)
	v, err = l.Fetch(ctx, server.URL+"/text")
	require.NoError(t, err)
	assert.Equal(t, "plain", v)

}

func TestCrossOrigin(t *testing.T) {

	var mu sync.Mutex
	auth := []string{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		auth = append(auth, r.Header.Get("Authorization"))
		mu.Unlock()
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	ctx := context.Background()

	l := newTestLoader(nil)
	l.Header.Set("Authorization", "Bearer secret")
	l.SetCrossOrigin(CrossOriginAnonymous)
	_, err := l.Fetch(ctx, server.URL+"/a")
	require.NoError(t, err)

	l.SetCrossOrigin(CrossOriginUseCredentials)
	_, err = l.Fetch(ctx, server.URL+"/b")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"", "Bearer secret"}, auth)

}

func TestLoadProgress(t *testing.T) {

	body := strings.Repeat("x", 100*1024)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	var mu sync.Mutex
	events := []ProgressEvent{}

	l := newTestLoader(NewLoadingManager(nil, nil, nil))
	result := loadAndWait(t, l, server.URL, func(e ProgressEvent) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})
	require.NoError(t, result.err)

	mu.Lock()
	defer mu.Unlock()

	require.NotEmpty(t, events)
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i].Loaded, events[i-1].Loaded)
	}
	last := events[len(events)-1]
	assert.EqualValues(t, len(body), last.Loaded)
	assert.Equal(t, server.URL, last.URL)

}

func TestFetchSharesConcurrentRequests(t *testing.T) {

	var hits atomic.Int32
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		w.Write([]byte("shared"))
	}))
	defer server.Close()

	l := newTestLoader(nil)

	wg := sync.WaitGroup{}
	results := make([]any, 8)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := l.Fetch(context.Background(), server.URL)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, hits.Load())
	for _, r := range results {
		assert.Equal(t, "shared", r)
	}

}

func TestCache(t *testing.T) {

	cache := NewCache()
	_, ok := cache.Get("a")
	assert.False(t, ok)

	cache.Add("a", 1)
	cache.Add("b", "two")
	v, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, cache.Len())

	cache.Remove("a")
	_, ok = cache.Get("a")
	assert.False(t, ok)

	cache.Clear()
	assert.Equal(t, 0, cache.Len())

}

func TestLoadingManagerOnLoad(t *testing.T) {

	finished := 0
	progress := []int{}

	manager := NewLoadingManager(
		func() { finished++ },
		func(url string, loaded, total int) { progress = append(progress, loaded) },
		nil,
	)

	manager.ItemStart("a")
	manager.ItemStart("b")
	manager.ItemEnd("a")
	assert.Equal(t, 0, finished)
	manager.ItemEnd("b")
	assert.Equal(t, 1, finished)
	assert.Equal(t, []int{1, 2}, progress)

}
