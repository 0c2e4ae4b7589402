package assets

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html":    {Data: []byte("<html>snake</html>")},
		"styles.css":    {Data: []byte("body{}")},
		"app.js":        {Data: []byte("// game")},
		"manifest.json": {Data: []byte(`{"name":"Friends Snake"}`)},
		"extra.txt":     {Data: []byte("not in the manifest")},
	}
}

var testManifest = []string{"/", "/index.html", "/styles.css", "/app.js", "/manifest.json"}

// countingFetcher records fetched paths.
type countingFetcher struct {
	Fetcher
	paths []string
}

func (c *countingFetcher) Fetch(ctx context.Context, p string) (*Entry, error) {
	c.paths = append(c.paths, p)
	return c.Fetcher.Fetch(ctx, p)
}

func TestInstallCachesManifest(t *testing.T) {
	c := NewCache(CacheName)
	if err := c.Install(context.Background(), DirFetcher{FS: testFS()}, testManifest); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if c.Len() != len(testManifest) {
		t.Errorf("Expected %d entries, got %d", len(testManifest), c.Len())
	}
	if _, ok := c.Match("/index.html"); ok {
		t.Error("Expected no match before activation")
	}
	if err := c.Activate(); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	e, ok := c.Match("/")
	if !ok || string(e.Body) != "<html>snake</html>" {
		t.Errorf("Expected / to resolve to index.html, got %v %v", e, ok)
	}
	if e, _ := c.Match("/styles.css"); e.ContentType != "text/css; charset=utf-8" {
		t.Errorf("Expected css content type, got %q", e.ContentType)
	}
}

func TestInstallIsAllOrNothing(t *testing.T) {
	c := NewCache(CacheName)
	ctx := context.Background()
	if err := c.Install(ctx, DirFetcher{FS: testFS()}, testManifest); err != nil {
		t.Fatalf("Install: %v", err)
	}

	err := c.Install(ctx, DirFetcher{FS: testFS()}, append(testManifest, "/assets/bgm.wav"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if c.Len() != len(testManifest) {
		t.Errorf("Expected previous %d entries kept, got %d", len(testManifest), c.Len())
	}
}

func TestActivateRequiresInstall(t *testing.T) {
	c := NewCache(CacheName)
	if err := c.Activate(); !errors.Is(err, ErrNotInstalled) {
		t.Errorf("Expected ErrNotInstalled, got %v", err)
	}
	if c.Active() {
		t.Error("Expected cache to stay inactive")
	}
}

func newTestServer(t *testing.T, activate bool) (*Server, *countingFetcher) {
	t.Helper()
	c := NewCache(CacheName)
	if err := c.Install(context.Background(), DirFetcher{FS: testFS()}, testManifest); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if activate {
		if err := c.Activate(); err != nil {
			t.Fatalf("Activate: %v", err)
		}
	}
	network := &countingFetcher{Fetcher: DirFetcher{FS: testFS()}}
	s := NewServer(c, network)
	s.SetLogger(log.New(io.Discard, "", 0))
	return s, network
}

func TestServerServesFromCacheFirst(t *testing.T) {
	s, network := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	w := httptest.NewRecorder()
	s.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get("X-Cache") != "HIT" {
		t.Errorf("Expected cache hit, got %q", w.Header().Get("X-Cache"))
	}
	if w.Body.String() != "// game" {
		t.Errorf("Unexpected body %q", w.Body.String())
	}
	if len(network.paths) != 0 {
		t.Errorf("Expected no network fetch, got %v", network.paths)
	}
}

func TestServerPassesThroughMisses(t *testing.T) {
	tests := []struct {
		name     string
		activate bool
		path     string
		status   int
		xcache   string
	}{
		{"uncached path", true, "/extra.txt", http.StatusOK, "MISS"},
		{"inactive cache", false, "/app.js", http.StatusOK, "MISS"},
		{"missing everywhere", true, "/nope.png", http.StatusNotFound, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, network := newTestServer(t, tc.activate)
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()
			s.Routes().ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, w.Code)
			}
			if got := w.Header().Get("X-Cache"); got != tc.xcache {
				t.Errorf("Expected X-Cache %q, got %q", tc.xcache, got)
			}
			if len(network.paths) != 1 || network.paths[0] != tc.path {
				t.Errorf("Expected one network fetch of %s, got %v", tc.path, network.paths)
			}
		})
	}
}

func TestServerHeartbeat(t *testing.T) {
	s, _ := newTestServer(t, true)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Routes().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestHTTPFetcher(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/index.html":
			w.Header().Set("Content-Type", "text/html")
			io.WriteString(w, "upstream")
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	f := HTTPFetcher{Base: upstream.URL + "/", Client: upstream.Client()}
	ctx := context.Background()

	e, err := f.Fetch(ctx, "/index.html")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(e.Body) != "upstream" || e.ContentType != "text/html" {
		t.Errorf("Unexpected entry %q %q", e.Body, e.ContentType)
	}
	if _, err := f.Fetch(ctx, "/missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := f.Fetch(ctx, "/broken"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Expected a non-404 upstream error, got %v", err)
	}
}
