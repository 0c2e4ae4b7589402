package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"
)

// Entry is one cached response.
type Entry struct {
	Path        string
	ContentType string
	Body        []byte
	ModTime     time.Time
}

// Fetcher retrieves an asset by request path. Implementations return an
// error wrapping ErrNotFound when the path does not exist.
type Fetcher interface {
	Fetch(ctx context.Context, p string) (*Entry, error)
}

// cleanPath maps a request path to a slash-free relative file name.
func cleanPath(p string) string {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		return "index.html"
	}
	return p
}

func contentType(name string, body []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(body)
}

// DirFetcher serves assets from a file system, typically os.DirFS(dir).
type DirFetcher struct {
	FS fs.FS
}

func (d DirFetcher) Fetch(ctx context.Context, p string) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := cleanPath(p)
	if fi, err := fs.Stat(d.FS, name); err == nil && fi.IsDir() {
		name = path.Join(name, "index.html")
	}
	body, err := fs.ReadFile(d.FS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var mod time.Time
	if fi, err := fs.Stat(d.FS, name); err == nil {
		mod = fi.ModTime()
	}
	return &Entry{Path: p, ContentType: contentType(name, body), Body: body, ModTime: mod}, nil
}

// HTTPFetcher fetches assets from an upstream origin.
type HTTPFetcher struct {
	Base   string // e.g. "https://example.org"; no trailing slash needed
	Client *http.Client
}

func (h HTTPFetcher) Fetch(ctx context.Context, p string) (*Entry, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	url := strings.TrimSuffix(h.Base, "/") + "/" + strings.TrimPrefix(path.Clean("/"+p), "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = contentType(cleanPath(p), body)
	}
	mod, _ := http.ParseTime(resp.Header.Get("Last-Modified"))
	return &Entry{Path: p, ContentType: ct, Body: body, ModTime: mod}, nil
}
