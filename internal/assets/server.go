package assets

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server answers GET requests from the cache, passing misses through to the
// network fetcher.
type Server struct {
	cache   *Cache
	network Fetcher
	logger  *log.Logger
}

func NewServer(cache *Cache, network Fetcher) *Server {
	return &Server{
		cache:   cache,
		network: network,
		logger:  log.New(os.Stderr, "[assets] ", log.LstdFlags),
	}
}

// SetLogger replaces the server's logger.
func (s *Server) SetLogger(l *log.Logger) {
	s.logger = l
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/healthz"))

	r.Get("/*", s.handleFetch)
	r.Head("/*", s.handleFetch)
	return r
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Path
	if e, ok := s.cache.Match(p); ok {
		w.Header().Set("X-Cache", "HIT")
		serveEntry(w, r, e)
		return
	}

	e, err := s.network.Fetch(r.Context(), p)
	if err != nil {
		requestID := middleware.GetReqID(r.Context())
		if errors.Is(err, ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		s.logger.Printf("fetch_failed request_id=%s path=%s err=%v", requestID, p, err)
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}
	w.Header().Set("X-Cache", "MISS")
	serveEntry(w, r, e)
}

func serveEntry(w http.ResponseWriter, r *http.Request, e *Entry) {
	if e.ContentType != "" {
		w.Header().Set("Content-Type", e.ContentType)
	}
	http.ServeContent(w, r, e.Path, e.ModTime, bytes.NewReader(e.Body))
}

// Serve installs and activates the cache from fetcher, then serves on addr
// until ctx is cancelled. A failed install is logged and the server runs in
// pass-through mode.
func Serve(ctx context.Context, addr string, cache *Cache, fetcher Fetcher, manifest []string) error {
	s := NewServer(cache, fetcher)
	if err := cache.Install(ctx, fetcher, manifest); err != nil {
		s.logger.Printf("install_failed cache=%s err=%v", cache.Name, err)
	} else if err := cache.Activate(); err != nil {
		s.logger.Printf("activate_failed cache=%s err=%v", cache.Name, err)
	} else {
		s.logger.Printf("cache_active cache=%s entries=%d", cache.Name, cache.Len())
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           middleware.Logger(s.Routes()),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Printf("listening addr=%s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
