package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"boardkit/cmd/web/server/config"
	"boardkit/cmd/web/server/security/htpasswd"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	_ "embed"
)

type (
	HTTPServer struct {
		Server  *http.Server
		Config  config.Configuration
		started time.Time
	}

	HealthPayload struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
		Uptime    float64   `json:"uptime"`
	}
)

var (
	//go:embed templates/fallback.html
	FallbackHTMLPage string

	//go:embed templates/401.html
	UnauthorizedErrorHTMLPage string

	//go:embed templates/500.html
	InternalServerErrorHTMLPage string
)

// NewServer builds the static asset server.
func NewServer(c config.Configuration) (*HTTPServer, error) {
	if !filepath.IsAbs(c.Root) {
		return nil, fmt.Errorf("the document root %q is not an absolute path", c.Root)
	}

	s := &HTTPServer{
		Config:  c,
		started: time.Now(),
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(recoverMiddleware)
	router.Use(middleware.GetHead)
	router.Use(middleware.Compress(5))

	// The load balancer probes /health; it must stay outside basic auth.
	router.Get("/health", s.health)

	router.Group(func(static chi.Router) {
		if c.Htpasswd != "" {
			creds, err := htpasswd.Open(c.Htpasswd)
			if err != nil {
				slog.Error("cannot open the htpasswd file", "path", c.Htpasswd, "err", err)
			} else {
				static.Use(BasicAuth("boardkit", creds.Content()))
			}
		}

		static.Get("/", s.index)
		static.Handle("/*", http.HandlerFunc(s.static))
	})

	s.Server = &http.Server{
		Addr:    fmt.Sprintf(":%d", c.Server.Port),
		Handler: router,
	}
	return s, nil
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	payload := HealthPayload{
		Status:    "healthy",
		Timestamp: time.Now(),
		Uptime:    time.Since(s.started).Seconds(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to write the health payload", "err", err)
	}
}

func (s *HTTPServer) index(w http.ResponseWriter, r *http.Request) {
	indexPath := filepath.Join(s.Config.Root, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(FallbackHTMLPage)); err != nil {
			slog.Error("failed to write the fallback page", "err", err)
		}
		return
	}

	s.setCacheHeaders(w)
	http.ServeFile(w, r, indexPath)
}

func (s *HTTPServer) static(w http.ResponseWriter, r *http.Request) {
	// Clean against the rooted path so ".." cannot escape the document root.
	rel := filepath.Clean("/" + strings.TrimPrefix(r.URL.Path, "/"))
	full := filepath.Join(s.Config.Root, rel)

	fi, err := os.Stat(full)
	if err != nil || fi.IsDir() {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	s.setCacheHeaders(w)
	http.ServeFile(w, r, full)
}

func (s *HTTPServer) setCacheHeaders(w http.ResponseWriter) {
	if !s.Config.Production {
		w.Header().Set("Cache-Control", "no-store")
	}
}
