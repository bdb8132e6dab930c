// Package serve is the development server: pages are rendered on every
// request and open browsers reload when a post changes.
package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"mdblog/internal/app"
	domainerr "mdblog/internal/domain/errors"
	"mdblog/internal/domain/site"
	"mdblog/internal/logging"
)

const debounceDelay = 200 * time.Millisecond

type Server struct {
	pages *app.Pages
	log   logging.Logger

	sseMu     sync.Mutex
	sseConns  map[chan string]struct{}
	watcher   *fsnotify.Watcher
	watchOnce sync.Once
}

func New(pages *app.Pages, log logging.Logger) *Server {
	p := *pages
	p.LiveReload = true
	return &Server{
		pages:    &p,
		log:      logging.OrNoOp(log),
		sseConns: make(map[chan string]struct{}),
	}
}

func (s *Server) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/blogs", http.StatusFound)
	})
	mux.HandleFunc("GET /blogs", s.handleRoute(site.ListRoute()))
	mux.HandleFunc("GET /blogs/{$}", s.handleRoute(site.ListRoute()))
	mux.HandleFunc("GET /blog/{slug}", s.handlePost)
	mux.HandleFunc("GET /blog/{slug}/{$}", s.handlePost)
	mux.HandleFunc("GET /sitemap.xml", s.handleRoute(site.SitemapRoute()))
	mux.HandleFunc("GET /feed.xml", s.handleRoute(site.RSSRoute()))
	mux.HandleFunc("GET /robots.txt", s.handleRoute(site.RobotsRoute()))

	// dev SSE
	mux.HandleFunc("GET /dev/events", s.handleSSE)

	mux.HandleFunc("/", s.handleNotFound)
	return mux
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if err := s.startWatch(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	s.log.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// startWatch watches the posts tree. A posts directory that does not exist
// yet is not an error; there is simply nothing to watch.
func (s *Server) startWatch(ctx context.Context) error {
	var err error
	s.watchOnce.Do(func() {
		root := s.pages.Opts.PostsDir
		if root == "" {
			dir, e := s.pages.Opts.Dir()
			if e != nil {
				err = e
				return
			}
			root = dir
		}
		if _, e := os.Stat(root); e != nil {
			s.log.Warn("posts directory not found, live reload disabled", "dir", root)
			return
		}

		w, e := fsnotify.NewWatcher()
		if e != nil {
			err = e
			return
		}
		s.watcher = w

		err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return w.Add(path)
			}
			return nil
		})
		if err != nil {
			return
		}
		go s.watchLoop(ctx)
	})
	return err
}

func (s *Server) watchLoop(ctx context.Context) {
	s.log.Info("watching for file changes")
	debounce := time.NewTimer(time.Hour)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = s.watcher.Add(ev.Name)
				}
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				debounce.Reset(debounceDelay)
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("watcher error", "error", err.Error())
		case <-debounce.C:
			s.log.Info("posts changed, reloading clients")
			s.broadcastSSE("reload")
		}
	}
}

func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan string, 8)

	s.sseMu.Lock()
	s.sseConns[ch] = struct{}{}
	s.sseMu.Unlock()

	defer func() {
		s.sseMu.Lock()
		delete(s.sseConns, ch)
		s.sseMu.Unlock()
	}()
	fmt.Fprintf(w, "data: %s\n\n", "hello")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-ch:
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func (s *Server) broadcastSSE(msg string) {
	s.sseMu.Lock()
	defer s.sseMu.Unlock()
	for ch := range s.sseConns {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	s.serveRoute(w, r, site.PostRoute(r.PathValue("slug")))
}

func (s *Server) handleRoute(route site.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.serveRoute(w, r, route)
	}
}

func (s *Server) serveRoute(w http.ResponseWriter, r *http.Request, route site.Route) {
	body, err := s.pages.Render(r.Context(), route)
	if err != nil {
		switch domainerr.KindOf(err) {
		case domainerr.KindNotFound, domainerr.KindInvalid:
			s.handleNotFound(w, r)
		default:
			s.log.Error("render failed", "route", route.String(), "error", err.Error())
			http.Error(w, "render error", http.StatusInternalServerError)
		}
		return
	}
	write(w, route.ContentType(), body)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	body, err := s.pages.RenderNotFound(r.Context(), r.URL.Path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", site.NotFoundRoute().ContentType())
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(body)
}

func write(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}
