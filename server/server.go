// Package server runs the demo http server that the toolkit clients talk to.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gspinelli/gskit/log"
	"github.com/gspinelli/gskit/runner"
)

type (
	// Server runs the site.
	Server struct {
		log        log.Logger
		httpServer *http.Server
		runner     runner.Runner
		Config
	}

	// Config contains fields which describe the server.
	Config struct {
		// Port is the TCP port for server http requests.
		Port int
		// StopDur is the maximum duration the server should take to shutdown gracefully.
		StopDur time.Duration
		// CacheSec is the number of seconds static files are cached.
		CacheSec int
		// Channels are the names returned by the channels endpoint.
		Channels []string
	}
)

const (
	// HeaderContentType is used to set the document type header on http responses.
	HeaderContentType = "Content-Type"
	// HeaderCacheControl is used to tell browsers how long to cache http responses.
	HeaderCacheControl = "Cache-Control"
	// HeaderAcceptEncoding is specified by the browser to tell the server what types of document encoding it can handle.
	HeaderAcceptEncoding = "Accept-Encoding"
	// HeaderContentEncoding is used to tell browsers how the document is encoded.
	HeaderContentEncoding = "Content-Encoding"
	// rootPath is the path of the page that loads the wasm client.
	rootPath = "/"
)

// NewServer creates a Server from the Config.  The static files are served from the root of the site.
func (cfg Config) NewServer(log log.Logger, staticFS fs.FS) (*Server, error) {
	if err := cfg.validate(log, staticFS); err != nil {
		return nil, fmt.Errorf("creating server: validation: %w", err)
	}
	s := Server{
		log:    log,
		Config: cfg,
	}
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: s.handler(staticFS),
	}
	return &s, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate(log log.Logger, staticFS fs.FS) error {
	switch {
	case log == nil:
		return fmt.Errorf("log required")
	case staticFS == nil:
		return fmt.Errorf("static file system required")
	case cfg.Port < 0:
		return fmt.Errorf("non-negative port required")
	case cfg.StopDur <= 0:
		return fmt.Errorf("stop timeout duration required")
	case cfg.CacheSec < 0:
		return fmt.Errorf("non-negative cache time required")
	}
	return nil
}

// Run the server asynchronously until it receives a shutdown signal.
// When the server stops, the error it stopped with is sent on the returned channel.
func (s *Server) Run(ctx context.Context) <-chan error {
	errC := make(chan error, 1)
	if err := s.runner.Start(); err != nil {
		errC <- fmt.Errorf("running server: %w", err)
		return errC
	}
	s.log.Infof("starting server at http://127.0.0.1%v", s.httpServer.Addr)
	go func() {
		defer s.runner.Finish()
		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errC <- err
	}()
	return errC
}

// Stop asks the server to shutdown and waits for the shutdown to complete.
// An error is returned if the context times out before the shutdown completes.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, s.StopDur)
	defer cancelFunc()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("stopping server: %w", err)
	}
	return nil
}

// handler creates the router for the endpoints of the server.
func (s *Server) handler(staticFS fs.FS) http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequest)
	r.HandleFunc("/channels", s.handleChannels).Methods(http.MethodGet)
	r.HandleFunc("/echo", s.handleEcho).Methods(http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch)
	cacheMaxAge := fmt.Sprintf("max-age=%d", s.CacheSec)
	staticHandler := http.FileServer(http.FS(staticFS))
	r.PathPrefix(rootPath).Handler(fileHandler(staticHandler, cacheMaxAge)).Methods(http.MethodGet)
	return r
}

// logRequest logs the method and path of each request.
func (s *Server) logRequest(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debugf("%v %v", r.Method, r.URL.Path)
		h.ServeHTTP(w, r)
	})
}
