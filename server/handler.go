package server

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gspinelli/gskit/backend"
	"github.com/gspinelli/gskit/log"
)

// echoResponse describes the request the echo endpoint received.
type echoResponse struct {
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers"`
	Body    backend.Value     `json:"body"`
}

// handleChannels writes the channel names.
func (s *Server) handleChannels(w http.ResponseWriter, r *http.Request) {
	channels := s.Channels
	if channels == nil {
		channels = []string{}
	}
	writeJSON(w, channels, s.log)
}

// handleEcho writes the method, headers, and json body of the request.
func (s *Server) handleEcho(w http.ResponseWriter, r *http.Request) {
	body, err := readJSON(r)
	if err != nil {
		s.log.Warnf("reading echo request: %v", err)
		httpError(w, http.StatusBadRequest)
		return
	}
	headers := make(map[string]string, len(r.Header))
	for k := range r.Header {
		headers[k] = r.Header.Get(k)
	}
	resp := echoResponse{
		Method:  r.Method,
		Headers: headers,
		Body:    body,
	}
	writeJSON(w, resp, s.log)
}

// readJSON reads the body of the request as a json value.  An empty body is read as null.
func readJSON(r *http.Request) (backend.Value, error) {
	var v backend.Value
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return backend.Null(), nil
		}
		return v, fmt.Errorf("decoding body: %w", err)
	}
	if err := dec.Decode(new(backend.Value)); err != io.EOF {
		return v, fmt.Errorf("body contains more than one json value")
	}
	return v, nil
}

// writeJSON writes the value as json, forbidding it from being cached.
func writeJSON(w http.ResponseWriter, v interface{}, log log.Logger) {
	data, err := json.Marshal(v)
	if err != nil {
		writeInternalError(fmt.Errorf("encoding response: %w", err), log, w)
		return
	}
	w.Header().Set(HeaderContentType, backend.ContentTypeJSON)
	w.Header().Set(HeaderCacheControl, "no-store")
	w.Write(data)
}

// fileHandler wraps the handling of the file, add cache-control header and gzip compression, if possible.
func fileHandler(h http.Handler, cacheMaxAge string) http.HandlerFunc {
	cacheControl := func(r *http.Request) string {
		switch r.URL.Path {
		case rootPath, "/index.html":
			return "no-store"
		}
		return cacheMaxAge
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get(HeaderAcceptEncoding), "gzip") {
			w2 := gzip.NewWriter(w)
			defer w2.Close()
			w = wrappedResponseWriter{
				Writer:         w2,
				ResponseWriter: w,
			}
			w.Header().Add(HeaderContentEncoding, "gzip")
		}
		w.Header().Set(HeaderCacheControl, cacheControl(r))
		h.ServeHTTP(w, r)
	}
}

// writeInternalError logs and writes the error as an internal server error (500).
func writeInternalError(err error, log log.Logger, w http.ResponseWriter) {
	log.Errorf("server error: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// httpError writes the error status code.
func httpError(w http.ResponseWriter, statusCode int) {
	http.Error(w, http.StatusText(statusCode), statusCode)
}

// wrappedResponseWriter wraps response writing with another writer.
type wrappedResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

// Write delegates the write to the wrapped writer.
func (wrw wrappedResponseWriter) Write(p []byte) (n int, err error) {
	return wrw.Writer.Write(p)
}
