// Package backend describes http requests and dispatches them to servers.
package backend

import (
	"encoding/json"
	"fmt"
	"net/textproto"
	"net/url"
	"sort"
)

// Method is the HTTP verb of a request.
type Method string

const (
	// MethodGet is the default method.
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodPatch  Method = "PATCH"
)

const (
	// HeaderContentType describes the media type of the request body.
	HeaderContentType = "Content-Type"
	// HeaderCacheControl is used to ask caches to revalidate responses.
	HeaderCacheControl = "Cache-Control"
	// HeaderPragma is the HTTP/1.0 form of HeaderCacheControl.
	HeaderPragma = "Pragma"
	// ContentTypeJSON is the media type of json request bodies.
	ContentTypeJSON = "application/json"
)

type (
	// RequestConfig contains the fields of a new request.
	RequestConfig struct {
		// Path is the absolute url of the request.
		Path string
		// Method is the HTTP verb.  GET is used if it is empty.
		Method Method
		// Params are encoded as the json body of the request if not nil.
		Params Params
		// Headers are additional request properties.
		Headers map[string]string
	}

	// Request describes an outbound http call.
	// It is immutable: the maps are copied when it is created and when they are read.
	Request struct {
		path    string
		method  Method
		params  Params
		headers map[string]string
	}

	// Header is a single http header key and value.
	Header struct {
		Key   string
		Value string
	}

	// Outgoing is a validated request ready to be sent by a Dispatcher.
	Outgoing struct {
		// Method is the HTTP method.
		Method string
		// URL is the address to the server.
		URL string
		// Headers are keyed by canonical header names.
		Headers map[string]string
		// Body is the json-encoded params, nil if the request has none.
		Body []byte
	}
)

// NewRequest creates a GET request without params or headers.
func NewRequest(path string) Request {
	cfg := RequestConfig{
		Path: path,
	}
	return cfg.NewRequest()
}

// NewRequest creates a Request from the config.
func (cfg RequestConfig) NewRequest() Request {
	method := cfg.Method
	if len(method) == 0 {
		method = MethodGet
	}
	r := Request{
		path:    cfg.Path,
		method:  method,
		params:  copyParams(cfg.Params),
		headers: copyHeaders(cfg.Headers),
	}
	return r
}

// Path is the url of the request.
func (r Request) Path() string {
	return r.path
}

// Method is the HTTP verb of the request.
func (r Request) Method() Method {
	if len(r.method) == 0 {
		return MethodGet
	}
	return r.method
}

// Params returns a copy of the params, nil if the request has none.
func (r Request) Params() Params {
	return copyParams(r.params)
}

// Headers returns a copy of the headers, nil if the request has none.
func (r Request) Headers() map[string]string {
	return copyHeaders(r.headers)
}

// URL parses the path of the request.  It must be absolute and have a host.
func (r Request) URL() (*url.URL, error) {
	u, err := url.Parse(r.path)
	switch {
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	case !u.IsAbs(), len(u.Host) == 0:
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, r.path)
	}
	return u, nil
}

// Body encodes the params as json.  A nil body is returned if the request has no params.
func (r Request) Body() ([]byte, error) {
	if r.params == nil {
		return nil, nil
	}
	b, err := json.Marshal(r.params)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	return b, nil
}

// Outgoing validates the request and builds what should be sent.
// The extra header is applied before the headers of the request so they can override it.
// Caching is always disabled.
func (r Request) Outgoing(extra *Header) (*Outgoing, error) {
	method := r.Method()
	if !method.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	u, err := r.URL()
	if err != nil {
		return nil, err
	}
	body, err := r.Body()
	if err != nil {
		return nil, err
	}
	headers := make(map[string]string, len(r.headers)+4)
	set := func(key, value string) {
		headers[textproto.CanonicalMIMEHeaderKey(key)] = value
	}
	if extra != nil {
		set(extra.Key, extra.Value)
	}
	keys := make([]string, 0, len(r.headers))
	for k := range r.headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		set(k, r.headers[k])
	}
	if _, ok := headers[HeaderContentType]; body != nil && !ok {
		set(HeaderContentType, ContentTypeJSON)
	}
	set(HeaderCacheControl, "no-cache")
	set(HeaderPragma, "no-cache")
	o := Outgoing{
		Method:  string(method),
		URL:     u.String(),
		Headers: headers,
		Body:    body,
	}
	return &o, nil
}

// valid determines if the method is one of the supported HTTP verbs.
func (m Method) valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch:
		return true
	}
	return false
}

func copyParams(p Params) Params {
	if p == nil {
		return nil
	}
	p2 := make(Params, len(p))
	for k, v := range p {
		p2[k] = v
	}
	return p2
}

func copyHeaders(h map[string]string) map[string]string {
	if h == nil {
		return nil
	}
	h2 := make(map[string]string, len(h))
	for k, v := range h {
		h2[k] = v
	}
	return h2
}
