package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gspinelli/gskit/backend"
)

// parseMethod converts the method name to upper case.  Invalid methods are rejected when the request is sent.
func parseMethod(method string) backend.Method {
	return backend.Method(strings.ToUpper(strings.TrimSpace(method)))
}

// parseHeaders reads headers in the 'Key: Value' form.  Later headers replace earlier ones with the same key.
func parseHeaders(headers []string) (map[string]string, error) {
	if len(headers) == 0 {
		return nil, nil
	}
	m := make(map[string]string, len(headers))
	for _, h := range headers {
		key, value, ok := strings.Cut(h, ":")
		key = strings.TrimSpace(key)
		if !ok || len(key) == 0 {
			return nil, fmt.Errorf("invalid header %q: wanted 'Key: Value'", h)
		}
		m[key] = strings.TrimSpace(value)
	}
	return m, nil
}

// parseParams reads body parameters in the key=value form.
// Values are parsed as json.  Values that are not valid json are used as strings.
func parseParams(data []string) (backend.Params, error) {
	if len(data) == 0 {
		return nil, nil
	}
	params := make(backend.Params, len(data))
	for _, d := range data {
		key, value, ok := strings.Cut(d, "=")
		if !ok || len(key) == 0 {
			return nil, fmt.Errorf("invalid data %q: wanted key=value", d)
		}
		var v backend.Value
		if err := json.Unmarshal([]byte(value), &v); err != nil {
			v = backend.String(value)
		}
		params[key] = v
	}
	return params, nil
}
