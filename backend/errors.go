package backend

import "errors"

var (
	// ErrInvalidURL is returned when the request path is not an absolute url.
	// No network call is made.
	ErrInvalidURL = errors.New("invalid url")
	// ErrInvalidMethod is returned when the request method is not one of the supported HTTP methods.
	ErrInvalidMethod = errors.New("invalid method")
	// ErrNoData is returned when the server responds successfully with an empty body.
	ErrNoData = errors.New("no data")
)

type (
	// TransportError wraps a failure of the underlying network call.
	TransportError struct {
		Err error
	}

	// EncodingError wraps a failure to serialize the request params to json.
	EncodingError struct {
		Err error
	}

	// DecodingError wraps a failure to parse the response body into the expected shape.
	DecodingError struct {
		Err error
	}
)

func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *EncodingError) Error() string {
	return "encoding request body: " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

func (e *DecodingError) Error() string {
	return "decoding response body: " + e.Err.Error()
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}
