package httpclient

import "context"

// Response is the slice of an HTTP response a weather fetch cares about:
// the raw body, returned to the caller verbatim, and the status code.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client is the single transport operation providers depend on: one GET
// against a fully assembled URL. Keeping providers on this interface lets
// tests substitute canned transports for the resty-backed client.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}
