package providers

import (
	"context"
	"net/url"
	"strings"
)

// encodeQuery renders query parameters with spaces percent-encoded. The
// remote weather APIs accept %20 but not "+" in city names; url.Values has
// already escaped any literal "+" as %2B, so every remaining "+" here is a
// space.
func encodeQuery(q url.Values) string {
	return strings.ReplaceAll(q.Encode(), "+", "%20")
}

// fetchBody performs the single GET a weather query amounts to and returns
// the body verbatim, whatever the status code. Presentation and parsing are
// the caller's concern.
func fetchBody(ctx context.Context, client HTTPClient, requestURL string) (string, error) {
	resp, err := client.Get(ctx, requestURL, nil)
	if err != nil {
		return "", &TransportError{URL: requestURL, Err: err}
	}
	return string(resp.Body()), nil
}
