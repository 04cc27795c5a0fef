package providers

import (
	"context"
	"testing"

	"github.com/helio-sh/wapp/pkg/httpclient"
)

// mapEnv backs Environ with a fixed map so tests never touch the real
// process environment.
func mapEnv(vars map[string]string) Environ {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

type mockResponse struct {
	body       []byte
	statusCode int
}

func (r mockResponse) Body() []byte    { return r.body }
func (r mockResponse) StatusCode() int { return r.statusCode }

type mockHTTPClient struct {
	t         *testing.T
	expectURL string
	status    int
	body      string
	err       error
	gotURL    string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (httpclient.Response, error) {
	m.gotURL = url
	if m.err != nil {
		return nil, m.err
	}
	if m.expectURL != "" && url != m.expectURL {
		m.t.Fatalf("expected url %q, got %q", m.expectURL, url)
	}
	status := m.status
	if status == 0 {
		status = 200
	}
	return mockResponse{body: []byte(m.body), statusCode: status}, nil
}
