package providers

import (
	"context"
	"os"

	"github.com/helio-sh/wapp/pkg/httpclient"
)

// Provider is the common contract for all weather API backends. FetchWeather
// returns the remote response body verbatim; nothing in this package parses
// or validates it. Concrete implementations live in provider-specific files
// (e.g., openweather.go).
type Provider interface {
	ID() string
	FetchWeather(ctx context.Context, city string, kind Kind) (string, error)
}

// Environ looks up a named environment value. The second return reports
// whether the variable was set at all, so implementations can distinguish
// "absent" from "empty".
type Environ func(key string) (string, bool)

// OSEnviron reads from the real process environment.
func OSEnviron() Environ {
	return os.LookupEnv
}

// HTTPClient aliases the shared httpclient.Client interface for clarity within providers.
type HTTPClient = httpclient.Client
