package providers

import "fmt"

// MissingCredentialError reports a required credential environment variable
// that was absent when a provider was constructed.
type MissingCredentialError struct {
	Var string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing required environment variable %s", e.Var)
}

// UnsupportedProviderError reports a configured provider name that matches
// no registered provider.
type UnsupportedProviderError struct {
	Name string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider %q", e.Name)
}

// UnsupportedKindError reports a fetch invoked with a query kind outside
// now/forecast/tomorrow. It fails that call only.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported request kind %q", string(e.Kind))
}

// TransportError wraps a failed HTTP exchange. The URL is the fully
// assembled request URL; Err is the underlying transport cause.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
