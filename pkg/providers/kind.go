package providers

// Kind is the temporal scope of a weather query. It is carried as the raw
// user-supplied string; providers reject unknown values per call via
// UnsupportedKindError, since the kind is not known at construction time.
type Kind string

const (
	KindNow      Kind = "now"
	KindForecast Kind = "forecast"
	KindTomorrow Kind = "tomorrow"
)

// DefaultKind is used when the caller does not specify a query scope.
const DefaultKind = KindNow
