package providers

import (
	"context"
	"net/url"
	"strings"
)

const (
	openWeatherProviderID     = "openweather"
	openWeatherDefaultBaseURL = "https://api.openweathermap.org/data/3.0"

	envOpenWeatherKey     = "OPENWEATHER_KEY"
	envOpenWeatherBaseURL = "OPENWEATHER_BASE_URL"
	envOpenWeatherUnits   = "OPENWEATHER_UNITS"
	envOpenWeatherLang    = "OPENWEATHER_LANG"
)

// OpenWeatherProvider queries the OpenWeatherMap API. Current weather and
// forecasts live on separate endpoints; there is no day-count parameter, so
// "tomorrow" is indistinguishable from "forecast" for this backend.
type OpenWeatherProvider struct {
	apiKey  string
	baseURL string
	units   string
	lang    string
	client  HTTPClient
}

// NewOpenWeatherFromEnv builds an OpenWeatherMap provider from environment
// state. OPENWEATHER_KEY is required; OPENWEATHER_BASE_URL falls back to
// the hosted API; OPENWEATHER_UNITS and OPENWEATHER_LANG are omitted from
// requests entirely when unset.
func NewOpenWeatherFromEnv(env Environ, client HTTPClient) (*OpenWeatherProvider, error) {
	if env == nil {
		env = OSEnviron()
	}
	if client == nil {
		client = DefaultHTTPClient()
	}

	key, ok := env(envOpenWeatherKey)
	if !ok || strings.TrimSpace(key) == "" {
		return nil, &MissingCredentialError{Var: envOpenWeatherKey}
	}

	baseURL, ok := env(envOpenWeatherBaseURL)
	if !ok || strings.TrimSpace(baseURL) == "" {
		baseURL = openWeatherDefaultBaseURL
	}

	p := &OpenWeatherProvider{
		apiKey:  key,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
	if units, ok := env(envOpenWeatherUnits); ok {
		p.units = strings.TrimSpace(units)
	}
	if lang, ok := env(envOpenWeatherLang); ok {
		p.lang = strings.TrimSpace(lang)
	}
	return p, nil
}

func (p *OpenWeatherProvider) ID() string {
	return openWeatherProviderID
}

// FetchWeather returns the raw OpenWeatherMap response for the city and kind.
func (p *OpenWeatherProvider) FetchWeather(ctx context.Context, city string, kind Kind) (string, error) {
	requestURL, err := p.requestURL(city, kind)
	if err != nil {
		return "", err
	}
	return fetchBody(ctx, p.client, requestURL)
}

// requestURL is a pure function of the stored config, city, and kind.
func (p *OpenWeatherProvider) requestURL(city string, kind Kind) (string, error) {
	var endpoint string
	switch kind {
	case KindNow:
		endpoint = "/weather"
	case KindForecast, KindTomorrow:
		endpoint = "/forecast"
	default:
		return "", &UnsupportedKindError{Kind: kind}
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", p.apiKey)
	if p.units != "" {
		q.Set("units", p.units)
	}
	if p.lang != "" {
		q.Set("lang", p.lang)
	}

	return p.baseURL + endpoint + "?" + encodeQuery(q), nil
}
