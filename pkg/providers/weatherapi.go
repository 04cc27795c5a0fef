package providers

import (
	"context"
	"net/url"
	"strings"
)

const (
	weatherAPIProviderID     = "weatherapi"
	weatherAPIDefaultBaseURL = "https://api.weatherapi.com/v1"

	envWeatherAPIKey     = "WEATHERAPI_KEY"
	envWeatherAPIBaseURL = "WEATHERAPI_BASE_URL"
	envWeatherAPILang    = "WEATHERAPI_LANG"
)

// WeatherAPIProvider queries WeatherAPI.com. Forecasts are day-count based:
// "tomorrow" asks for one day, "forecast" for three.
type WeatherAPIProvider struct {
	apiKey  string
	baseURL string
	lang    string
	client  HTTPClient
}

// NewWeatherAPIFromEnv builds a WeatherAPI provider from environment state.
// WEATHERAPI_KEY is required; WEATHERAPI_BASE_URL falls back to the hosted
// API; WEATHERAPI_LANG is omitted from requests entirely when unset.
func NewWeatherAPIFromEnv(env Environ, client HTTPClient) (*WeatherAPIProvider, error) {
	if env == nil {
		env = OSEnviron()
	}
	if client == nil {
		client = DefaultHTTPClient()
	}

	key, ok := env(envWeatherAPIKey)
	if !ok || strings.TrimSpace(key) == "" {
		return nil, &MissingCredentialError{Var: envWeatherAPIKey}
	}

	baseURL, ok := env(envWeatherAPIBaseURL)
	if !ok || strings.TrimSpace(baseURL) == "" {
		baseURL = weatherAPIDefaultBaseURL
	}

	p := &WeatherAPIProvider{
		apiKey:  key,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
	if lang, ok := env(envWeatherAPILang); ok {
		p.lang = strings.TrimSpace(lang)
	}
	return p, nil
}

func (p *WeatherAPIProvider) ID() string {
	return weatherAPIProviderID
}

// FetchWeather returns the raw WeatherAPI response for the city and kind.
func (p *WeatherAPIProvider) FetchWeather(ctx context.Context, city string, kind Kind) (string, error) {
	requestURL, err := p.requestURL(city, kind)
	if err != nil {
		return "", err
	}
	return fetchBody(ctx, p.client, requestURL)
}

// requestURL is a pure function of the stored config, city, and kind.
func (p *WeatherAPIProvider) requestURL(city string, kind Kind) (string, error) {
	var endpoint, days string
	switch kind {
	case KindNow:
		endpoint = "/current.json"
	case KindForecast:
		endpoint = "/forecast.json"
		days = "3"
	case KindTomorrow:
		endpoint = "/forecast.json"
		days = "1"
	default:
		return "", &UnsupportedKindError{Kind: kind}
	}

	q := url.Values{}
	q.Set("key", p.apiKey)
	q.Set("q", city)
	if days != "" {
		q.Set("days", days)
	}
	if p.lang != "" {
		q.Set("lang", p.lang)
	}

	return p.baseURL + endpoint + "?" + encodeQuery(q), nil
}
