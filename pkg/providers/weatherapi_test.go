package providers

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newWeatherAPI(t *testing.T, vars map[string]string, client HTTPClient) *WeatherAPIProvider {
	t.Helper()
	p, err := NewWeatherAPIFromEnv(mapEnv(vars), client)
	if err != nil {
		t.Fatalf("NewWeatherAPIFromEnv returned error: %v", err)
	}
	return p
}

func TestWeatherAPIFromEnvMissingKey(t *testing.T) {
	_, err := NewWeatherAPIFromEnv(mapEnv(map[string]string{"WEATHERAPI_LANG": "uk"}), &mockHTTPClient{t: t})
	if err == nil {
		t.Fatalf("expected missing credential error, got nil")
	}

	var missing *MissingCredentialError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingCredentialError, got %T: %v", err, err)
	}
	if missing.Var != "WEATHERAPI_KEY" {
		t.Errorf("expected missing var WEATHERAPI_KEY, got %s", missing.Var)
	}
}

func TestWeatherAPIRequestURLNow(t *testing.T) {
	p := newWeatherAPI(t, map[string]string{
		"WEATHERAPI_KEY":  "k1",
		"WEATHERAPI_LANG": "uk",
	}, &mockHTTPClient{t: t})

	got, err := p.requestURL("Kyiv", KindNow)
	if err != nil {
		t.Fatalf("requestURL returned error: %v", err)
	}

	want := "https://api.weatherapi.com/v1/current.json?key=k1&lang=uk&q=Kyiv"
	if got != want {
		t.Fatalf("expected url %q, got %q", want, got)
	}
}

// Tomorrow is a one-day forecast, forecast a three-day one; the URLs must
// differ only in the days parameter.
func TestWeatherAPIForecastDayCounts(t *testing.T) {
	p := newWeatherAPI(t, map[string]string{"WEATHERAPI_KEY": "k1"}, &mockHTTPClient{t: t})

	forecast, err := p.requestURL("Lviv", KindForecast)
	if err != nil {
		t.Fatalf("requestURL(forecast) returned error: %v", err)
	}
	tomorrow, err := p.requestURL("Lviv", KindTomorrow)
	if err != nil {
		t.Fatalf("requestURL(tomorrow) returned error: %v", err)
	}

	if !strings.Contains(forecast, "days=3") {
		t.Errorf("expected days=3 in forecast url %q", forecast)
	}
	if !strings.Contains(tomorrow, "days=1") {
		t.Errorf("expected days=1 in tomorrow url %q", tomorrow)
	}
	if strings.Replace(tomorrow, "days=1", "days=3", 1) != forecast {
		t.Fatalf("urls differ beyond the days parameter: %q vs %q", forecast, tomorrow)
	}
	if !strings.Contains(forecast, "/forecast.json?") {
		t.Errorf("expected forecast endpoint, got %q", forecast)
	}
}

func TestWeatherAPIOmitsUnsetLang(t *testing.T) {
	p := newWeatherAPI(t, map[string]string{"WEATHERAPI_KEY": "k1"}, &mockHTTPClient{t: t})

	got, err := p.requestURL("Kyiv", KindNow)
	if err != nil {
		t.Fatalf("requestURL returned error: %v", err)
	}
	if strings.Contains(got, "lang=") {
		t.Errorf("expected no lang parameter, got %q", got)
	}
}

func TestWeatherAPIUnsupportedKind(t *testing.T) {
	p := newWeatherAPI(t, map[string]string{"WEATHERAPI_KEY": "k1"}, &mockHTTPClient{t: t})

	_, err := p.FetchWeather(context.Background(), "Kyiv", Kind("yesterday"))
	if err == nil {
		t.Fatalf("expected unsupported kind error, got nil")
	}

	var unsupported *UnsupportedKindError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedKindError, got %T: %v", err, err)
	}
	if unsupported.Kind != "yesterday" {
		t.Errorf("expected offending kind yesterday, got %s", unsupported.Kind)
	}
}

func TestWeatherAPIFetchUsesBuiltURL(t *testing.T) {
	client := &mockHTTPClient{
		t:         t,
		expectURL: "https://api.weatherapi.com/v1/forecast.json?days=1&key=k1&q=New%20York",
		body:      `{"forecast":{}}`,
	}
	p := newWeatherAPI(t, map[string]string{"WEATHERAPI_KEY": "k1"}, client)

	got, err := p.FetchWeather(context.Background(), "New York", KindTomorrow)
	if err != nil {
		t.Fatalf("FetchWeather returned error: %v", err)
	}
	if got != `{"forecast":{}}` {
		t.Fatalf("unexpected body: %q", got)
	}
}
