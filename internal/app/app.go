package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/helio-sh/wapp/internal/config"
	"github.com/helio-sh/wapp/internal/history"
	"github.com/helio-sh/wapp/pkg/httpclient"
	"github.com/helio-sh/wapp/pkg/providers"
	"go.uber.org/zap"
)

// App coordinates the CLI commands: it owns the provider registry, the
// environment lookup, the HTTP client, and the query journal.
type App struct {
	cfg      *config.Config
	registry *providers.Registry
	env      providers.Environ
	client   providers.HTTPClient
	store    history.Store
	log      *zap.SugaredLogger
}

// New builds the application runtime from config.
func New(cfg *config.Config, log *zap.SugaredLogger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	store, err := history.NewStore(cfg.HistoryPath, history.Options{
		EntryTTL: cfg.HistoryTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("init history store: %w", err)
	}

	return newApp(
		cfg,
		providers.DefaultRegistry(),
		providers.OSEnviron(),
		httpclient.NewRestyClient(cfg.HTTPTimeout),
		store,
		log,
	), nil
}

// newApp wires explicit dependencies; tests inject fakes through it.
func newApp(cfg *config.Config, registry *providers.Registry, env providers.Environ, client providers.HTTPClient, store history.Store, log *zap.SugaredLogger) *App {
	if store == nil {
		store, _ = history.NewStore("", history.Options{})
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &App{
		cfg:      cfg,
		registry: registry,
		env:      env,
		client:   client,
		store:    store,
		log:      log,
	}
}

// Close releases the app's resources.
func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	return a.store.Close()
}

// Configure validates the provider name against the registry and persists
// the selection.
func (a *App) Configure(name string) error {
	if !a.registry.Supported(name) {
		return fmt.Errorf("%w (supported: %s)",
			&providers.UnsupportedProviderError{Name: name},
			strings.Join(a.registry.Names(), ", "))
	}

	if err := config.SaveSettings(a.cfg.SettingsFile, config.Settings{Provider: name}); err != nil {
		return err
	}

	a.log.Infow("provider saved", "provider", name, "settings_file", a.cfg.SettingsFile)
	return nil
}

// Get loads the persisted provider selection, resolves the provider, and
// fetches weather data for the city. The returned string is the remote
// response body, verbatim.
func (a *App) Get(ctx context.Context, city string, kind providers.Kind) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", fmt.Errorf("city is required")
	}

	settings, err := config.LoadSettings(a.cfg.SettingsFile)
	if err != nil {
		return "", err
	}

	provider, err := a.registry.Resolve(settings.Provider, a.env, a.client)
	if err != nil {
		return "", err
	}

	a.log.Debugw("fetching weather", "provider", provider.ID(), "city", city, "kind", string(kind))

	body, err := provider.FetchWeather(ctx, city, kind)
	if err != nil {
		return "", err
	}

	// A journal failure must not lose an already-fetched response.
	if err := a.store.Record(history.Entry{
		Time:     time.Now(),
		Provider: provider.ID(),
		City:     city,
		Kind:     string(kind),
	}); err != nil {
		a.log.Warnw("record query history", "error", err)
	}

	return body, nil
}

// History lists recent queries from the journal, newest first.
func (a *App) History(limit int) ([]history.Entry, error) {
	if limit <= 0 {
		limit = a.cfg.HistoryLimit
	}
	return a.store.Recent(limit)
}
