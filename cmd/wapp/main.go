package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/helio-sh/wapp/internal/app"
	"github.com/helio-sh/wapp/internal/config"
	"github.com/helio-sh/wapp/internal/logger"
	"github.com/helio-sh/wapp/pkg/providers"
)

const usageText = `usage:
  wapp configure <provider>        select and persist the weather provider
  wapp get --city <NAME> [--data now|forecast|tomorrow]
  wapp history [--limit N]         list recent queries
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "wapp: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return fmt.Errorf("no command given")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.DebugObj("config loaded", "config", cfg)

	a, err := app.New(cfg, log)
	if err != nil {
		logger.ErrorObj("failed to initialize app", "error", err)
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cmd := args[0]; cmd {
	case "configure":
		if len(args) != 2 {
			return fmt.Errorf("usage: wapp configure <provider>")
		}
		if err := a.Configure(args[1]); err != nil {
			return err
		}
		fmt.Println("Provider saved")
		return nil

	case "get":
		fs := flag.NewFlagSet("get", flag.ContinueOnError)
		city := fs.String("city", "", "city name (required)")
		data := fs.String("data", string(providers.DefaultKind), "query kind: now, forecast, tomorrow")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *city == "" {
			return fmt.Errorf("city is required: use --city <NAME>")
		}

		body, err := a.Get(ctx, *city, providers.Kind(*data))
		if err != nil {
			return err
		}
		fmt.Println(body)
		return nil

	case "history":
		fs := flag.NewFlagSet("history", flag.ContinueOnError)
		limit := fs.Int("limit", 0, "maximum entries to list (0 uses the configured default)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		entries, err := a.History(*limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No recorded queries")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %-12s %-10s %s\n", e.Time.Format("2006-01-02 15:04:05"), e.Provider, e.Kind, e.City)
		}
		return nil

	default:
		fmt.Fprint(os.Stderr, usageText)
		return fmt.Errorf("unknown command %q", cmd)
	}
}
