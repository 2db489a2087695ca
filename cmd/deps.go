package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/naka-gawa/github-achievements/internal/config"
	"github.com/naka-gawa/github-achievements/internal/domain"
	"github.com/naka-gawa/github-achievements/internal/gateway"
	"github.com/naka-gawa/github-achievements/internal/ghcli"
	"github.com/naka-gawa/github-achievements/internal/usecase"
)

// newLogger discards all logs unless --verbose is set.
func newLogger() *log.Logger {
	logger := log.New(io.Discard, "", log.LstdFlags)
	if settings.GetBool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newStore() (*config.Store, error) {
	path := settings.GetString("config")
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return config.NewStore(path), nil
}

// setup loads the configuration and builds the selected backend.
func setup(logger *log.Logger) (domain.Document, gateway.Fetcher, error) {
	store, err := newStore()
	if err != nil {
		return nil, nil, err
	}
	doc, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	fetcher, err := newFetcher(logger)
	if err != nil {
		return nil, nil, err
	}
	return doc, fetcher, nil
}

// newFetcher builds the backend selected by --backend.
func newFetcher(logger *log.Logger) (gateway.Fetcher, error) {
	switch backend := settings.GetString("backend"); backend {
	case "", "gh":
		client := ghcli.NewClient(settings.GetString("gh-path"), ghcli.NewExecRunner(), settings.GetDuration("timeout"), logger)
		return gateway.NewCLIGateway(client, logger), nil
	case "api":
		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			return nil, errors.New("GITHUB_TOKEN environment variable is not set")
		}
		g, err := gateway.NewAPIGateway(token, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want gh or api)", backend)
	}
}

func newReporter(fetcher gateway.Fetcher, logger *log.Logger) *usecase.Reporter {
	return usecase.NewReporter(fetcher, logger, usecase.WithConcurrency(settings.GetInt("concurrency")))
}
