package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/fraudlens/fraudlens/internal/common"
	"github.com/fraudlens/fraudlens/internal/config"
	"github.com/fraudlens/fraudlens/internal/scoring"
	"github.com/fraudlens/fraudlens/internal/service"
	"github.com/fraudlens/fraudlens/internal/session"
	"github.com/fraudlens/fraudlens/internal/storage"
)

const defaultAPIURL = "http://localhost:8000"

func apiURL() string {
	if url := viper.GetString("api.url"); url != "" {
		return url
	}
	return defaultAPIURL
}

func sessionPath() string {
	path := viper.GetString("session.path")
	if path == "" {
		path = config.DefaultSessionPath
	}
	return config.ExpandPath(path)
}

// loadSession reads the stored credential. The api-url flag/config wins
// over the endpoint recorded at login time.
func loadSession() (session.Session, error) {
	s, err := session.Load(sessionPath())
	if err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			return session.Session{}, common.NewUserError(
				"not logged in; run: fraudlens auth login", err)
		}
		return session.Session{}, err
	}

	if url := viper.GetString("api.url"); url != "" {
		s.BaseURL = url
	}
	return s, nil
}

func newScoringClient() (*scoring.Client, error) {
	s, err := loadSession()
	if err != nil {
		return nil, err
	}
	return scoring.NewClient(s)
}

func historyPath() string {
	path := viper.GetString("database.path")
	if path == "" {
		path = config.DefaultDatabasePath
	}
	return config.ExpandPath(path)
}

// openHistory opens and migrates the local submission record.
func openHistory(ctx context.Context) (*storage.SQLiteStorage, error) {
	db, err := storage.NewSQLiteStorage(historyPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func closeHistory(h service.History) {
	if h == nil {
		return
	}
	if err := h.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}
