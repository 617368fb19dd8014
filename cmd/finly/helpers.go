package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tdeshpande/finly/internal/api"
	"github.com/tdeshpande/finly/internal/common"
	"github.com/tdeshpande/finly/internal/config"
	"github.com/tdeshpande/finly/internal/session"
)

// initSession opens the local session store with proper path expansion.
func initSession() (*session.Store, error) {
	dbPath := viper.GetString("session.path")
	if dbPath == "" {
		var err error
		dbPath, err = config.DataFilePath("session.db")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve session path: %w", err)
		}
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	return session.NewStore(dbPath)
}

// initClient builds the API client around the session's credential store.
func initClient(store *session.Store) (*api.Client, error) {
	return api.NewClient(api.Config{
		BaseURL:  viper.GetString("api.base_url"),
		Timeout:  viper.GetDuration("api.timeout"),
		CacheTTL: viper.GetDuration("api.cache_ttl"),
	}, store)
}

// withClient wires up the session store and API client for a command body.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, client *api.Client, store *session.Store) error) error {
	store, err := initSession()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	client, err := initClient(store)
	if err != nil {
		return err
	}

	return decorateError(fn(cmd.Context(), client, store))
}

// decorateError turns a rejected credential into a sign-in hint; everything
// else passes through for the root command to report.
func decorateError(err error) error {
	if err == nil {
		return nil
	}
	// Errors that already carry a user-facing message (e.g. a failed login)
	// pass through untouched.
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		return err
	}
	if errors.Is(err, common.ErrAuthRequired) {
		return common.NewUserError("session expired: run 'finly login' to sign in again", err)
	}
	return err
}
