package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/campusops/bbtoken/pkg/learn"
)

// runExpiration signs in to the configured Learn instance and prints, as a
// human phrase, when the issued session token expires.
func runExpiration(ctx context.Context, w io.Writer, arg *args) error {
	if err := initLogger(arg); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	ctx = withRequestID(ctx)

	client, err := newClient(ctx, arg)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, client.Expiration())

	return nil
}

// newClient loads the configuration and opens an authenticated session against
// the configured Learn instance.
func newClient(ctx context.Context, arg *args) (*learn.Client, error) {
	cfg, err := loadConfig(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client, err := learn.New(ctx, cfg.BB.AppKey, cfg.BB.Secret, cfg.BB.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
