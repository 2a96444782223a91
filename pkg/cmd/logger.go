package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// ContextHandler is a custom slog.Handler that enriches log records with application-specific attributes.
// It embeds a slog.Handler and adds attributes like application name and version, as well as request-specific context data.
type ContextHandler struct {
	slog.Handler
	ver string
	app string
}

// Handle processes a log record by enriching it with context and application-specific attributes.
// It adds attributes such as "req_id" from the context, "app", and "ver" before delegating to the embedded handler.
// Returns error if the embedded handler fails.

//nolint:gocritic // ignore this linting rule
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if requestID, ok := ctx.Value("req_id").(string); ok {
		r.AddAttrs(slog.String("req_id", requestID))
	}

	r.AddAttrs(slog.String("app", h.app), slog.String("ver", h.ver))

	return h.Handler.Handle(ctx, r)
}

// withRequestID tags the context with a fresh request id so every log line of
// one invocation can be correlated.
func withRequestID(ctx context.Context) context.Context {
	//nolint:staticcheck // the key stays a plain string so handlers need no shared key type
	return context.WithValue(ctx, "req_id", uuid.New().String())
}

// initLogger initializes the default logger for the application using slog.
// Logs go to stderr; stdout is reserved for command output.
// It returns an error if the log level cannot be parsed.
func initLogger(arg *args) error {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(arg.LogLevel)); err != nil {
		return err
	}

	options := &slog.HandlerOptions{
		Level: logLevel,
	}

	var logHandler slog.Handler
	if arg.TextFormat {
		logHandler = slog.NewTextHandler(os.Stderr, options)
	} else {
		logHandler = slog.NewJSONHandler(os.Stderr, options)
	}

	ctxHandler := &ContextHandler{
		Handler: logHandler,
		ver:     arg.version,
		app:     "bbtoken",
	}

	logger := slog.New(ctxHandler)

	slog.SetDefault(logger)

	return nil
}
