package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
)

// SessionFn is a function that runs against a single dedicated database session.
type SessionFn func(ctx context.Context, conn DBTX) error

// WithSession acquires one session from db, runs fn with it and releases the
// session on every exit path, including a panic inside fn. The error returned
// by fn is passed through unchanged.
func WithSession(ctx context.Context, db SessionOpener, fn SessionFn) (err error) {
	log := logger.FromContext(ctx)

	conn, err := db.Conn(ctx)
	if err != nil {
		log.Error("failed to open database session",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", ErrSessionFailed, err)
	}

	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			log.Error("failed to release database session",
				slog.String("error", closeErr.Error()))
			if err == nil {
				err = fmt.Errorf("failed to release session: %w", closeErr)
			}
		}
	}()

	return fn(ctx, conn)
}
