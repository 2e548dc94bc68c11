// Package store keeps processed call logs. The process owns the store's
// lifecycle and injects it into the webhook handlers.
package store

import (
	"context"
	"errors"

	"intake-insights-go/internal/types"
)

var ErrNotFound = errors.New("call log not found")

type Filter struct {
	BotID string
	Limit int
}

// CallLogStore is implemented by MemoryStore and PostgresStore.
// List returns newest first by CreatedAt.
type CallLogStore interface {
	Append(ctx context.Context, log types.CallLog) error
	List(ctx context.Context, f Filter) ([]types.CallLog, error)
	Get(ctx context.Context, id string) (types.CallLog, error)
	Count(ctx context.Context) (int, error)
	Close()
}
