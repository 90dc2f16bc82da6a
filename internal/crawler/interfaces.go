package crawler

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher retrieves one page and returns it parsed. Implementations are
// strictly synchronous: one request in flight at a time.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (*goquery.Document, error)
}

// ProcessedSet tracks identifiers that have already been fully extracted.
// Contains answers from memory; Add must be durable before it returns.
type ProcessedSet interface {
	Contains(id string) bool
	Add(ctx context.Context, id string) error
}

// RowWriter appends one row to a named append-only sink.
type RowWriter interface {
	Append(sink string, fields ...string) error
}

// Pauser abstracts sleeping so politeness delays and cooldowns are
// observable in tests.
type Pauser interface {
	Pause(ctx context.Context, d time.Duration)
}
