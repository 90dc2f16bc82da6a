// Package snapshot stores raw HTML copies of fetched pages so extraction
// results can be audited after the fact.
package snapshot

import "context"

// Store writes one raw page artifact and returns its URI.
type Store interface {
	Put(ctx context.Context, path string, contentType string, data []byte) (string, error)
}
