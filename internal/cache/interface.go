package cache

import "context"

// SummaryCache stores generated summary text by key.
// A miss is reported as ok == false with a nil error.
type SummaryCache interface {
	Get(ctx context.Context, key string) (text string, ok bool, err error)
	Set(ctx context.Context, key, text string) error
}
