package storage

import (
	"context"
	"fmt"

	"tmh-tarot-scraper/internal/scraper"
)

// WriteError means the output destination could not be written. Unlike a
// failed page or image, this is fatal: the CSV is the primary deliverable.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Sink persists the full set of extracted cards at the end of a run.
type Sink interface {
	SaveAll(ctx context.Context, cards []*scraper.Card) error
}
