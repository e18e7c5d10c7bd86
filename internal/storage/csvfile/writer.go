package csvfile

import (
	"context"
	"encoding/csv"
	"os"

	"tmh-tarot-scraper/internal/observability"
	"tmh-tarot-scraper/internal/scraper"
	"tmh-tarot-scraper/internal/storage"
)

var header = []string{"Card", "Suit/Arcana", "Subtitle", "Description", "Image URL"}

// Writer serializes card records to a single CSV file, truncating any
// previous output so re-runs stay byte-identical for identical input.
type Writer struct {
	path   string
	logger *observability.Logger
}

func NewWriter(path string, logger *observability.Logger) *Writer {
	return &Writer{
		path:   path,
		logger: logger,
	}
}

func (w *Writer) SaveAll(ctx context.Context, cards []*scraper.Card) error {
	file, err := os.Create(w.path)
	if err != nil {
		return &storage.WriteError{Path: w.path, Err: err}
	}

	cw := csv.NewWriter(file)
	if err := cw.Write(header); err != nil {
		_ = file.Close()
		return &storage.WriteError{Path: w.path, Err: err}
	}

	for _, card := range cards {
		row := []string{card.Name, card.SuitArcana, card.Subtitle, card.Description, card.ImageURL}
		if err := cw.Write(row); err != nil {
			_ = file.Close()
			return &storage.WriteError{Path: w.path, Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = file.Close()
		return &storage.WriteError{Path: w.path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &storage.WriteError{Path: w.path, Err: err}
	}

	w.logger.Info("CSV written", "path", w.path, "rows", len(cards))
	return nil
}
