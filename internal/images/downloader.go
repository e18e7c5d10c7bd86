package images

import (
	"context"
	"os"
	"path/filepath"

	"tmh-tarot-scraper/internal/fetcher"
	"tmh-tarot-scraper/internal/normalize"
	"tmh-tarot-scraper/internal/observability"
	"tmh-tarot-scraper/internal/scraper"
)

// Downloader stores card artwork under a local directory, one file per
// card, named from the card title. Filenames are deterministic, so a
// re-run overwrites instead of duplicating.
type Downloader struct {
	fetcher *fetcher.Fetcher
	logger  *observability.Logger
	dir     string
}

func NewDownloader(f *fetcher.Fetcher, logger *observability.Logger, dir string) *Downloader {
	return &Downloader{
		fetcher: f,
		logger:  logger,
		dir:     dir,
	}
}

// FileName derives the image filename for a card.
func FileName(card *scraper.Card) string {
	return normalize.Slug(card.Name) + normalize.FileExt(card.ImageURL)
}

// DownloadAll fetches every card image sequentially. A failed image is
// logged and skipped; it never aborts the remaining downloads. Cards
// without an image URL are not counted either way.
func (d *Downloader) DownloadAll(ctx context.Context, cards []*scraper.Card) (ok, failed int) {
	candidates := 0
	for _, card := range cards {
		if card.ImageURL != "" {
			candidates++
		}
	}
	if candidates == 0 {
		return 0, 0
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		d.logger.Error("Failed to create images directory", "dir", d.dir, "error", err.Error())
		return 0, candidates
	}

	for _, card := range cards {
		if card.ImageURL == "" {
			continue
		}

		resp, err := d.fetcher.FetchImage(ctx, card.ImageURL)
		if err != nil {
			d.logger.Warn("Image download failed",
				"card", card.Name,
				"url", card.ImageURL,
				"error", err.Error(),
			)
			failed++
			continue
		}

		path := filepath.Join(d.dir, FileName(card))
		if err := os.WriteFile(path, resp.Body, 0o644); err != nil {
			d.logger.Warn("Image write failed",
				"card", card.Name,
				"path", path,
				"error", err.Error(),
			)
			failed++
			continue
		}

		d.logger.Debug("Image saved", "card", card.Name, "path", path, "bytes", len(resp.Body))
		ok++
	}

	return ok, failed
}
