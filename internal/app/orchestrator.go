package app

import (
	"context"
	"fmt"

	"tmh-tarot-scraper/internal/config"
	"tmh-tarot-scraper/internal/fetcher"
	"tmh-tarot-scraper/internal/images"
	"tmh-tarot-scraper/internal/observability"
	"tmh-tarot-scraper/internal/scraper"
	"tmh-tarot-scraper/internal/storage"
)

type Orchestrator struct {
	cfg        *config.Config
	logger     *observability.Logger
	fetcher    *fetcher.Fetcher
	scraper    *scraper.Scraper
	sink       storage.Sink
	downloader *images.Downloader
}

func NewOrchestrator(
	cfg *config.Config,
	logger *observability.Logger,
	f *fetcher.Fetcher,
	s *scraper.Scraper,
	sink storage.Sink,
	d *images.Downloader,
) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		logger:     logger,
		fetcher:    f,
		scraper:    s,
		sink:       sink,
		downloader: d,
	}
}

type RunStats struct {
	PagesOK      int
	PagesFailed  int
	Cards        int
	ImagesOK     int
	ImagesFailed int
	FetchErrors  []error
}

// Run executes the full pipeline: fetch and extract each section page
// sequentially, sort the accumulated records, write the CSV, then download
// images when enabled. A failed page is skipped, not fatal; a failed CSV
// write is fatal, as is a run where no page could be fetched.
func (o *Orchestrator) Run(ctx context.Context) (*RunStats, error) {
	stats := &RunStats{}
	var cards []*scraper.Card

	for _, page := range o.cfg.Pages {
		pageURL := o.cfg.PageURL(page)
		o.logger.Info("Scraping section", "suit", page.Label, "url", pageURL)

		resp, err := o.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			o.logger.Error("Fetch failed",
				"suit", page.Label,
				"url", pageURL,
				"error", err.Error(),
			)
			stats.PagesFailed++
			stats.FetchErrors = append(stats.FetchErrors, err)
			continue
		}

		pageCards, err := o.scraper.Extract(string(resp.Body), page.Label, pageURL)
		if err != nil {
			o.logger.Error("Extract failed",
				"suit", page.Label,
				"url", pageURL,
				"error", err.Error(),
			)
			stats.PagesFailed++
			stats.FetchErrors = append(stats.FetchErrors, err)
			continue
		}

		if len(pageCards) == 0 {
			o.logger.Warn("No cards parsed on page, site structure may have changed",
				"suit", page.Label,
				"url", pageURL,
			)
		}

		stats.PagesOK++
		stats.Cards += len(pageCards)
		cards = append(cards, pageCards...)

		o.logger.Info("Section scraped", "suit", page.Label, "cards", len(pageCards))
	}

	if stats.PagesOK == 0 {
		return stats, fmt.Errorf("no pages fetched: all %d sections failed", stats.PagesFailed)
	}

	scraper.SortCards(cards)

	if err := o.sink.SaveAll(ctx, cards); err != nil {
		return stats, err
	}

	if o.cfg.Output.DownloadImages {
		stats.ImagesOK, stats.ImagesFailed = o.downloader.DownloadAll(ctx, cards)
	}

	o.logger.Info("Run completed",
		"pages_ok", stats.PagesOK,
		"pages_failed", stats.PagesFailed,
		"cards", stats.Cards,
		"images_ok", stats.ImagesOK,
		"images_failed", stats.ImagesFailed,
	)

	return stats, nil
}
