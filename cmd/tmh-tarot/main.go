package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tmh-tarot-scraper/internal/app"
	"tmh-tarot-scraper/internal/config"
	"tmh-tarot-scraper/internal/fetcher"
	"tmh-tarot-scraper/internal/images"
	"tmh-tarot-scraper/internal/observability"
	"tmh-tarot-scraper/internal/scraper"
	"tmh-tarot-scraper/internal/storage/csvfile"
)

var (
	flagConfig    string
	flagCSV       string
	flagImagesDir string
	flagNoImages  bool
)

var rootCmd = &cobra.Command{
	Use:   "tmh-tarot",
	Short: "Scrape card descriptions from This Might Hurt Tarot",
	Long: `tmh-tarot fetches the five card-description pages from
thismighthurttarot.com, extracts every card (name, suit/arcana, subtitle,
description, image URL) into a CSV file and optionally downloads the card
artwork. Runs with no arguments; flags and an optional YAML config file
override the defaults.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to YAML config file")
	rootCmd.Flags().StringVar(&flagCSV, "csv", "", "output CSV path (overrides config)")
	rootCmd.Flags().StringVar(&flagImagesDir, "images-dir", "", "image output directory (overrides config)")
	rootCmd.Flags().BoolVar(&flagNoImages, "no-images", false, "skip downloading card images")
}

func run() error {
	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagCSV != "" {
		cfg.Output.CSVPath = flagCSV
	}
	if flagImagesDir != "" {
		cfg.Output.ImagesDir = flagImagesDir
	}
	if flagNoImages {
		cfg.Output.DownloadImages = false
	}

	logger := observability.NewLogger(cfg.Observability.LogPath, cfg.Observability.LogLevel)

	selectors, err := cfg.Selectors()
	if err != nil {
		return err
	}

	ctx, cancel := app.GracefulShutdown(logger)
	defer cancel()

	f := fetcher.NewFetcher(cfg, logger)
	scr := scraper.NewScraper(selectors)
	sink := csvfile.NewWriter(cfg.Output.CSVPath, logger)
	dl := images.NewDownloader(f, logger, cfg.Output.ImagesDir)

	orch := app.NewOrchestrator(cfg, logger, f, scr, sink, dl)
	stats, runErr := orch.Run(ctx)

	printSummary(cfg, stats, runErr == nil)

	return runErr
}

func printSummary(cfg *config.Config, stats *app.RunStats, wroteCSV bool) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Printf("%s %d/%d pages scraped, %d cards\n",
		green("✓"), stats.PagesOK, len(cfg.Pages), stats.Cards)
	if wroteCSV && cfg.Output.DownloadImages {
		fmt.Printf("%s %d images downloaded to %s/\n",
			green("✓"), stats.ImagesOK, cfg.Output.ImagesDir)
	}
	if stats.PagesFailed > 0 || stats.ImagesFailed > 0 {
		fmt.Printf("%s %d pages, %d images failed (see log)\n",
			red("✗"), stats.PagesFailed, stats.ImagesFailed)
	}
	if wroteCSV {
		fmt.Printf("Wrote %s\n", cfg.Output.CSVPath)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
