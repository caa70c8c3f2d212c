package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"listing-view/config"
	"listing-view/models"
	"listing-view/scraper/localch"
	"listing-view/services"
	"listing-view/storage"
	"listing-view/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(utils.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.New()
	logger.Info("=== Listing view renderer starting — run %s ===", runID)
	logger.Info("Config — language: %s | platform: %s | phone region: %s | concurrency: %d",
		cfg.Language, cfg.MapsPlatform, cfg.PhoneRegion, cfg.MaxConcurrency)

	rawRecords, err := loadRecords(ctx, cfg, logger)
	if err != nil {
		logger.Error("Loading records failed: %v", err)
		os.Exit(1)
	}
	if len(rawRecords) == 0 {
		logger.Error("No listing records to render. Set RECORDS_PATH or ENTRY_URLS.")
		os.Exit(1)
	}
	logger.Info("Loaded %d raw records", len(rawRecords))

	cleaner := services.NewCleaner(logger, cfg.PhoneRegion)
	records := cleaner.Clean(rawRecords)
	if len(records) == 0 {
		logger.Error("All records were dropped during cleaning. Exiting.")
		os.Exit(1)
	}

	translations := utils.NewTranslations(cfg.Language)
	if cfg.TranslationsPath != "" {
		if err := translations.Load(cfg.TranslationsPath); err != nil {
			logger.Warn("Using built-in translations: %v", err)
		}
	}

	renderer := services.NewRenderer(logger, services.ViewDeps{
		Images:     utils.NewImages(cfg.ImageBaseURL),
		Maps:       utils.NewPlatform(cfg.MapsPlatform),
		Translator: translations,
	}, cfg.CurrentLocation)
	summaries := renderer.Summarise(records)

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}
	defer csvWriter.Close()
	export(csvWriter, logger, cfg.CSVOutputPath, summaries)

	report := summaries
	pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL: %v", err)
		logger.Error("Make sure Docker is running: docker compose up -d")
	} else {
		defer pgWriter.Close()
		report = persist(pgWriter, logger, runID, summaries)
	}

	insightSvc := services.NewInsightService(logger)
	insightSvc.Print(insightSvc.Generate(report))

	fmt.Printf("  Done. Run %s | CSV → %s | PostgreSQL → listing_views\n\n", runID, cfg.CSVOutputPath)
}

// loadRecords prefers a local JSON dump and falls back to fetching entry pages.
func loadRecords(ctx context.Context, cfg *config.Config, logger *utils.Logger) ([]*models.ListingRecord, error) {
	if cfg.RecordsPath != "" {
		logger.Info("Reading records from %s", cfg.RecordsPath)
		return storage.ReadRecordsFile(cfg.RecordsPath)
	}
	if len(cfg.EntryURLs) == 0 {
		return nil, nil
	}
	return localch.New(cfg, logger).Fetch(ctx, cfg.EntryURLs)
}

func export(w storage.SummaryWriter, logger *utils.Logger, path string, summaries []*models.Summary) {
	if err := w.Write(summaries); err != nil {
		logger.Error("CSV write failed: %v", err)
		return
	}
	logger.Info("Rendered summaries saved to %s", path)
}

// persist stores the run and returns the rows to report on, read back from
// the store. On any store error the in-memory summaries are reported.
func persist(store storage.RunStore, logger *utils.Logger, runID uuid.UUID, summaries []*models.Summary) []*models.Summary {
	if err := store.WriteRun(runID, summaries); err != nil {
		logger.Error("PostgreSQL write failed: %v", err)
		return summaries
	}
	logger.Info("Rendered views stored in PostgreSQL (table: listing_views)")

	stored, err := store.FetchRun(runID)
	if err != nil {
		logger.Error("Failed to fetch run from DB for insights: %v", err)
		return summaries
	}
	return stored
}
