package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/encrypter15/Armitage-Market-Mirror/config"
	"github.com/encrypter15/Armitage-Market-Mirror/models"
	"github.com/encrypter15/Armitage-Market-Mirror/scraper"
	"github.com/encrypter15/Armitage-Market-Mirror/scraper/amazon"
	"github.com/encrypter15/Armitage-Market-Mirror/scraper/ebay"
	"github.com/encrypter15/Armitage-Market-Mirror/services"
	"github.com/encrypter15/Armitage-Market-Mirror/storage"
	"github.com/encrypter15/Armitage-Market-Mirror/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Debug)

	logger.Info("=== Armitage Market Mirror — run %s ===", uuid.NewString())

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter product search term (e.g., Armitage brass tap): ")
	term, _ := reader.ReadString('\n')
	term = strings.TrimSpace(term)
	if term == "" {
		logger.Error("A search term is required")
		os.Exit(1)
	}

	fmt.Print("Enter price threshold for alerts (e.g., 50 for $50): ")
	rawThreshold, _ := reader.ReadString('\n')
	threshold, err := strconv.ParseFloat(strings.TrimSpace(rawThreshold), 64)
	if err != nil || threshold < 0 {
		fmt.Printf("Invalid price threshold. Using default: $%g\n", cfg.DefaultThreshold)
		threshold = cfg.DefaultThreshold
	}

	logger.Info("Scraping for: %s (price threshold: $%g)", term, threshold)

	// Nothing downstream can run without the store, so failing to open it
	// ends the run. Everything after this point degrades per stage instead.
	store, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open listing store: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	fetcher := scraper.NewHTTPFetcher(cfg, logger)
	sources := []scraper.Source{
		ebay.New(cfg, fetcher, logger),
		amazon.New(cfg, fetcher, logger),
	}

	// A failing source contributes nothing; the others still count.
	var batch []*models.Listing
	for _, src := range sources {
		listings, err := src.Scrape(term)
		if err != nil {
			logger.Error("%s scrape error: %v", src.Name(), err)
			continue
		}
		batch = append(batch, listings...)
	}

	if len(batch) > 0 {
		if err := store.InsertMany(batch); err != nil {
			logger.Error("Failed to persist %d listings: %v", len(batch), err)
		} else {
			logger.Info("Persisted %d listings", len(batch))
		}
	}

	analyzer := services.NewAnalyzer(cfg.RelevanceCutoff, logger)
	if report := analyzer.Analyze(batch, threshold); report != nil {
		analyzer.Print(report)
	} else {
		fmt.Println("No relevant listings found.")
	}

	history, err := store.ReadAll()
	if err != nil {
		logger.Error("Failed to read listing history for export: %v", err)
		return
	}
	if err := storage.NewCSVExporter(cfg.ExportPath).Export(history); err != nil {
		logger.Error("CSV export failed: %v", err)
		return
	}
	logger.Info("Exported %d listings to %s", len(history), cfg.ExportPath)
}
