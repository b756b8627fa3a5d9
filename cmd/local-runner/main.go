// Command local-runner builds one dashboard snapshot from the command line
// without starting the HTTP server. It is the quickest way to eyeball the
// full fetch, filter and render pipeline during development.
package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/jdalain/teq-dashboard/internal/catalog"
	"github.com/jdalain/teq-dashboard/internal/charts"
	"github.com/jdalain/teq-dashboard/internal/config"
	"github.com/jdalain/teq-dashboard/internal/fetchers"
	"github.com/jdalain/teq-dashboard/internal/llm"
	"github.com/jdalain/teq-dashboard/internal/logger"
	"github.com/jdalain/teq-dashboard/internal/reports"
	"github.com/jdalain/teq-dashboard/internal/storage"
)

func main() {
	// Local convenience; missing .env is fine.
	_ = godotenv.Load()

	log := logger.Init(logger.Options{Level: "debug", Pretty: true})

	ctx := context.Background()
	startTime := time.Now()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	start, err := cfg.DefaultStart()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid default start date")
	}
	window := catalog.Window{
		Start:        start,
		End:          time.Now().UTC(),
		MinMagnitude: 0,
		MaxMagnitude: 10,
	}

	log.Info().
		Str("start", window.Start.Format("2006-01-02")).
		Str("end", window.End.Format("2006-01-02")).
		Msg("Fetching earthquake events")

	fetcher := fetchers.NewDataFetcher(cfg.AFADEventURL, cfg.USGSFeedURL, cfg.CacheTTL)
	events, err := fetcher.FetchEvents(ctx, window.Start, window.End)
	if err != nil {
		log.Fatal().Err(err).Msg("Event fetch failed")
	}

	view := catalog.BuildView(events, window, time.Now().UTC())
	log.Info().
		Int("fetched", len(events)).
		Int("in_view", view.Summary.Total).
		Int("since_mainshock", view.Summary.SinceMainshock).
		Msg("View built")

	notable, err := fetcher.FetchNotable(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Proceeding without notable earthquakes feed")
	}

	var summary string
	if llmClient := llm.NewSummaryClient(cfg.OpenAIAPIKey, cfg.OpenAIModel); llmClient != nil {
		summary, err = llmClient.GenerateSummary(ctx, view)
		if err != nil {
			log.Warn().Err(err).Msg("Proceeding without activity summary")
		}
	} else {
		log.Info().Msg("OPENAI_API_KEY not set, skipping activity summary")
	}

	chartGen := charts.NewGenerator(cfg.LocalSnapshotsDir)
	builder := reports.NewDashboardBuilder(chartGen)

	page, err := builder.BuildDashboard(view, notable, summary)
	if err != nil {
		log.Fatal().Err(err).Msg("Dashboard render failed")
	}

	viewJSON, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal view")
	}

	var csvBuf strings.Builder
	if err := reports.WriteCSV(&csvBuf, view.Events); err != nil {
		log.Fatal().Err(err).Msg("CSV export failed")
	}

	store, err := storage.NewLocalStorageClient(cfg.LocalSnapshotsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize local storage")
	}
	defer store.Close()

	now := time.Now().UTC()
	files := map[string][]byte{
		"index.html": []byte(page),
		"view.json":  viewJSON,
		reports.ExportFileName(window): []byte(csvBuf.String()),
	}
	for filename, data := range files {
		if err := store.StoreFile(ctx, data, filename, now); err != nil {
			log.Fatal().Err(err).Str("file", filename).Msg("Failed to store snapshot file")
		}
	}

	if pngs, err := chartGen.RenderPNGCharts(view); err == nil {
		for _, path := range pngs {
			data, readErr := os.ReadFile(path)
			if readErr != nil {
				log.Warn().Err(readErr).Str("path", path).Msg("Failed to read chart image")
				continue
			}
			if err := store.StoreFile(ctx, data, filepath.Base(path), now); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Failed to store chart image")
			}
		}
	}

	folder := filepath.Join(cfg.LocalSnapshotsDir, storage.GenerateSnapshotFolderPath(now))
	result := map[string]interface{}{
		"status":          "success",
		"snapshot_dir":    folder,
		"duration_ms":     time.Since(startTime).Milliseconds(),
		"events_fetched":  len(events),
		"events_in_view":  view.Summary.Total,
		"since_mainshock": view.Summary.SinceMainshock,
		"page_size":       len(page),
	}
	resultJSON, _ := json.MarshalIndent(result, "", "  ")
	log.Info().Msgf("Snapshot summary:\n%s", resultJSON)
	log.Info().Msgf("Open in browser: file://%s/index.html", mustAbs(folder))
}

func mustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
