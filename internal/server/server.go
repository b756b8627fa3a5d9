// Package server wires the HTTP surface of the earthquake dashboard: the
// dashboard page itself, the JSON API, CSV export, snapshots and the
// operational endpoints.
package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jdalain/teq-dashboard/internal/charts"
	"github.com/jdalain/teq-dashboard/internal/config"
	"github.com/jdalain/teq-dashboard/internal/fetchers"
	"github.com/jdalain/teq-dashboard/internal/llm"
	"github.com/jdalain/teq-dashboard/internal/logger"
	"github.com/jdalain/teq-dashboard/internal/reports"
	"github.com/jdalain/teq-dashboard/internal/storage"
)

// Server is the main application server.
type Server struct {
	Config         *config.Config
	Fetcher        *fetchers.DataFetcher
	LLMClient      *llm.SummaryClient
	Builder        *reports.DashboardBuilder
	ChartGen       *charts.Generator
	Storage        storage.StorageClient
	DeploymentMode storage.DeploymentMode

	validate *validator.Validate
	log      zerolog.Logger

	// snapshotMutex serialises snapshot builds; concurrent requests are
	// rejected rather than queued.
	snapshotMutex sync.Mutex
}

// NewServer creates a new server instance.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	mode := storage.DeploymentMode(cfg.Environment)

	storageClient, err := storage.NewStorageClient(ctx, mode, cfg)
	if err != nil {
		return nil, err
	}

	chartGen := charts.NewGenerator(cfg.LocalSnapshotsDir)

	return &Server{
		Config:         cfg,
		Fetcher:        fetchers.NewDataFetcher(cfg.AFADEventURL, cfg.USGSFeedURL, cfg.CacheTTL),
		LLMClient:      llm.NewSummaryClient(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		Builder:        reports.NewDashboardBuilder(chartGen),
		ChartGen:       chartGen,
		Storage:        storageClient,
		DeploymentMode: mode,
		validate:       validator.New(),
		log:            logger.For("server"),
	}, nil
}

// SetupRoutes configures HTTP routes for the server.
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/events", s.HandleEventsAPI)
	mux.HandleFunc("/export.csv", s.HandleExportCSV)
	mux.HandleFunc("/snapshot", s.HandleSnapshot)
	mux.HandleFunc("/snapshots", s.HandleListSnapshots)
	mux.HandleFunc("/snapshots/latest", s.HandleLatestSnapshot)
	mux.HandleFunc("/files/", s.HandleFileProxy)

	// Catch-all: the dashboard itself.
	mux.HandleFunc("/", s.HandleDashboard)

	return mux
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}
