package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jdalain/teq-dashboard/internal/catalog"
	"github.com/jdalain/teq-dashboard/internal/config"
	"github.com/jdalain/teq-dashboard/internal/metrics"
	"github.com/jdalain/teq-dashboard/internal/reports"
	"github.com/jdalain/teq-dashboard/internal/storage"
)

// HandleDashboard serves the interactive dashboard page. Invalid filter
// parameters fall back to the default view rather than erroring, so a broken
// bookmark still shows a dashboard.
func (s *Server) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	window, err := s.parseWindow(r.URL.Query())
	if err != nil {
		s.log.Warn().Err(err).Msg("Invalid filter parameters, using defaults")
		window = s.defaultWindow()
	}

	view, err := s.buildView(r, window)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to build dashboard view")
		metrics.DashboardRenders.WithLabelValues("error").Inc()
		http.Error(w, "Failed to fetch earthquake data", http.StatusBadGateway)
		return
	}

	// Side panel and summary are best-effort; the dashboard renders
	// without them.
	notable, err := s.Fetcher.FetchNotable(r.Context())
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to fetch notable earthquakes feed")
	}

	summary := s.activitySummary(r, view)

	page, err := s.Builder.BuildDashboard(view, notable, summary)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to render dashboard")
		metrics.DashboardRenders.WithLabelValues("error").Inc()
		http.Error(w, "Failed to render dashboard", http.StatusInternalServerError)
		return
	}

	metrics.DashboardRenders.WithLabelValues("ok").Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// HandleEventsAPI serves the filtered view as JSON.
func (s *Server) HandleEventsAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	window, err := s.parseWindow(r.URL.Query())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := s.buildView(r, window)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to build view for events API")
		writeJSONError(w, http.StatusBadGateway, "failed to fetch earthquake data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// HandleExportCSV serves the filtered events as a CSV download.
func (s *Server) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	window, err := s.parseWindow(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := s.buildView(r, window)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to build view for CSV export")
		http.Error(w, "Failed to fetch earthquake data", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", reports.ExportFileName(window)))

	if err := reports.WriteCSV(w, view.Events); err != nil {
		s.log.Error().Err(err).Msg("Failed to write CSV export")
		return
	}
	metrics.CSVExportsTotal.Inc()
}

// HandleHealth provides the health check endpoint.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"version":   config.GetVersion(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"storage": "ok",
			"config":  "ok",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleSnapshot builds and stores a snapshot bundle of the current view:
// the rendered page, the view JSON, the CSV export and static chart images.
func (s *Server) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Reject concurrent builds instead of queueing them.
	if !s.snapshotMutex.TryLock() {
		s.log.Warn().Msg("Snapshot build already in progress, rejecting new request")
		writeJSONError(w, http.StatusConflict, "snapshot build already in progress")
		return
	}
	defer s.snapshotMutex.Unlock()

	window, err := s.parseWindow(r.URL.Query())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.buildSnapshot(r, window)
	if err != nil {
		s.log.Error().Err(err).Msg("Snapshot build failed")
		metrics.SnapshotsTotal.WithLabelValues("error").Inc()
		writeJSONError(w, http.StatusInternalServerError, "snapshot build failed: "+err.Error())
		return
	}

	metrics.SnapshotsTotal.WithLabelValues("ok").Inc()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleListSnapshots lists stored snapshots, newest first.
func (s *Server) HandleListSnapshots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
		if limit > 100 {
			limit = 100
		}
	}

	snapshots, err := s.Storage.ListSnapshots(r.Context(), limit)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to list snapshots")
		writeJSONError(w, http.StatusInternalServerError, "failed to list snapshots")
		return
	}

	response := map[string]interface{}{
		"snapshots": snapshots,
		"count":     len(snapshots),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleLatestSnapshot redirects to the most recent stored snapshot page.
func (s *Server) HandleLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	latest, err := s.Storage.GetLatestSnapshot(r.Context())
	if err != nil {
		s.log.Debug().Err(err).Msg("No snapshots stored yet")
		http.Error(w, "No snapshots available", http.StatusNotFound)
		return
	}

	http.Redirect(w, r, "/files/"+latest, http.StatusFound)
}

// HandleFileProxy serves snapshot files from storage.
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/files/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}

	// Prevent directory traversal.
	if strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	fileData, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		s.log.Debug().Err(err).Str("path", filePath).Msg("File not found in storage")
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(filePath))
	w.Write(fileData)
}

// buildView fetches the window's events and derives the dashboard view.
func (s *Server) buildView(r *http.Request, window catalog.Window) (*catalog.View, error) {
	events, err := s.Fetcher.FetchEvents(r.Context(), window.Start, window.End)
	if err != nil {
		return nil, err
	}
	return catalog.BuildView(events, window, time.Now().UTC()), nil
}

// activitySummary asks the LLM for a markdown briefing; returns empty when
// summaries are disabled or the request fails.
func (s *Server) activitySummary(r *http.Request, view *catalog.View) string {
	if s.LLMClient == nil {
		return ""
	}
	summary, err := s.LLMClient.GenerateSummary(r.Context(), view)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to generate activity summary")
		return ""
	}
	return summary
}

// snapshotResult is the response body of a successful snapshot build.
type snapshotResult struct {
	Folder    string   `json:"folder"`
	Files     []string `json:"files"`
	Events    int      `json:"events"`
	Timestamp string   `json:"timestamp"`
}

// buildSnapshot renders the current view and stores all bundle files.
func (s *Server) buildSnapshot(r *http.Request, window catalog.Window) (*snapshotResult, error) {
	ctx := r.Context()
	now := time.Now().UTC()

	view, err := s.buildView(r, window)
	if err != nil {
		return nil, fmt.Errorf("failed to build view: %w", err)
	}

	notable, err := s.Fetcher.FetchNotable(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Snapshot proceeding without notable earthquakes feed")
	}

	summary := s.activitySummary(r, view)
	page, err := s.Builder.BuildDashboard(view, notable, summary)
	if err != nil {
		return nil, fmt.Errorf("failed to render dashboard page: %w", err)
	}

	viewJSON, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal view: %w", err)
	}

	var csvBuf strings.Builder
	if err := reports.WriteCSV(&csvBuf, view.Events); err != nil {
		return nil, fmt.Errorf("failed to build CSV export: %w", err)
	}

	bundle := map[string][]byte{
		"index.html": []byte(page),
		"view.json":  viewJSON,
		reports.ExportFileName(window): []byte(csvBuf.String()),
	}
	if summary != "" {
		bundle["summary.md"] = []byte(summary)
	}

	stored := make([]string, 0, len(bundle)+3)
	for filename, data := range bundle {
		if err := s.Storage.StoreFile(ctx, data, filename, now); err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", filename, err)
		}
		stored = append(stored, filename)
	}

	// Static chart images are best-effort extras in the bundle.
	if pngs, err := s.ChartGen.RenderPNGCharts(view); err == nil {
		stored = append(stored, s.storePNGCharts(ctx, pngs, now)...)
	}

	return &snapshotResult{
		Folder:    storage.GenerateSnapshotFolderPath(now),
		Files:     stored,
		Events:    view.Summary.Total,
		Timestamp: now.Format(time.RFC3339),
	}, nil
}

// storePNGCharts copies rendered chart images into the snapshot folder.
func (s *Server) storePNGCharts(ctx context.Context, paths []string, timestamp time.Time) []string {
	var stored []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("Failed to read rendered chart")
			continue
		}
		filename := filepath.Base(path)
		if err := s.Storage.StoreFile(ctx, data, filename, timestamp); err != nil {
			s.log.Warn().Err(err).Str("file", filename).Msg("Failed to store chart image")
			continue
		}
		stored = append(stored, filename)
	}
	return stored
}

// writeJSONError writes a JSON error body with the given status.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
