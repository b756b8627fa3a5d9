package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jdalain/teq-dashboard/internal/metrics"
	"github.com/jdalain/teq-dashboard/internal/models"
)

// afadTimeParam is the timestamp format the AFAD filter endpoint expects in
// its start/end query parameters.
const afadTimeParam = "2006-01-02 15:04:05"

// FetchEvents fetches earthquake events from the AFAD API for the given date
// window. Responses are cached per window for the configured TTL.
func (f *DataFetcher) FetchEvents(ctx context.Context, start, end time.Time) ([]models.Earthquake, error) {
	if events, ok := f.cached(start, end); ok {
		metrics.FetchesTotal.WithLabelValues("afad", "cache_hit").Inc()
		f.log.Debug().Time("start", start).Time("end", end).Int("events", len(events)).
			Msg("serving AFAD window from cache")
		return events, nil
	}

	began := f.clock.Now()
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"start": start.UTC().Format(afadTimeParam),
			"end":   end.UTC().Format(afadTimeParam),
		}).
		Get(f.afadURL)
	metrics.FetchDuration.WithLabelValues("afad").Observe(f.clock.Since(began).Seconds())

	if err != nil {
		metrics.FetchesTotal.WithLabelValues("afad", "error").Inc()
		return nil, fmt.Errorf("failed to fetch AFAD events: %w", err)
	}

	if resp.StatusCode() != 200 {
		metrics.FetchesTotal.WithLabelValues("afad", "error").Inc()
		return nil, fmt.Errorf("AFAD API returned status %d", resp.StatusCode())
	}

	var raw []models.AFADEvent
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		metrics.FetchesTotal.WithLabelValues("afad", "error").Inc()
		return nil, fmt.Errorf("failed to parse AFAD response: %w", err)
	}

	events := make([]models.Earthquake, 0, len(raw))
	dropped := 0
	for _, rec := range raw {
		quake, err := rec.Parse()
		if err != nil {
			dropped++
			f.log.Debug().Err(err).Str("event_id", rec.EventID).Msg("dropping malformed event record")
			continue
		}
		events = append(events, quake)
	}

	metrics.FetchesTotal.WithLabelValues("afad", "ok").Inc()
	metrics.EventsFetched.Set(float64(len(events)))
	f.log.Info().Int("events", len(events)).Int("dropped", dropped).
		Time("start", start).Time("end", end).Msg("fetched AFAD events")

	f.store(start, end, events)
	return events, nil
}
