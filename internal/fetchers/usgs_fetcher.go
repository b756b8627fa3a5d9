package fetchers

import (
	"context"
	"fmt"
	"sort"

	"github.com/jdalain/teq-dashboard/internal/metrics"
	"github.com/jdalain/teq-dashboard/internal/models"
)

// maxNotableQuakes caps the side-panel feed length.
const maxNotableQuakes = 10

// FetchNotable fetches the worldwide significant-earthquakes feed for the
// dashboard side panel.
func (f *DataFetcher) FetchNotable(ctx context.Context) ([]models.NotableQuake, error) {
	began := f.clock.Now()
	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.feedURL)
	metrics.FetchDuration.WithLabelValues("usgs").Observe(f.clock.Since(began).Seconds())

	if err != nil {
		metrics.FetchesTotal.WithLabelValues("usgs", "error").Inc()
		return nil, fmt.Errorf("failed to fetch significant quakes feed: %w", err)
	}

	if resp.StatusCode() != 200 {
		metrics.FetchesTotal.WithLabelValues("usgs", "error").Inc()
		return nil, fmt.Errorf("significant quakes feed returned status %d", resp.StatusCode())
	}

	feed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		metrics.FetchesTotal.WithLabelValues("usgs", "error").Inc()
		return nil, fmt.Errorf("failed to parse significant quakes feed: %w", err)
	}

	var notable []models.NotableQuake
	for _, item := range feed.Items {
		if item.PublishedParsed == nil {
			continue
		}
		notable = append(notable, models.NotableQuake{
			Title:     item.Title,
			Link:      item.Link,
			Published: *item.PublishedParsed,
		})
	}

	sort.Slice(notable, func(i, j int) bool {
		return notable[i].Published.After(notable[j].Published)
	})
	if len(notable) > maxNotableQuakes {
		notable = notable[:maxNotableQuakes]
	}

	metrics.FetchesTotal.WithLabelValues("usgs", "ok").Inc()
	f.log.Info().Int("items", len(notable)).Msg("fetched significant quakes feed")
	return notable, nil
}
