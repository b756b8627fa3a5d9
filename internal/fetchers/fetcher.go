package fetchers

import (
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jonboulle/clockwork"
	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"

	"github.com/jdalain/teq-dashboard/internal/logger"
	"github.com/jdalain/teq-dashboard/internal/models"
)

// DataFetcher handles fetching earthquake data from external sources.
type DataFetcher struct {
	client  *resty.Client
	parser  *gofeed.Parser
	clock   clockwork.Clock
	log     zerolog.Logger
	afadURL string
	feedURL string

	// Fetched windows are cached briefly so slider-driven refetches do not
	// hammer the AFAD API (one upstream call per window per TTL).
	cacheTTL time.Duration
	mu       sync.Mutex
	cache    map[string]cacheEntry
}

type cacheEntry struct {
	events    []models.Earthquake
	fetchedAt time.Time
}

// NewDataFetcher creates a new data fetcher instance.
func NewDataFetcher(afadURL, feedURL string, cacheTTL time.Duration) *DataFetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	return &DataFetcher{
		client:   client,
		parser:   gofeed.NewParser(),
		clock:    clockwork.NewRealClock(),
		log:      logger.For("fetchers"),
		afadURL:  afadURL,
		feedURL:  feedURL,
		cacheTTL: cacheTTL,
		cache:    make(map[string]cacheEntry),
	}
}

// cacheKey identifies one requested date window.
func cacheKey(start, end time.Time) string {
	return start.UTC().Format(time.RFC3339) + "/" + end.UTC().Format(time.RFC3339)
}

// cached returns a still-fresh cached window, if any.
func (f *DataFetcher) cached(start, end time.Time) ([]models.Earthquake, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.cache[cacheKey(start, end)]
	if !ok {
		return nil, false
	}
	if f.clock.Since(entry.fetchedAt) > f.cacheTTL {
		delete(f.cache, cacheKey(start, end))
		return nil, false
	}
	return entry.events, true
}

// store caches a fetched window.
func (f *DataFetcher) store(start, end time.Time, events []models.Earthquake) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache[cacheKey(start, end)] = cacheEntry{events: events, fetchedAt: f.clock.Now()}
}
