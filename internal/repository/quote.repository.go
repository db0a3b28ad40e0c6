package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"marketboard/internal/domain"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
)

// ErrDataUnavailable is returned when the provider has no usable data for a
// request. It is always non-fatal: callers degrade the affected row or cell.
var ErrDataUnavailable = errors.New("data unavailable")

type QuoteRepository interface {
	// List returns the close series for a symbol over [start, end], ordered
	// by date with no duplicates. Empty provider responses surface as
	// ErrDataUnavailable.
	List(symbol string, start, end time.Time) (domain.PriceSeries, error)
	// LongName resolves a display name for a symbol, falling back to the
	// symbol itself. It never fails.
	LongName(symbol string) string
}

type seriesCacheEntry struct {
	series    domain.PriceSeries
	fetchedAt time.Time
}

type nameCacheEntry struct {
	name      string
	fetchedAt time.Time
}

type YahooQuoteRepositoryHandler struct {
	QuoteTTL time.Duration
	NameTTL  time.Duration

	mu          *sync.RWMutex
	seriesCache map[string]seriesCacheEntry
	nameCache   map[string]nameCacheEntry

	// swapped out in tests
	now        func() time.Time
	fetchChart func(symbol string, start, end time.Time) ([]domain.Point, error)
	fetchName  func(symbol string) (string, error)
}

func NewYahooQuoteRepository(quoteTTL, nameTTL time.Duration) *YahooQuoteRepositoryHandler {
	return &YahooQuoteRepositoryHandler{
		QuoteTTL:    quoteTTL,
		NameTTL:     nameTTL,
		mu:          &sync.RWMutex{},
		seriesCache: map[string]seriesCacheEntry{},
		nameCache:   map[string]nameCacheEntry{},
		now:         time.Now,
		fetchChart:  fetchYahooChart,
		fetchName:   fetchYahooLongName,
	}
}

func seriesCacheKey(symbol string, start, end time.Time) string {
	return fmt.Sprintf("%s|%s|%s", symbol, start.Format(time.DateOnly), end.Format(time.DateOnly))
}

func (h *YahooQuoteRepositoryHandler) List(symbol string, start, end time.Time) (domain.PriceSeries, error) {
	key := seriesCacheKey(symbol, start, end)

	h.mu.RLock()
	if entry, ok := h.seriesCache[key]; ok && h.now().Sub(entry.fetchedAt) < h.QuoteTTL {
		h.mu.RUnlock()
		return entry.series, nil
	}
	h.mu.RUnlock()

	points, err := h.fetchChart(symbol, start, end)
	if err != nil {
		return domain.PriceSeries{}, fmt.Errorf("%w: %s: %s", ErrDataUnavailable, symbol, err.Error())
	}
	if len(points) == 0 {
		return domain.PriceSeries{}, fmt.Errorf("%w: %s: empty response", ErrDataUnavailable, symbol)
	}

	series := domain.NewPriceSeries(symbol, points)

	h.mu.Lock()
	h.seriesCache[key] = seriesCacheEntry{series: series, fetchedAt: h.now()}
	h.mu.Unlock()

	return series, nil
}

func (h *YahooQuoteRepositoryHandler) LongName(symbol string) string {
	h.mu.RLock()
	if entry, ok := h.nameCache[symbol]; ok && h.now().Sub(entry.fetchedAt) < h.NameTTL {
		h.mu.RUnlock()
		return entry.name
	}
	h.mu.RUnlock()

	name, err := h.fetchName(symbol)
	if err != nil || name == "" {
		name = symbol
	}

	h.mu.Lock()
	h.nameCache[symbol] = nameCacheEntry{name: name, fetchedAt: h.now()}
	h.mu.Unlock()

	return name
}

func fetchYahooChart(symbol string, start, end time.Time) ([]domain.Point, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	points := []domain.Point{}
	for iter.Next() {
		bar := iter.Bar()
		points = append(points, domain.Point{
			Date:  time.Unix(int64(bar.Timestamp), 0).UTC().Truncate(24 * time.Hour),
			Value: bar.AdjClose.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return points, nil
}

func fetchYahooLongName(symbol string) (string, error) {
	q, err := equity.Get(symbol)
	if err != nil {
		return "", fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	return displayName(q), nil
}

func displayName(q *finance.Equity) string {
	if q == nil {
		return ""
	}
	if q.LongName != "" {
		return q.LongName
	}
	return q.ShortName
}
