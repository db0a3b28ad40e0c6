package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"marketboard/internal/domain"
	"marketboard/pkg/fred"
)

// ErrNotConfigured means a required credential is absent. It disables only
// the dependent feature; everything else keeps working.
var ErrNotConfigured = errors.New("provider not configured")

type RateRepository interface {
	// List returns a published rate series over [start, end]. A missing API
	// key surfaces as ErrNotConfigured, an empty response as
	// ErrDataUnavailable.
	List(seriesID string, start, end time.Time) (domain.PriceSeries, error)
}

type FredRateRepositoryHandler struct {
	Client *fred.Client
	TTL    time.Duration

	mu    *sync.RWMutex
	cache map[string]seriesCacheEntry

	now func() time.Time
}

func NewFredRateRepository(client *fred.Client, ttl time.Duration) *FredRateRepositoryHandler {
	return &FredRateRepositoryHandler{
		Client: client,
		TTL:    ttl,
		mu:     &sync.RWMutex{},
		cache:  map[string]seriesCacheEntry{},
		now:    time.Now,
	}
}

func (h *FredRateRepositoryHandler) List(seriesID string, start, end time.Time) (domain.PriceSeries, error) {
	if h.Client == nil || h.Client.APIKey == "" {
		return domain.PriceSeries{}, fmt.Errorf("%w: FRED api key missing", ErrNotConfigured)
	}

	key := seriesCacheKey(seriesID, start, end)

	h.mu.RLock()
	if entry, ok := h.cache[key]; ok && h.now().Sub(entry.fetchedAt) < h.TTL {
		h.mu.RUnlock()
		return entry.series, nil
	}
	h.mu.RUnlock()

	observations, err := h.Client.SeriesObservations(seriesID, start, end)
	if err != nil {
		return domain.PriceSeries{}, fmt.Errorf("%w: %s: %s", ErrDataUnavailable, seriesID, err.Error())
	}
	if len(observations) == 0 {
		return domain.PriceSeries{}, fmt.Errorf("%w: %s: empty response", ErrDataUnavailable, seriesID)
	}

	points := make([]domain.Point, len(observations))
	for i, obs := range observations {
		points[i] = domain.Point{Date: obs.Date, Value: obs.Value}
	}
	series := domain.NewPriceSeries(seriesID, points)

	h.mu.Lock()
	h.cache[key] = seriesCacheEntry{series: series, fetchedAt: h.now()}
	h.mu.Unlock()

	return series, nil
}
