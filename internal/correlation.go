package internal

import (
	"errors"
	"fmt"
	"math"
	"time"

	"marketboard/internal/domain"
	"marketboard/internal/repository"

	"github.com/montanaflynn/stats"
)

// ErrInsufficientData means fewer than two assets survived fetching and
// alignment, so a correlation matrix would be degenerate.
var ErrInsufficientData = errors.New("insufficient data to compute correlation")

type CorrelationHandler struct {
	QuoteRepository repository.QuoteRepository
}

type CorrelationInput struct {
	// Base is the currency every counter is quoted against. If Base also
	// appears in Counters, it gets a synthetic basket row (the
	// cross-sectional mean of the other return series) instead of an
	// undefined self-correlation row.
	Base     string
	Counters []string
	Start    time.Time
	End      time.Time
}

type CorrelationSummary struct {
	Average domain.Cell
	Max     domain.Cell
	Min     domain.Cell
}

type CorrelationResult struct {
	Matrix  domain.CorrelationMatrix
	Summary CorrelationSummary
}

// Compute fetches base-vs-counter series over the input range and produces a
// Pearson correlation matrix over inner-join-aligned daily returns, with the
// mean daily return (%) of each asset carried as an annotation. Each counter's
// mean comes from its full return series, before alignment, so calendar gaps
// in other series never skew it; only the synthetic basket (which exists only
// on aligned dates) is averaged post-join. Counters with absent or too-thin
// data are silently dropped, and repeated counters count once. Pure function
// of the fetched series: identical data in, identical matrix out.
func (h CorrelationHandler) Compute(input CorrelationInput) (*CorrelationResult, error) {
	baseRequested := false
	returnSeries := []domain.ReturnSeries{}
	meanReturns := map[string]float64{}
	attempted := map[string]bool{}

	for _, counter := range input.Counters {
		if counter == input.Base {
			baseRequested = true
			continue
		}
		if attempted[counter] {
			continue
		}
		attempted[counter] = true

		series, err := h.QuoteRepository.List(FXSymbol(input.Base, counter), input.Start, input.End)
		if err != nil {
			if errors.Is(err, repository.ErrDataUnavailable) {
				continue
			}
			return nil, fmt.Errorf("failed to fetch %s/%s: %w", input.Base, counter, err)
		}
		if series.Len() < 2 {
			continue
		}
		rets := Returns(series)
		if rets.Len() == 0 {
			continue
		}
		rets.Symbol = counter

		mean, err := stats.Mean(rets.Values())
		if err != nil {
			return nil, fmt.Errorf("failed to compute mean return for %s: %w", counter, err)
		}
		meanReturns[counter] = mean * 100
		returnSeries = append(returnSeries, rets)
	}

	if len(returnSeries) == 0 || (len(returnSeries) < 2 && !baseRequested) {
		return nil, ErrInsufficientData
	}

	dates, aligned := AlignReturns(returnSeries)
	if len(dates) == 0 {
		return nil, ErrInsufficientData
	}

	if baseRequested {
		basket := basketReturns(aligned, len(dates))
		aligned[input.Base] = basket
		mean, err := stats.Mean(basket)
		if err != nil {
			return nil, fmt.Errorf("failed to compute basket mean return: %w", err)
		}
		meanReturns[input.Base] = mean * 100
	}

	// matrix rows follow the requested counter order, first occurrence wins
	assets := []string{}
	seen := map[string]bool{}
	for _, counter := range input.Counters {
		if seen[counter] {
			continue
		}
		if _, ok := aligned[counter]; ok {
			assets = append(assets, counter)
			seen[counter] = true
		}
	}

	matrix := domain.CorrelationMatrix{
		Assets:       assets,
		Coefficients: map[string]map[string]float64{},
		MeanReturns:  map[string]float64{},
	}
	for _, a := range assets {
		matrix.MeanReturns[a] = meanReturns[a]

		matrix.Coefficients[a] = map[string]float64{}
		for _, b := range assets {
			matrix.Coefficients[a][b] = pearson(aligned[a], aligned[b], a == b)
		}
	}

	return &CorrelationResult{
		Matrix:  matrix,
		Summary: summarize(matrix),
	}, nil
}

// basketReturns synthesizes the base asset's return series as the
// cross-sectional mean of all aligned counter returns at each date.
func basketReturns(aligned map[string][]float64, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		count := 0
		for _, values := range aligned {
			sum += values[i]
			count++
		}
		out[i] = sum / float64(count)
	}
	return out
}

func pearson(a, b []float64, diagonal bool) float64 {
	if diagonal {
		variance, err := stats.Variance(a)
		if err != nil || variance == 0 {
			return math.NaN()
		}
		return 1
	}
	coeff, err := stats.Correlation(a, b)
	if err != nil {
		return math.NaN()
	}
	return coeff
}

// summarize reduces the upper triangle (excluding the diagonal) to average,
// max and min coefficients, the quick-glance stats shown next to the matrix.
func summarize(matrix domain.CorrelationMatrix) CorrelationSummary {
	tri := []float64{}
	for i, a := range matrix.Assets {
		for _, b := range matrix.Assets[i+1:] {
			v := matrix.Coefficients[a][b]
			if !math.IsNaN(v) {
				tri = append(tri, v)
			}
		}
	}
	if len(tri) == 0 {
		return CorrelationSummary{
			Average: domain.NotAvailable(),
			Max:     domain.NotAvailable(),
			Min:     domain.NotAvailable(),
		}
	}

	avg, _ := stats.Mean(tri)
	max, _ := stats.Max(tri)
	min, _ := stats.Min(tri)
	return CorrelationSummary{
		Average: domain.Numeric(avg),
		Max:     domain.Numeric(max),
		Min:     domain.Numeric(min),
	}
}
