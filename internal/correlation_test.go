package internal

import (
	"math"
	"testing"
	"time"

	"marketboard/internal/domain"
	"marketboard/internal/repository"
	"marketboard/internal/util"

	"github.com/stretchr/testify/require"
)

type stubQuoteRepository struct {
	series map[string]domain.PriceSeries
}

func (s stubQuoteRepository) List(symbol string, start, end time.Time) (domain.PriceSeries, error) {
	series, ok := s.series[symbol]
	if !ok || series.IsEmpty() {
		return domain.PriceSeries{}, repository.ErrDataUnavailable
	}
	return series, nil
}

func (s stubQuoteRepository) LongName(symbol string) string { return symbol }

func fxStub(seriesBySymbol map[string][]float64) stubQuoteRepository {
	out := stubQuoteRepository{series: map[string]domain.PriceSeries{}}
	for symbol, prices := range seriesBySymbol {
		out.series[symbol] = seriesOf(symbol, prices...)
	}
	return out
}

func corrInput(base string, counters ...string) CorrelationInput {
	return CorrelationInput{
		Base:     base,
		Counters: counters,
		Start:    util.NewDate(2023, 1, 1),
		End:      util.NewDate(2023, 1, 31),
	}
}

func TestCorrelationHandler_Compute(t *testing.T) {
	t.Run("identical series are perfectly correlated", func(t *testing.T) {
		h := CorrelationHandler{QuoteRepository: fxStub(map[string][]float64{
			"EUR=X": {100, 101, 103, 102, 105},
			"JPY=X": {200, 202, 206, 204, 210},
		})}

		result, err := h.Compute(corrInput("USD", "EUR", "JPY"))
		require.NoError(t, err)

		coeff, ok := result.Matrix.At("EUR", "JPY")
		require.True(t, ok)
		require.InDelta(t, 1.0, coeff, 1e-9)
	})

	t.Run("negated series are perfectly anti-correlated", func(t *testing.T) {
		// returns of the second series are the exact negation of the first
		h := CorrelationHandler{QuoteRepository: fxStub(map[string][]float64{
			"EUR=X": {100, 110, 99},  // +10%, -10%
			"JPY=X": {100, 90, 99},   // -10%, +10%
		})}

		result, err := h.Compute(corrInput("USD", "EUR", "JPY"))
		require.NoError(t, err)

		coeff, ok := result.Matrix.At("EUR", "JPY")
		require.True(t, ok)
		require.InDelta(t, -1.0, coeff, 1e-9)
	})

	t.Run("matrix is symmetric with unit diagonal", func(t *testing.T) {
		h := CorrelationHandler{QuoteRepository: fxStub(map[string][]float64{
			"EUR=X": {100, 101, 103, 102, 105},
			"JPY=X": {200, 199, 204, 208, 203},
			"GBP=X": {80, 81, 79, 82, 84},
		})}

		result, err := h.Compute(corrInput("USD", "EUR", "JPY", "GBP"))
		require.NoError(t, err)

		for _, a := range result.Matrix.Assets {
			diag, ok := result.Matrix.At(a, a)
			require.True(t, ok)
			require.Equal(t, 1.0, diag)
			for _, b := range result.Matrix.Assets {
				ab, _ := result.Matrix.At(a, b)
				ba, _ := result.Matrix.At(b, a)
				require.InDelta(t, ab, ba, 1e-9)
			}
		}
	})

	t.Run("base basket is the cross-sectional mean", func(t *testing.T) {
		h := CorrelationHandler{QuoteRepository: fxStub(map[string][]float64{
			"EUR=X": {100, 110}, // +10%
			"JPY=X": {100, 120}, // +20%
			"GBP=X": {100, 130}, // +30%
		})}

		result, err := h.Compute(corrInput("USD", "USD", "EUR", "JPY", "GBP"))
		require.NoError(t, err)

		require.Contains(t, result.Matrix.Assets, "USD")
		// basket mean return = (10 + 20 + 30) / 3 = 20%
		require.InDelta(t, 20.0, result.Matrix.MeanReturns["USD"], 1e-9)
	})

	t.Run("mean returns come from each full series, not the aligned join", func(t *testing.T) {
		d := func(day int) time.Time { return util.NewDate(2023, 1, day) }
		h := CorrelationHandler{QuoteRepository: stubQuoteRepository{series: map[string]domain.PriceSeries{
			// EUR returns are +10%, -10%, +10%
			"EUR=X": {Symbol: "EUR=X", Points: []domain.Point{
				{Date: d(2), Value: 100},
				{Date: d(3), Value: 110},
				{Date: d(4), Value: 99},
				{Date: d(5), Value: 108.9},
			}},
			// JPY has no Jan 4 close, so the join drops EUR's -10% return
			"JPY=X": {Symbol: "JPY=X", Points: []domain.Point{
				{Date: d(2), Value: 200},
				{Date: d(3), Value: 202},
				{Date: d(5), Value: 204},
			}},
		}}}

		result, err := h.Compute(corrInput("USD", "EUR", "JPY"))
		require.NoError(t, err)
		require.InDelta(t, 10.0/3.0, result.Matrix.MeanReturns["EUR"], 1e-9)
	})

	t.Run("repeated counters appear once", func(t *testing.T) {
		h := CorrelationHandler{QuoteRepository: fxStub(map[string][]float64{
			"EUR=X": {100, 101, 103},
			"JPY=X": {200, 202, 206},
		})}

		result, err := h.Compute(corrInput("USD", "EUR", "EUR", "JPY"))
		require.NoError(t, err)
		require.Equal(t, []string{"EUR", "JPY"}, result.Matrix.Assets)
	})

	t.Run("asset order follows the request", func(t *testing.T) {
		h := CorrelationHandler{QuoteRepository: fxStub(map[string][]float64{
			"EUR=X": {100, 101, 102},
			"JPY=X": {200, 201, 202},
		})}

		result, err := h.Compute(corrInput("USD", "USD", "JPY", "EUR"))
		require.NoError(t, err)
		require.Equal(t, []string{"USD", "JPY", "EUR"}, result.Matrix.Assets)
	})

	t.Run("unavailable counters are silently dropped", func(t *testing.T) {
		h := CorrelationHandler{QuoteRepository: fxStub(map[string][]float64{
			"EUR=X": {100, 101, 103},
			"JPY=X": {200, 202, 206},
			// no GBP data at all
		})}

		result, err := h.Compute(corrInput("USD", "EUR", "JPY", "GBP"))
		require.NoError(t, err)
		require.NotContains(t, result.Matrix.Assets, "GBP")
		require.Len(t, result.Matrix.Assets, 2)
	})

	t.Run("single-point series are dropped", func(t *testing.T) {
		h := CorrelationHandler{QuoteRepository: fxStub(map[string][]float64{
			"EUR=X": {100, 101, 103},
			"JPY=X": {200},
		})}

		result, err := h.Compute(corrInput("USD", "USD", "EUR", "JPY"))
		require.NoError(t, err)
		require.NotContains(t, result.Matrix.Assets, "JPY")
	})

	t.Run("fewer than two surviving assets is insufficient", func(t *testing.T) {
		h := CorrelationHandler{QuoteRepository: fxStub(map[string][]float64{
			"EUR=X": {100, 101, 103},
		})}

		_, err := h.Compute(corrInput("USD", "EUR", "JPY"))
		require.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("no surviving assets is insufficient even with base requested", func(t *testing.T) {
		h := CorrelationHandler{QuoteRepository: fxStub(map[string][]float64{})}

		_, err := h.Compute(corrInput("USD", "USD", "EUR"))
		require.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		h := CorrelationHandler{QuoteRepository: fxStub(map[string][]float64{
			"EUR=X": {100, 101, 103, 102},
			"JPY=X": {200, 199, 204, 208},
		})}

		first, err := h.Compute(corrInput("USD", "EUR", "JPY"))
		require.NoError(t, err)
		second, err := h.Compute(corrInput("USD", "EUR", "JPY"))
		require.NoError(t, err)
		require.Equal(t, first.Matrix, second.Matrix)
	})

	t.Run("summary covers the upper triangle", func(t *testing.T) {
		h := CorrelationHandler{QuoteRepository: fxStub(map[string][]float64{
			"EUR=X": {100, 110, 99},
			"JPY=X": {100, 90, 99},
		})}

		result, err := h.Compute(corrInput("USD", "EUR", "JPY"))
		require.NoError(t, err)
		require.True(t, result.Summary.Average.IsNumeric())
		require.InDelta(t, -1.0, result.Summary.Average.Value, 1e-9)
	})
}

func TestPearsonDiagonal(t *testing.T) {
	t.Run("zero variance has no defined self-correlation", func(t *testing.T) {
		require.True(t, math.IsNaN(pearson([]float64{0.1, 0.1, 0.1}, []float64{0.1, 0.1, 0.1}, true)))
	})
}
