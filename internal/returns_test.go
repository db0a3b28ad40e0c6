package internal

import (
	"testing"
	"time"

	"marketboard/internal/domain"
	"marketboard/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestReturns(t *testing.T) {
	t.Run("one fewer point than the price series", func(t *testing.T) {
		rets := Returns(seriesOf("X", 100, 110, 99))
		require.Equal(t, 2, rets.Len())
		require.InDelta(t, 0.10, rets.Points[0].Value, 1e-9)
		require.InDelta(t, -0.10, rets.Points[1].Value, 1e-9)
	})

	t.Run("empty and single-point series produce no returns", func(t *testing.T) {
		require.Equal(t, 0, Returns(domain.PriceSeries{}).Len())
		require.Equal(t, 0, Returns(seriesOf("X", 100)).Len())
	})
}

func TestAlignReturns(t *testing.T) {
	t.Run("inner join keeps only shared dates", func(t *testing.T) {
		d1 := util.NewDate(2023, 1, 2)
		d2 := util.NewDate(2023, 1, 3)
		d3 := util.NewDate(2023, 1, 4)

		a := domain.ReturnSeries{Symbol: "A", Points: []domain.Point{
			{Date: d1, Value: 0.01},
			{Date: d2, Value: 0.02},
			{Date: d3, Value: 0.03},
		}}
		b := domain.ReturnSeries{Symbol: "B", Points: []domain.Point{
			{Date: d1, Value: 0.05},
			{Date: d3, Value: 0.06},
		}}

		dates, values := AlignReturns([]domain.ReturnSeries{a, b})

		require.Equal(t, "", cmp.Diff([]time.Time{d1, d3}, dates))
		require.Equal(t, "", cmp.Diff(map[string][]float64{
			"A": {0.01, 0.03},
			"B": {0.05, 0.06},
		}, values))
	})

	t.Run("disjoint series align to nothing", func(t *testing.T) {
		a := domain.ReturnSeries{Symbol: "A", Points: []domain.Point{
			{Date: util.NewDate(2023, 1, 2), Value: 0.01},
		}}
		b := domain.ReturnSeries{Symbol: "B", Points: []domain.Point{
			{Date: util.NewDate(2023, 1, 3), Value: 0.02},
		}}

		dates, _ := AlignReturns([]domain.ReturnSeries{a, b})
		require.Empty(t, dates)
	})
}

func TestNormalizeTo100(t *testing.T) {
	t.Run("rebases to the first observation", func(t *testing.T) {
		normalized := NormalizeTo100(seriesOf("X", 50, 55, 45))
		require.Equal(t, 100.0, normalized.Points[0].Value)
		require.InDelta(t, 110.0, normalized.Points[1].Value, 1e-9)
		require.InDelta(t, 90.0, normalized.Points[2].Value, 1e-9)
	})

	t.Run("non-positive first value left unchanged", func(t *testing.T) {
		series := seriesOf("X", 0, 55)
		require.Equal(t, "", cmp.Diff(series, NormalizeTo100(series)))
	})
}
