package domain

import (
	"sort"
	"time"
)

type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}

// Point is a single dated observation. For a PriceSeries the value is a
// closing price; for a ReturnSeries it is a fractional period-over-period
// change.
type Point struct {
	Date  time.Time
	Value float64
}

// PriceSeries is an ordered sequence of (date, price) observations for one
// instrument. Dates are strictly increasing with no duplicates; the
// repository that produced it is responsible for that.
type PriceSeries struct {
	Symbol string
	Points []Point
}

func (s PriceSeries) Len() int { return len(s.Points) }

func (s PriceSeries) IsEmpty() bool { return len(s.Points) == 0 }

// Last returns the most recent observation.
func (s PriceSeries) Last() Point { return s.Points[len(s.Points)-1] }

// Truncate returns the prefix of the series at or before the given date.
func (s PriceSeries) Truncate(date time.Time) PriceSeries {
	out := PriceSeries{Symbol: s.Symbol}
	for _, p := range s.Points {
		if p.Date.After(date) {
			break
		}
		out.Points = append(out.Points, p)
	}
	return out
}

// NewPriceSeries sorts the observations by date, drops duplicate dates
// (keeping the first occurrence), and returns a well-formed series.
func NewPriceSeries(symbol string, points []Point) PriceSeries {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	out := PriceSeries{Symbol: symbol}
	for _, p := range sorted {
		if len(out.Points) > 0 && out.Points[len(out.Points)-1].Date.Equal(p.Date) {
			continue
		}
		out.Points = append(out.Points, p)
	}
	return out
}

// ReturnSeries is a PriceSeries transformed into fractional changes between
// consecutive observations. It always has one fewer point than the series it
// came from.
type ReturnSeries struct {
	Symbol string
	Points []Point
}

func (s ReturnSeries) Len() int { return len(s.Points) }

// Values returns the raw return values in date order.
func (s ReturnSeries) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}
