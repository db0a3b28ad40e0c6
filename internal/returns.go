package internal

import (
	"sort"
	"time"

	"marketboard/internal/domain"
)

// Returns converts a price series into fractional period-over-period changes.
// The first observation is dropped, so the result is one point shorter.
// Observations with a non-positive predecessor are skipped.
func Returns(series domain.PriceSeries) domain.ReturnSeries {
	out := domain.ReturnSeries{Symbol: series.Symbol}
	for i := 1; i < len(series.Points); i++ {
		prev := series.Points[i-1].Value
		if prev <= 0 {
			continue
		}
		out.Points = append(out.Points, domain.Point{
			Date:  series.Points[i].Date,
			Value: (series.Points[i].Value - prev) / prev,
		})
	}
	return out
}

// AlignReturns inner-joins return series on their date index: only dates
// present in every series survive. Returns the sorted common dates and, per
// symbol, the values on those dates.
func AlignReturns(series []domain.ReturnSeries) ([]time.Time, map[string][]float64) {
	if len(series) == 0 {
		return nil, map[string][]float64{}
	}

	byDate := make([]map[time.Time]float64, len(series))
	for i, s := range series {
		byDate[i] = make(map[time.Time]float64, len(s.Points))
		for _, p := range s.Points {
			byDate[i][p.Date] = p.Value
		}
	}

	common := []time.Time{}
	for date := range byDate[0] {
		inAll := true
		for _, m := range byDate[1:] {
			if _, ok := m[date]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			common = append(common, date)
		}
	}
	sort.Slice(common, func(i, j int) bool { return common[i].Before(common[j]) })

	out := make(map[string][]float64, len(series))
	for i, s := range series {
		values := make([]float64, len(common))
		for j, date := range common {
			values[j] = byDate[i][date]
		}
		out[s.Symbol] = values
	}

	return common, out
}

// NormalizeTo100 rebases a price series so the first observation equals 100.
// Series with a non-positive first value come back unchanged.
func NormalizeTo100(series domain.PriceSeries) domain.PriceSeries {
	if series.IsEmpty() || series.Points[0].Value <= 0 {
		return series
	}
	first := series.Points[0].Value
	out := domain.PriceSeries{Symbol: series.Symbol, Points: make([]domain.Point, len(series.Points))}
	for i, p := range series.Points {
		out.Points[i] = domain.Point{Date: p.Date, Value: p.Value / first * 100}
	}
	return out
}
