package internal

import (
	"math"

	"marketboard/internal/domain"

	"github.com/montanaflynn/stats"
)

// tradingDaysPerYear annualizes daily return volatility.
const tradingDaysPerYear = 252

type PerformanceStats struct {
	Symbol       string
	StartPrice   domain.Cell
	EndPrice     domain.Cell
	TotalReturn  domain.Cell
	Volatility   domain.Cell
	Observations int
}

// ComputePerformance summarizes a price series for the chart stats table:
// start/end levels, total return over the window, and annualized volatility
// of daily returns (stdev * sqrt(252), as a percentage).
func ComputePerformance(series domain.PriceSeries) PerformanceStats {
	out := PerformanceStats{
		Symbol:       series.Symbol,
		StartPrice:   domain.NotAvailable(),
		EndPrice:     domain.NotAvailable(),
		TotalReturn:  domain.NotAvailable(),
		Volatility:   domain.NotAvailable(),
		Observations: series.Len(),
	}
	if series.IsEmpty() {
		return out
	}

	start := series.Points[0].Value
	end := series.Last().Value
	out.StartPrice = domain.Numeric(start)
	out.EndPrice = domain.Numeric(end)

	if start > 0 {
		out.TotalReturn = domain.Numeric((end - start) / start * 100)
	}

	returns := Returns(series)
	if returns.Len() >= 2 {
		stdev, err := stats.StandardDeviationSample(returns.Values())
		if err == nil {
			out.Volatility = domain.Numeric(stdev * math.Sqrt(tradingDaysPerYear) * 100)
		}
	}

	return out
}
