package internal

import (
	"marketboard/internal/domain"
)

// weekLookback is how many observations back the "1 week" comparison reaches:
// the last close vs the close five trading days earlier needs six points.
const weekLookback = 6

func percentChange(end, start float64) float64 {
	return (end - start) / start * 100
}

// ComputeSnapshot derives the Value / Daily% / Week% / YTD% cells for one
// instrument. series covers the selected range; ytdSeries covers January 1st
// of the end year through the end date and may be empty. Missing or
// insufficient data degrades the affected cell to NotAvailable, never an
// error.
func ComputeSnapshot(series, ytdSeries domain.PriceSeries) domain.Snapshot {
	snap := domain.Snapshot{
		Value: domain.NotAvailable(),
		Daily: domain.NotAvailable(),
		Week:  domain.NotAvailable(),
		YTD:   domain.NotAvailable(),
	}
	if series.IsEmpty() {
		return snap
	}

	last := series.Last().Value
	snap.Value = domain.Numeric(last)

	if series.Len() >= 2 {
		prev := series.Points[series.Len()-2].Value
		if prev > 0 {
			snap.Daily = domain.Numeric(percentChange(last, prev))
		} else {
			snap.Daily = domain.Numeric(0)
		}
	}

	if series.Len() >= weekLookback {
		weekAgo := series.Points[series.Len()-weekLookback].Value
		if weekAgo > 0 {
			snap.Week = domain.Numeric(percentChange(last, weekAgo))
		} else {
			snap.Week = domain.Numeric(0)
		}
	}

	if ytdSeries.Len() >= 2 {
		ytdStart := ytdSeries.Points[0].Value
		if ytdStart > 0 {
			snap.YTD = domain.Numeric(percentChange(last, ytdStart))
		}
	}

	return snap
}
