package app

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"marketboard/internal"
	"marketboard/internal/domain"
	"marketboard/internal/repository"
	"marketboard/internal/util"

	"go.uber.org/zap"
)

// fxLookbackDays is how far back the FX table reaches for a close at or
// before the quote date, enough to skip weekends and holidays.
const fxLookbackDays = 10

// DashboardHandler assembles every table the dashboard serves. Each row
// degrades independently: one failed series never takes down its table.
type DashboardHandler struct {
	QuoteRepository repository.QuoteRepository
	RateRepository  repository.RateRepository
	Logger          *zap.SugaredLogger
}

func (h DashboardHandler) warn(msg string, args ...interface{}) {
	if h.Logger != nil {
		h.Logger.Warnw(msg, args...)
	}
}

// SnapshotFor fetches the selected-range and YTD series for a symbol and
// derives its snapshot cells. The YTD window always starts January 1st of
// the end date's year.
func (h DashboardHandler) SnapshotFor(symbol string, start, end time.Time) (domain.Snapshot, error) {
	series, err := h.QuoteRepository.List(symbol, start, end)
	if err != nil {
		return domain.Snapshot{}, err
	}

	ytdSeries, err := h.QuoteRepository.List(symbol, util.YTDStart(end), end)
	if err != nil {
		// the main window still renders; only the YTD cell degrades
		ytdSeries = domain.PriceSeries{}
	}

	return internal.ComputeSnapshot(series, ytdSeries), nil
}

type OverviewRow struct {
	Section  string
	Name     string
	Symbol   string
	Snapshot domain.Snapshot
}

// MarketOverview builds the landing-page rows: major indices, major FX
// pairs, and key indicators.
func (h DashboardHandler) MarketOverview(start, end time.Time) []OverviewRow {
	out := []OverviewRow{}
	out = append(out, h.sectionRows("Equity Markets", internal.MajorIndices, start, end)...)
	out = append(out, h.sectionRows("FX Markets", internal.MajorFXPairs, start, end)...)
	out = append(out, h.sectionRows("Key Indicators", internal.KeyIndicators, start, end)...)
	return out
}

func (h DashboardHandler) sectionRows(section string, instruments map[string]string, start, end time.Time) []OverviewRow {
	names := make([]string, 0, len(instruments))
	for name := range instruments {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]OverviewRow, 0, len(names))
	for _, name := range names {
		symbol := instruments[name]
		snapshot, err := h.SnapshotFor(symbol, start, end)
		if err != nil {
			h.warn("overview row degraded", "symbol", symbol, "error", err)
			snapshot = naSnapshot()
		}
		out = append(out, OverviewRow{Section: section, Name: name, Symbol: symbol, Snapshot: snapshot})
	}
	return out
}

func naSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Value: domain.NotAvailable(),
		Daily: domain.NotAvailable(),
		Week:  domain.NotAvailable(),
		YTD:   domain.NotAvailable(),
	}
}

type FXRow struct {
	Pair  string
	Value domain.Cell
	Daily domain.Cell
	YTD   domain.Cell
}

// FXTable quotes every listed currency against the base at the given date.
// The value is the most recent close at or before the quote date; 1D% uses
// the two most recent closes in that window; YTD% compares against the rate
// around January 1st of the quote year.
func (h DashboardHandler) FXTable(base string, currencies []string, quoteDate time.Time) []FXRow {
	out := []FXRow{}
	for _, ccy := range currencies {
		if ccy == base {
			continue
		}
		out = append(out, h.fxRow(base, ccy, quoteDate))
	}
	return out
}

func (h DashboardHandler) fxRow(base, ccy string, quoteDate time.Time) FXRow {
	row := FXRow{
		Pair:  fmt.Sprintf("%s/%s", base, ccy),
		Value: domain.NotAvailable(),
		Daily: domain.NotAvailable(),
		YTD:   domain.NotAvailable(),
	}

	symbol := internal.FXSymbol(base, ccy)
	series, err := h.QuoteRepository.List(symbol, quoteDate.AddDate(0, 0, -fxLookbackDays), quoteDate.AddDate(0, 0, 1))
	if err != nil {
		h.warn("fx row degraded", "pair", row.Pair, "error", err)
		return row
	}

	window := series.Truncate(quoteDate)
	if window.IsEmpty() {
		return row
	}

	rate := window.Last().Value
	row.Value = domain.Numeric(rate)

	if window.Len() >= 2 {
		prev := window.Points[window.Len()-2].Value
		if prev > 0 {
			row.Daily = domain.Numeric((rate - prev) / prev * 100)
		} else {
			row.Daily = domain.Numeric(0)
		}
	}

	ytdStart := util.YTDStart(quoteDate)
	ytdSeries, err := h.QuoteRepository.List(symbol, ytdStart.AddDate(0, 0, -fxLookbackDays), ytdStart.AddDate(0, 0, 1))
	if err == nil {
		ytdWindow := ytdSeries.Truncate(ytdStart)
		if !ytdWindow.IsEmpty() && ytdWindow.Last().Value != 0 {
			ytdRate := ytdWindow.Last().Value
			row.YTD = domain.Numeric((rate - ytdRate) / ytdRate * 100)
		}
	}

	return row
}

type CentralBankRow struct {
	Bank        string
	SeriesID    string
	CurrentRate domain.Cell
	LastChange  domain.Cell
}

// CentralBanks builds the policy-rate table from FRED. A missing API key
// returns repository.ErrNotConfigured so callers can disable the table;
// individual series failures only degrade their own row.
func (h DashboardHandler) CentralBanks(asOf time.Time) ([]CentralBankRow, error) {
	out := []CentralBankRow{}
	for _, bank := range internal.CentralBanks {
		row := CentralBankRow{
			Bank:        bank.Name,
			SeriesID:    bank.SeriesID,
			CurrentRate: domain.NotAvailable(),
			LastChange:  domain.NotAvailable(),
		}

		series, err := h.RateRepository.List(bank.SeriesID, asOf.AddDate(-2, 0, 0), asOf)
		if errors.Is(err, repository.ErrNotConfigured) {
			return nil, err
		}
		if err != nil {
			h.warn("central bank row degraded", "series", bank.SeriesID, "error", err)
			out = append(out, row)
			continue
		}

		current := series.Last().Value
		row.CurrentRate = domain.Numeric(current)
		if series.Len() >= 2 {
			prev := series.Points[series.Len()-2].Value
			if prev != 0 {
				row.LastChange = domain.Numeric((current - prev) / prev * 100)
			} else {
				row.LastChange = domain.Numeric(0)
			}
		}

		out = append(out, row)
	}
	return out, nil
}

type ChartBundle struct {
	Name   string
	Symbol string
	Points []domain.Point
	Stats  internal.PerformanceStats
}

// ChartSeries fetches the close series for each symbol and packages it with
// performance stats. Stats always come from the raw series; normalization
// only rebases the plotted points. Symbols without data are dropped.
func (h DashboardHandler) ChartSeries(symbols []string, start, end time.Time, normalize bool) []ChartBundle {
	out := []ChartBundle{}
	for _, symbol := range symbols {
		series, err := h.QuoteRepository.List(symbol, start, end)
		if err != nil {
			h.warn("chart series dropped", "symbol", symbol, "error", err)
			continue
		}

		plotted := series
		if normalize {
			plotted = internal.NormalizeTo100(series)
		}

		out = append(out, ChartBundle{
			Name:   h.QuoteRepository.LongName(symbol),
			Symbol: symbol,
			Points: plotted.Points,
			Stats:  internal.ComputePerformance(series),
		})
	}
	return out
}

type CommodityRow struct {
	Category string
	Name     string
	Snapshot domain.Snapshot
}

// Commodities builds the metals / agriculture / energy tables.
func (h DashboardHandler) Commodities(start, end time.Time) []CommodityRow {
	out := make([]CommodityRow, 0, len(internal.Commodities))
	for _, instrument := range internal.Commodities {
		snapshot, err := h.SnapshotFor(instrument.Symbol, start, end)
		if err != nil {
			h.warn("commodity row degraded", "symbol", instrument.Symbol, "error", err)
			snapshot = naSnapshot()
		}
		out = append(out, CommodityRow{
			Category: instrument.Category,
			Name:     instrument.Name,
			Snapshot: snapshot,
		})
	}
	return out
}

type ShortRateRow struct {
	Region     string
	Instrument string
	Snapshot   domain.Snapshot
}

// ShortTermRates builds the US and Eurozone money-market rate tables.
func (h DashboardHandler) ShortTermRates(start, end time.Time) []ShortRateRow {
	out := make([]ShortRateRow, 0, len(internal.ShortTermRates))
	for _, instrument := range internal.ShortTermRates {
		snapshot, err := h.SnapshotFor(instrument.Symbol, start, end)
		if err != nil {
			h.warn("short rate row degraded", "symbol", instrument.Symbol, "error", err)
			snapshot = naSnapshot()
		}
		out = append(out, ShortRateRow{
			Region:     instrument.Region,
			Instrument: instrument.Instrument,
			Snapshot:   snapshot,
		})
	}
	return out
}

// SovereignYields builds the tenor-by-country yield level matrix. Cells with
// no ticker or no data stay NotAvailable.
func (h DashboardHandler) SovereignYields(start, end time.Time) map[string]map[string]domain.Cell {
	out := map[string]map[string]domain.Cell{}
	for _, tenor := range internal.YieldTenors {
		out[tenor] = map[string]domain.Cell{}
		for _, country := range internal.YieldCountries {
			out[tenor][country] = domain.NotAvailable()
			symbol, ok := internal.SovereignYieldTickers[[2]string{country, tenor}]
			if !ok {
				continue
			}
			snapshot, err := h.SnapshotFor(symbol, start, end)
			if err != nil {
				continue
			}
			out[tenor][country] = snapshot.Value
		}
	}
	return out
}

// EconomicIndicators returns the static macro reference table.
func (h DashboardHandler) EconomicIndicators() []internal.EconomicIndicatorRow {
	return internal.EconomicIndicators
}
