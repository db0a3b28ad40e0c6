package api

import (
	"errors"
	"fmt"
	"math"
	"time"

	"marketboard/internal"
	"marketboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type exportCsvRequest struct {
	Table string `json:"table"`
	// fxTable / fxCorrelation parameters
	Base     string   `json:"base"`
	Date     string   `json:"date"`
	Counters []string `json:"counters"`
	// overview / chart parameters
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Symbols   []string `json:"symbols"`
	Normalize bool     `json:"normalize"`
}

type overviewCsvRow struct {
	Section string `csv:"Section"`
	Name    string `csv:"Name"`
	Symbol  string `csv:"Symbol"`
	Value   string `csv:"Value"`
	Daily   string `csv:"1D %"`
	Week    string `csv:"1W %"`
	YTD     string `csv:"YTD %"`
}

type chartCsvRow struct {
	Date   string `csv:"Date"`
	Symbol string `csv:"Symbol"`
	Name   string `csv:"Name"`
	Value  string `csv:"Value"`
}

type centralBankCsvRow struct {
	Bank        string `csv:"Bank"`
	SeriesID    string `csv:"FRED Series"`
	CurrentRate string `csv:"Current Rate"`
	LastChange  string `csv:"Last Change %"`
}

type correlationCsvRow struct {
	Asset       string `csv:"Asset"`
	Counter     string `csv:"Counter"`
	Coefficient string `csv:"Coefficient"`
	MeanReturn  string `csv:"Mean Daily Return %"`
}

// exportCsv renders one of the dashboard tables as a CSV attachment.
func (h ApiHandler) exportCsv(c *gin.Context) {
	var requestBody exportCsvRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	var csvString string
	var err error

	switch requestBody.Table {
	case "economicIndicators":
		csvString, err = gocsv.MarshalString(h.DashboardHandler.EconomicIndicators())
	case "fxTable":
		csvString, err = h.fxTableCsv(c, requestBody)
	case "fxCorrelation":
		csvString, err = h.fxCorrelationCsv(c, requestBody)
	case "overview":
		csvString, err = h.overviewCsv(c, requestBody)
	case "chart":
		csvString, err = h.chartCsv(c, requestBody)
	case "centralBanks":
		csvString, err = h.centralBanksCsv(c)
	default:
		returnErrorJsonCode(fmt.Errorf("unknown table %q", requestBody.Table), c, 400)
		return
	}
	if c.IsAborted() {
		return
	}
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to marshal csv: %w", err), c)
		return
	}

	filename := fmt.Sprintf("%s.csv", requestBody.Table)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "text/csv", []byte(csvString))
}

func (h ApiHandler) fxTableCsv(c *gin.Context, requestBody exportCsvRequest) (string, error) {
	if requestBody.Base == "" {
		returnErrorJsonCode(fmt.Errorf("base currency is required"), c, 400)
		return "", nil
	}
	quoteDate, err := parseDate(requestBody.Date)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid date %q: %w", requestBody.Date, err), c, 400)
		return "", nil
	}

	rows := h.fxTableRows(requestBody.Base, quoteDate)
	return gocsv.MarshalString(&rows)
}

// fxCorrelationCsv exports the matrix in long format, one row per asset pair.
func (h ApiHandler) fxCorrelationCsv(c *gin.Context, requestBody exportCsvRequest) (string, error) {
	if requestBody.Base == "" {
		returnErrorJsonCode(fmt.Errorf("base currency is required"), c, 400)
		return "", nil
	}
	start, end, err := parseRange(requestBody.Start, requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return "", nil
	}

	counters := requestBody.Counters
	if len(counters) == 0 {
		counters = internal.G10Currencies
	}

	result, err := h.CorrelationHandler.Compute(internal.CorrelationInput{
		Base:     requestBody.Base,
		Counters: counters,
		Start:    start,
		End:      end,
	})
	if errors.Is(err, internal.ErrInsufficientData) {
		returnErrorJsonCode(err, c, 422)
		return "", nil
	}
	if err != nil {
		return "", err
	}

	out := []correlationCsvRow{}
	for _, a := range result.Matrix.Assets {
		for _, b := range result.Matrix.Assets {
			v, _ := result.Matrix.At(a, b)
			coefficient := "N/A"
			if !math.IsNaN(v) {
				coefficient = fmt.Sprintf("%.2f", v)
			}
			out = append(out, correlationCsvRow{
				Asset:       a,
				Counter:     b,
				Coefficient: coefficient,
				MeanReturn:  fmt.Sprintf("%.4f", result.Matrix.MeanReturns[a]),
			})
		}
	}
	return gocsv.MarshalString(&out)
}

func (h ApiHandler) overviewCsv(c *gin.Context, requestBody exportCsvRequest) (string, error) {
	start, end, err := parseRange(requestBody.Start, requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return "", nil
	}

	rows := h.DashboardHandler.MarketOverview(start, end)
	out := make([]overviewCsvRow, len(rows))
	for i, row := range rows {
		out[i] = overviewCsvRow{
			Section: row.Section,
			Name:    row.Name,
			Symbol:  row.Symbol,
			Value:   row.Snapshot.Value.FormatAbbrev(h.Decimals),
			Daily:   row.Snapshot.Daily.FormatPercent(),
			Week:    row.Snapshot.Week.FormatPercent(),
			YTD:     row.Snapshot.YTD.FormatPercent(),
		}
	}
	return gocsv.MarshalString(&out)
}

// chartCsv exports chart data in long format, one row per (date, symbol).
func (h ApiHandler) chartCsv(c *gin.Context, requestBody exportCsvRequest) (string, error) {
	if len(requestBody.Symbols) == 0 {
		returnErrorJsonCode(fmt.Errorf("at least one symbol is required"), c, 400)
		return "", nil
	}
	start, end, err := parseRange(requestBody.Start, requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return "", nil
	}

	bundles := h.DashboardHandler.ChartSeries(requestBody.Symbols, start, end, requestBody.Normalize)
	out := []chartCsvRow{}
	for _, bundle := range bundles {
		for _, p := range bundle.Points {
			out = append(out, chartCsvRow{
				Date:   p.Date.Format("2006-01-02"),
				Symbol: bundle.Symbol,
				Name:   bundle.Name,
				Value:  fmt.Sprintf("%.4f", p.Value),
			})
		}
	}
	return gocsv.MarshalString(&out)
}

func (h ApiHandler) centralBanksCsv(c *gin.Context) (string, error) {
	rows, err := h.DashboardHandler.CentralBanks(time.Now().UTC())
	if errors.Is(err, repository.ErrNotConfigured) {
		returnErrorJsonCode(err, c, 400)
		return "", nil
	}
	if err != nil {
		return "", err
	}

	out := make([]centralBankCsvRow, len(rows))
	for i, row := range rows {
		out[i] = centralBankCsvRow{
			Bank:        row.Bank,
			SeriesID:    row.SeriesID,
			CurrentRate: row.CurrentRate.FormatPercent(),
			LastChange:  row.LastChange.FormatPercent(),
		}
	}
	return gocsv.MarshalString(&out)
}
