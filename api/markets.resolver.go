package api

import (
	"fmt"

	"marketboard/internal"

	"github.com/gin-gonic/gin"
)

type marketsRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type commodityRow struct {
	Category string `json:"category" csv:"Category"`
	Name     string `json:"name" csv:"Name"`
	Value    string `json:"value" csv:"Value"`
	Daily    string `json:"daily" csv:"1D %"`
	Week     string `json:"week" csv:"1W %"`
	YTD      string `json:"ytd" csv:"YTD %"`
}

func (h ApiHandler) commodities(c *gin.Context) {
	var requestBody marketsRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}
	start, end, err := parseRange(requestBody.Start, requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	rows := h.DashboardHandler.Commodities(start, end)

	out := make([]commodityRow, len(rows))
	for i, row := range rows {
		out[i] = commodityRow{
			Category: row.Category,
			Name:     row.Name,
			Value:    row.Snapshot.Value.Format(h.Decimals),
			Daily:    row.Snapshot.Daily.FormatPercent(),
			Week:     row.Snapshot.Week.FormatPercent(),
			YTD:      row.Snapshot.YTD.FormatPercent(),
		}
	}

	c.JSON(200, gin.H{"rows": out})
}

type shortRateRow struct {
	Region     string `json:"region"`
	Instrument string `json:"instrument"`
	Value      string `json:"value"`
	Daily      string `json:"daily"`
	Week       string `json:"week"`
	YTD        string `json:"ytd"`
}

type ratesResponse struct {
	ShortTermRates  []shortRateRow               `json:"shortTermRates"`
	SovereignYields map[string]map[string]string `json:"sovereignYields"`
	YieldTenors     []string                     `json:"yieldTenors"`
	YieldCountries  []string                     `json:"yieldCountries"`
}

func (h ApiHandler) rates(c *gin.Context) {
	var requestBody marketsRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}
	start, end, err := parseRange(requestBody.Start, requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	shortRates := h.DashboardHandler.ShortTermRates(start, end)
	out := ratesResponse{
		ShortTermRates:  make([]shortRateRow, len(shortRates)),
		SovereignYields: map[string]map[string]string{},
		YieldTenors:     internal.YieldTenors,
		YieldCountries:  internal.YieldCountries,
	}
	for i, row := range shortRates {
		out.ShortTermRates[i] = shortRateRow{
			Region:     row.Region,
			Instrument: row.Instrument,
			Value:      row.Snapshot.Value.Format(h.Decimals),
			Daily:      row.Snapshot.Daily.FormatPercent(),
			Week:       row.Snapshot.Week.FormatPercent(),
			YTD:        row.Snapshot.YTD.FormatPercent(),
		}
	}

	for tenor, byCountry := range h.DashboardHandler.SovereignYields(start, end) {
		out.SovereignYields[tenor] = map[string]string{}
		for country, cell := range byCountry {
			out.SovereignYields[tenor][country] = cell.Format(h.Decimals)
		}
	}

	c.JSON(200, out)
}
