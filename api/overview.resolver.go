package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type overviewRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type overviewRow struct {
	Section string `json:"section"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Value   string `json:"value"`
	Daily   string `json:"daily"`
	Week    string `json:"week"`
	YTD     string `json:"ytd"`
}

type overviewResponse struct {
	Rows []overviewRow `json:"rows"`
}

func (h ApiHandler) overview(c *gin.Context) {
	var requestBody overviewRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	start, end, err := parseRange(requestBody.Start, requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	rows := h.DashboardHandler.MarketOverview(start, end)

	out := overviewResponse{Rows: make([]overviewRow, len(rows))}
	for i, row := range rows {
		out.Rows[i] = overviewRow{
			Section: row.Section,
			Name:    row.Name,
			Symbol:  row.Symbol,
			Value:   row.Snapshot.Value.FormatAbbrev(h.Decimals),
			Daily:   row.Snapshot.Daily.FormatPercent(),
			Week:    row.Snapshot.Week.FormatPercent(),
			YTD:     row.Snapshot.YTD.FormatPercent(),
		}
	}

	c.JSON(200, out)
}
