package api

import (
	"fmt"
	"time"

	"marketboard/internal"

	"github.com/gin-gonic/gin"
)

type fxTableRequest struct {
	Base string `json:"base"`
	Date string `json:"date"`
}

type fxTableRow struct {
	Pair  string `json:"pair" csv:"Pair"`
	Value string `json:"value" csv:"Value"`
	Daily string `json:"daily" csv:"1D %"`
	YTD   string `json:"ytd" csv:"YTD %"`
}

type fxTableResponse struct {
	Base string       `json:"base"`
	Date string       `json:"date"`
	Rows []fxTableRow `json:"rows"`
}

func (h ApiHandler) fxTable(c *gin.Context) {
	var requestBody fxTableRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	if requestBody.Base == "" {
		returnErrorJsonCode(fmt.Errorf("base currency is required"), c, 400)
		return
	}
	quoteDate, err := parseDate(requestBody.Date)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid date %q: %w", requestBody.Date, err), c, 400)
		return
	}

	c.JSON(200, fxTableResponse{
		Base: requestBody.Base,
		Date: quoteDate.Format("2006-01-02"),
		Rows: h.fxTableRows(requestBody.Base, quoteDate),
	})
}

func (h ApiHandler) fxTableRows(base string, quoteDate time.Time) []fxTableRow {
	rows := h.DashboardHandler.FXTable(base, internal.AllCurrencies(), quoteDate)

	out := make([]fxTableRow, len(rows))
	for i, row := range rows {
		out[i] = fxTableRow{
			Pair:  row.Pair,
			Value: row.Value.Format(4),
			Daily: row.Daily.FormatPercent(),
			YTD:   row.YTD.FormatPercent(),
		}
	}
	return out
}
