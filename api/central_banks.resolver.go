package api

import (
	"errors"
	"time"

	"marketboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type centralBankRow struct {
	Bank        string `json:"bank"`
	SeriesID    string `json:"seriesID"`
	CurrentRate string `json:"currentRate"`
	LastChange  string `json:"lastChange"`
}

type centralBanksResponse struct {
	Enabled bool             `json:"enabled"`
	Rows    []centralBankRow `json:"rows"`
}

func (h ApiHandler) centralBanks(c *gin.Context) {
	rows, err := h.DashboardHandler.CentralBanks(time.Now().UTC())
	if errors.Is(err, repository.ErrNotConfigured) {
		// no FRED key: the table is off, everything else still works
		c.JSON(200, centralBanksResponse{Enabled: false, Rows: []centralBankRow{}})
		return
	}
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := centralBanksResponse{Enabled: true, Rows: make([]centralBankRow, len(rows))}
	for i, row := range rows {
		out.Rows[i] = centralBankRow{
			Bank:        row.Bank,
			SeriesID:    row.SeriesID,
			CurrentRate: row.CurrentRate.FormatPercent(),
			LastChange:  row.LastChange.FormatPercent(),
		}
	}

	c.JSON(200, out)
}
