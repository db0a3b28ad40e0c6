package api

import (
	"marketboard/internal"

	"github.com/gin-gonic/gin"
)

type universeResponse struct {
	EquityIndices map[string]map[string]string   `json:"equityIndices"`
	EquityLists   map[string][]string            `json:"equityLists"`
	Currencies    []string                       `json:"currencies"`
	MajorCrosses  map[string]string              `json:"majorCrosses"`
	Commodities   []internal.CommodityInstrument `json:"commodities"`
}

func (h ApiHandler) universe(c *gin.Context) {
	c.JSON(200, universeResponse{
		EquityIndices: internal.EquityIndices,
		EquityLists:   internal.EquityLists,
		Currencies:    internal.AllCurrencies(),
		MajorCrosses:  internal.MajorCrosses,
		Commodities:   internal.Commodities,
	})
}
