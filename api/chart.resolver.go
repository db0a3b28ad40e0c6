package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type chartRequest struct {
	Symbols   []string `json:"symbols"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Normalize bool     `json:"normalize"`
}

type chartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type chartStats struct {
	StartPrice   string `json:"startPrice"`
	EndPrice     string `json:"endPrice"`
	TotalReturn  string `json:"totalReturn"`
	Volatility   string `json:"volatility"`
	Observations int    `json:"observations"`
}

type chartSeries struct {
	Name   string       `json:"name"`
	Symbol string       `json:"symbol"`
	Points []chartPoint `json:"points"`
	Stats  chartStats   `json:"stats"`
}

type chartResponse struct {
	Series []chartSeries `json:"series"`
}

func (h ApiHandler) chart(c *gin.Context) {
	var requestBody chartRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	if len(requestBody.Symbols) == 0 {
		returnErrorJsonCode(fmt.Errorf("at least one symbol is required"), c, 400)
		return
	}
	start, end, err := parseRange(requestBody.Start, requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	bundles := h.DashboardHandler.ChartSeries(requestBody.Symbols, start, end, requestBody.Normalize)

	out := chartResponse{Series: make([]chartSeries, len(bundles))}
	for i, bundle := range bundles {
		points := make([]chartPoint, len(bundle.Points))
		for j, p := range bundle.Points {
			points[j] = chartPoint{Date: p.Date.Format("2006-01-02"), Value: p.Value}
		}
		out.Series[i] = chartSeries{
			Name:   bundle.Name,
			Symbol: bundle.Symbol,
			Points: points,
			Stats: chartStats{
				StartPrice:   bundle.Stats.StartPrice.Format(h.Decimals),
				EndPrice:     bundle.Stats.EndPrice.Format(h.Decimals),
				TotalReturn:  bundle.Stats.TotalReturn.FormatPercent(),
				Volatility:   bundle.Stats.Volatility.FormatPercent(),
				Observations: bundle.Stats.Observations,
			},
		}
	}

	c.JSON(200, out)
}
