package api

import (
	"errors"
	"fmt"

	"marketboard/internal"

	"github.com/gin-gonic/gin"
)

type fxCorrelationRequest struct {
	Base     string   `json:"base"`
	Counters []string `json:"counters"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
}

type fxCorrelationResponse struct {
	Assets       []string                      `json:"assets"`
	Coefficients map[string]map[string]*string `json:"coefficients"`
	MeanReturns  map[string]string             `json:"meanReturns"`
	Summary      correlationSummaryJson        `json:"summary"`
}

type correlationSummaryJson struct {
	Average string `json:"average"`
	Max     string `json:"max"`
	Min     string `json:"min"`
}

func (h ApiHandler) fxCorrelation(c *gin.Context) {
	var requestBody fxCorrelationRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	if requestBody.Base == "" {
		returnErrorJsonCode(fmt.Errorf("base currency is required"), c, 400)
		return
	}
	start, end, err := parseRange(requestBody.Start, requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
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
		return
	}
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := fxCorrelationResponse{
		Assets:       result.Matrix.Assets,
		Coefficients: map[string]map[string]*string{},
		MeanReturns:  map[string]string{},
		Summary: correlationSummaryJson{
			Average: result.Summary.Average.Format(2),
			Max:     result.Summary.Max.Format(2),
			Min:     result.Summary.Min.Format(2),
		},
	}
	for _, a := range result.Matrix.Assets {
		out.MeanReturns[a] = fmt.Sprintf("%.4f%%", result.Matrix.MeanReturns[a])
		out.Coefficients[a] = map[string]*string{}
		for _, b := range result.Matrix.Assets {
			v, _ := result.Matrix.At(a, b)
			out.Coefficients[a][b] = formatCoefficient(v)
		}
	}

	c.JSON(200, out)
}

// formatCoefficient keeps NaN cells (zero-variance diagonals) out of the JSON
// payload as nulls rather than the string "NaN".
func formatCoefficient(v float64) *string {
	if v != v {
		return nil
	}
	s := fmt.Sprintf("%.2f", v)
	return &s
}
