package api

import (
	"fmt"

	"marketboard/internal"

	"github.com/gin-gonic/gin"
)

type selectionMutationRequest struct {
	Region   string   `json:"region"`
	Category string   `json:"category"`
	Symbols  []string `json:"symbols"`
}

type selectionItemRow struct {
	Region   string `json:"region"`
	Category string `json:"category"`
	Symbol   string `json:"symbol"`
	Label    string `json:"label"`
	Value    string `json:"value,omitempty"`
	Daily    string `json:"daily,omitempty"`
	Week     string `json:"week,omitempty"`
	YTD      string `json:"ytd,omitempty"`
}

type selectionResponse struct {
	SessionID string             `json:"sessionID"`
	Count     int                `json:"count"`
	Items     []selectionItemRow `json:"items"`
}

// getSelection lists the session's watchlist. When start and end query
// params are present, each item also carries its snapshot columns.
func (h ApiHandler) getSelection(c *gin.Context) {
	startParam := c.Query("start")
	endParam := c.Query("end")
	withSnapshots := startParam != "" && endParam != ""

	var items []internal.SelectedItem
	sessionID := h.Sessions.With(c, func(tree internal.SelectionTree) {
		items = tree.Items()
	})

	out := selectionResponse{
		SessionID: sessionID,
		Count:     len(items),
		Items:     make([]selectionItemRow, len(items)),
	}
	for i, item := range items {
		out.Items[i] = selectionItemRow{
			Region:   item.Region,
			Category: item.Category,
			Symbol:   item.Symbol,
			Label:    item.Label,
		}
	}

	if withSnapshots {
		start, end, err := parseRange(startParam, endParam)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		for i, item := range items {
			snapshot, err := h.DashboardHandler.SnapshotFor(item.Symbol, start, end)
			if err != nil {
				out.Items[i].Value = "N/A"
				out.Items[i].Daily = "N/A"
				out.Items[i].Week = "N/A"
				out.Items[i].YTD = "N/A"
				continue
			}
			out.Items[i].Value = snapshot.Value.Format(h.Decimals)
			out.Items[i].Daily = snapshot.Daily.FormatPercent()
			out.Items[i].Week = snapshot.Week.FormatPercent()
			out.Items[i].YTD = snapshot.YTD.FormatPercent()
		}
	}

	c.JSON(200, out)
}

func (h ApiHandler) addToSelection(c *gin.Context) {
	requestBody, ok := bindSelectionMutation(c)
	if !ok {
		return
	}

	var count int
	sessionID := h.Sessions.With(c, func(tree internal.SelectionTree) {
		tree.Add(requestBody.Region, requestBody.Category, requestBody.Symbols, h.DashboardHandler.QuoteRepository.LongName)
		count = tree.Size()
	})

	c.JSON(200, gin.H{"sessionID": sessionID, "count": count})
}

func (h ApiHandler) removeFromSelection(c *gin.Context) {
	requestBody, ok := bindSelectionMutation(c)
	if !ok {
		return
	}

	var count int
	sessionID := h.Sessions.With(c, func(tree internal.SelectionTree) {
		tree.Remove(requestBody.Region, requestBody.Category, requestBody.Symbols)
		count = tree.Size()
	})

	c.JSON(200, gin.H{"sessionID": sessionID, "count": count})
}

func bindSelectionMutation(c *gin.Context) (selectionMutationRequest, bool) {
	var requestBody selectionMutationRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return requestBody, false
	}
	if requestBody.Region == "" || requestBody.Category == "" {
		returnErrorJsonCode(fmt.Errorf("region and category are required"), c, 400)
		return requestBody, false
	}
	if len(requestBody.Symbols) == 0 {
		returnErrorJsonCode(fmt.Errorf("at least one symbol is required"), c, 400)
		return requestBody, false
	}

	return requestBody, true
}
