package api

import (
	"github.com/gin-gonic/gin"
)

func (h ApiHandler) economicIndicators(c *gin.Context) {
	c.JSON(200, gin.H{
		"rows": h.DashboardHandler.EconomicIndicators(),
	})
}
