package api

import (
	"fmt"
	"time"

	"marketboard/internal"
	"marketboard/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	DashboardHandler   app.DashboardHandler
	CorrelationHandler internal.CorrelationHandler
	Sessions           *SessionStore
	Decimals           int32
	Logger             *zap.SugaredLogger
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to marketboard"})
	})
	router.POST("/overview", m.overview)
	router.POST("/fxTable", m.fxTable)
	router.POST("/fxCorrelation", m.fxCorrelation)
	router.POST("/chart", m.chart)
	router.POST("/commodities", m.commodities)
	router.POST("/rates", m.rates)
	router.POST("/export/csv", m.exportCsv)
	router.GET("/centralBanks", m.centralBanks)
	router.GET("/economicIndicators", m.economicIndicators)
	router.GET("/universe", m.universe)
	router.GET("/selection", m.getSelection)
	router.POST("/selection/add", m.addToSelection)
	router.POST("/selection/remove", m.removeFromSelection)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Errorw("request failed", "route", c.Request.URL.Path, "error", err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	requestID := uuid.NewString()
	ctx.Set("requestID", requestID)

	start := time.Now().UTC()
	ctx.Next()

	if m.Logger != nil {
		m.Logger.Infow("request",
			"requestID", requestID,
			"method", ctx.Request.Method,
			"route", ctx.Request.URL.Path,
			"ip", ctx.ClientIP(),
			"status", ctx.Writer.Status(),
			"durationMs", time.Since(start).Milliseconds(),
		)
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s before start date %s", end, start)
	}
	return startDate, endDate, nil
}
