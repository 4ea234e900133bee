package app

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"ispbilling/pkg/logger"
	"ispbilling/pkg/metrics"
)

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(
		logger.CorrelationMiddleware(),
		metrics.GinMiddleware(),
		logger.RequestLogger(slog.Default()),
		gin.Recovery(),
	)
	return engine
}
