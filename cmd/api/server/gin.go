package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"club-service/cmd/api/di"
	ginrouter "club-service/internal/adapter/gin/router"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(c *di.Container, addr string, l *zap.Logger) *http.Server {
	router := ginrouter.SetupRouter(c.UserHandler, c.ClubHandler, ginrouter.Options{
		ServiceName: c.Config.Logger.ServiceName,
		RateLimiter: c.RateLimiter,
		Registry:    c.Metrics.Registry,
	}, l)

	l.Info("Gin REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
