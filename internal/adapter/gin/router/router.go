package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"club-service/internal/adapter/gin/handler"
	"club-service/internal/adapter/gin/middleware"
	"club-service/pkg/logger"
)

// Options carries the optional pieces of the router.
type Options struct {
	ServiceName string
	RateLimiter *middleware.RateLimiter
	Registry    *prometheus.Registry
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	userHandler *handler.UserHandler,
	clubHandler *handler.ClubHandler,
	opts Options,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(logger.RequestID())
	router.Use(middleware.Logger(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": opts.ServiceName,
		})
	})

	if opts.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	api := router.Group("")
	api.Use(opts.RateLimiter.Middleware())
	{
		api.POST("/register", userHandler.Register)
		api.POST("/login", userHandler.Login)

		clubs := api.Group("/clubs")
		{
			clubs.POST("", clubHandler.CreateClub)
			clubs.GET("", clubHandler.ListClubs)
			clubs.POST("/:id/join", clubHandler.JoinClub)
			clubs.GET("/:id/members", clubHandler.GetMembers)
		}
	}

	return router
}
