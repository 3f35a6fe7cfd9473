package di

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"club-service/cmd/api/infrastructure"
	"club-service/internal/adapter/cache"
	"club-service/internal/adapter/db/sqlstore"
	ginhandler "club-service/internal/adapter/gin/handler"
	"club-service/internal/adapter/gin/middleware"
	"club-service/internal/adapter/repository/cached"
	"club-service/internal/config"
	"club-service/internal/usecase/club"
	"club-service/internal/usecase/user"
	"club-service/pkg/metrics"
	redisclient "club-service/pkg/redis"
	"club-service/pkg/security"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	Metrics     *metrics.Metrics
	UserUC      user.Usecase
	ClubUC      club.Usecase
	RateLimiter *middleware.RateLimiter
	UserHandler *ginhandler.UserHandler
	ClubHandler *ginhandler.ClubHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	rdb, err := infrastructure.NewRedisClient(ctx, cfg, l)
	if err != nil {
		_ = infrastructure.CloseDatabase(db)
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	c := &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		Metrics:     metrics.New(metricsNamespace(cfg.Logger.ServiceName)),
	}

	// Cache and rate limiter only exist with Redis.
	var clubCache cache.ClubCache
	if rdb != nil {
		clubCache = cache.NewRedisClubCache(rdb.Client, cfg.Redis.CacheTTLDuration(), l)
		c.RateLimiter = middleware.NewRateLimiter(rdb.Client, middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
			Enabled:           cfg.RateLimit.Enabled,
		}, l)
	}

	userRepo := sqlstore.NewUserRepo(db, l)
	clubRepo := cached.NewClubRepository(sqlstore.NewClubRepo(db, l), clubCache, l)

	hasher := security.NewBcryptHasherWithCost(cfg.Security.BcryptCost)
	c.UserUC = user.New(userRepo, hasher, l, c.Metrics)
	c.ClubUC = club.New(clubRepo, l, c.Metrics)

	c.UserHandler = ginhandler.NewUserHandler(c.UserUC, l)
	c.ClubHandler = ginhandler.NewClubHandler(c.ClubUC, l)

	return c, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}

// metricsNamespace turns a service name into a valid Prometheus namespace.
func metricsNamespace(service string) string {
	out := []byte(service)
	for i, b := range out {
		if !(b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9') {
			out[i] = '_'
		}
	}
	return string(out)
}
