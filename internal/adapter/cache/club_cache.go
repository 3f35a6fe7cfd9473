package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"club-service/internal/domain/club"
)

// ClubCache defines the interface for club caching operations.
type ClubCache interface {
	// Get retrieves a club from cache by ID.
	// Returns nil if the club is not cached.
	Get(ctx context.Context, id int64) (*club.Club, error)

	// Set stores a club in cache with the configured TTL.
	Set(ctx context.Context, c *club.Club) error

	// Delete removes a club from cache by ID.
	Delete(ctx context.Context, id int64) error
}

// cachedClub is the wire form of a club in Redis. Membership is kept in its
// stored, comma-joined encoding.
type cachedClub struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Members     string `json:"members"`
	Pending     string `json:"pending"`
}

// RedisClubCache implements ClubCache using Redis as the backing store.
type RedisClubCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisClubCache creates a new Redis-backed club cache.
func NewRedisClubCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisClubCache {
	return &RedisClubCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *RedisClubCache) cacheKey(id int64) string {
	return fmt.Sprintf("club:%d", id)
}

// Get retrieves a club from Redis cache.
func (c *RedisClubCache) Get(ctx context.Context, id int64) (*club.Club, error) {
	data, err := c.client.Get(ctx, c.cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.log.Debug("cache miss", zap.Int64("club_id", id))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.Int64("club_id", id), zap.Error(err))
		return nil, err
	}

	var cc cachedClub
	if err := json.Unmarshal(data, &cc); err != nil {
		c.log.Error("failed to unmarshal cached club", zap.Int64("club_id", id), zap.Error(err))
		return nil, err
	}

	c.log.Debug("cache hit", zap.Int64("club_id", id))
	return &club.Club{
		ID:          cc.ID,
		Name:        cc.Name,
		Description: cc.Description,
		Membership:  club.DecodeMembership(cc.Members, cc.Pending),
	}, nil
}

// Set stores a club in Redis cache with TTL.
func (c *RedisClubCache) Set(ctx context.Context, cl *club.Club) error {
	if cl == nil {
		return fmt.Errorf("cannot cache nil club")
	}

	data, err := json.Marshal(cachedClub{
		ID:          cl.ID,
		Name:        cl.Name,
		Description: cl.Description,
		Members:     club.Encode(cl.Membership.Members),
		Pending:     club.Encode(cl.Membership.Pending),
	})
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, c.cacheKey(cl.ID), data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.Int64("club_id", cl.ID), zap.Error(err))
		return err
	}

	c.log.Debug("cached club", zap.Int64("club_id", cl.ID), zap.Duration("ttl", c.ttl))
	return nil
}

// Delete removes a club from Redis cache.
func (c *RedisClubCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, c.cacheKey(id)).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.Int64("club_id", id), zap.Error(err))
		return err
	}

	c.log.Debug("deleted from cache", zap.Int64("club_id", id))
	return nil
}
