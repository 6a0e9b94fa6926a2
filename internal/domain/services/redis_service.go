package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/papaahmadoufall/securaccess/internal/infrastructure/config"
	"github.com/papaahmadoufall/securaccess/pkg/logger"
)

const blacklistKeyPrefix = "securaccess:token_blacklist:"

// InterfaceTokenBlacklistService revokes bearer tokens before their natural
// expiry. Entries carry a TTL equal to the token's remaining lifetime so the
// set cleans itself up.
type InterfaceTokenBlacklistService interface {
	Blacklist(token string, ttl time.Duration) error
	IsBlacklisted(token string) bool
	Ping() error
}

// RedisTokenBlacklistService backs the blacklist with Redis
type RedisTokenBlacklistService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewTokenBlacklistService connects to Redis when an address is configured.
// It returns a nil interface otherwise; callers treat nil as "no blacklist"
// and logout becomes a client-side discard.
func NewTokenBlacklistService(cfg *config.Config) InterfaceTokenBlacklistService {
	addr := cfg.GetRedisAddr()
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warning("Redis unreachable at %s, token blacklist disabled: %v", addr, err)
		return nil
	}

	return &RedisTokenBlacklistService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Blacklist marks a token revoked for ttl
func (s *RedisTokenBlacklistService) Blacklist(token string, ttl time.Duration) error {
	return s.Client.Set(s.Ctx, blacklistKeyPrefix+token, "1", ttl).Err()
}

// IsBlacklisted reports whether a token has been revoked. A Redis failure
// counts as not blacklisted; signature and expiry checks still apply.
func (s *RedisTokenBlacklistService) IsBlacklisted(token string) bool {
	n, err := s.Client.Exists(s.Ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		logger.Warning("Blacklist lookup failed: %v", err)
		return false
	}
	return n > 0
}

// Ping checks Redis connectivity
func (s *RedisTokenBlacklistService) Ping() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}
