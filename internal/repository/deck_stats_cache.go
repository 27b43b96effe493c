package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go_flashcards/internal/config"
	"go_flashcards/internal/middleware"
	"go_flashcards/internal/model"

	goredis "github.com/redis/go-redis/v9"
)

// DeckStatsCache はカード数の最小・最大の集計結果を保持する。
// 取得・保存の失敗はミス扱いとし、呼び出し元は DB から再計算する
type DeckStatsCache interface {
	GetMinMax(ctx context.Context) (*model.MinMaxCards, bool)
	SetMinMax(ctx context.Context, v *model.MinMaxCards)
	Invalidate(ctx context.Context)
	Close() error
}

const minMaxCardsKey = "min-max-cards"

type redisDeckStatsCache struct {
	rdb    *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisDeckStatsCache は接続確認まで行う
func NewRedisDeckStatsCache(ctx context.Context, cfg config.CacheConfig) (DeckStatsCache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisDeckStatsCache{
		rdb:    rdb,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.TTL,
	}, nil
}

func (c *redisDeckStatsCache) key() string {
	return c.prefix + minMaxCardsKey
}

func (c *redisDeckStatsCache) GetMinMax(ctx context.Context) (*model.MinMaxCards, bool) {
	raw, err := c.rdb.Get(ctx, c.key()).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			middleware.GetLogger(ctx).Warn("Deck stats cache get failed", "error", err)
		}
		return nil, false
	}
	var v model.MinMaxCards
	if err := json.Unmarshal(raw, &v); err != nil {
		middleware.GetLogger(ctx).Warn("Deck stats cache entry is corrupt", "error", err)
		return nil, false
	}
	return &v, true
}

func (c *redisDeckStatsCache) SetMinMax(ctx context.Context, v *model.MinMaxCards) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(), raw, c.ttl).Err(); err != nil {
		middleware.GetLogger(ctx).Warn("Deck stats cache set failed", "error", err)
	}
}

func (c *redisDeckStatsCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, c.key()).Err(); err != nil {
		middleware.GetLogger(ctx).Warn("Deck stats cache invalidate failed", "error", err)
	}
}

func (c *redisDeckStatsCache) Close() error {
	return c.rdb.Close()
}

// memoryDeckStatsCache はプロセス内で集計結果を保持する。ttl が 0 以下なら期限なし
type memoryDeckStatsCache struct {
	mu        sync.Mutex
	v         *model.MinMaxCards
	expiresAt time.Time
	ttl       time.Duration
}

// NewMemoryDeckStatsCache は Redis 未設定時の既定。単一プロセスでの運用向け
func NewMemoryDeckStatsCache(ttl time.Duration) DeckStatsCache {
	return &memoryDeckStatsCache{ttl: ttl}
}

func (c *memoryDeckStatsCache) GetMinMax(context.Context) (*model.MinMaxCards, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.v == nil {
		return nil, false
	}
	if c.ttl > 0 && time.Now().After(c.expiresAt) {
		c.v = nil
		return nil, false
	}
	v := *c.v
	return &v, true
}

func (c *memoryDeckStatsCache) SetMinMax(_ context.Context, v *model.MinMaxCards) {
	if v == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *v
	c.v = &cp
	c.expiresAt = time.Now().Add(c.ttl)
}

func (c *memoryDeckStatsCache) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = nil
}

func (c *memoryDeckStatsCache) Close() error { return nil }

// NopDeckStatsCache は集計を毎回 DB で行う
type NopDeckStatsCache struct{}

func (NopDeckStatsCache) GetMinMax(context.Context) (*model.MinMaxCards, bool) { return nil, false }
func (NopDeckStatsCache) SetMinMax(context.Context, *model.MinMaxCards)        {}
func (NopDeckStatsCache) Invalidate(context.Context)                           {}
func (NopDeckStatsCache) Close() error                                         { return nil }
