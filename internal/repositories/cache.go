package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"paygate/internal/config"
	"paygate/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	merchantCachePrefix = "merchant:"
	paymentCachePrefix  = "payment:"
	cacheTTL            = 5 * time.Minute
)

// NewRedisClient builds a redis client from the REDIS_* environment
// variables.
func NewRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s",
			config.GetEnv("REDIS_HOST", "localhost"),
			config.GetEnv("REDIS_PORT", "6379")),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
}

// CachedStore wraps a Store with a redis read-through cache for merchant and
// payment lookups. Writes go straight to the backing store and invalidate
// the cached entry, so readers only ever see committed records. Counters,
// the fee rate, and the customer index are never cached.
type CachedStore struct {
	Store
	client *redis.Client
}

func NewCachedStore(store Store, client *redis.Client) *CachedStore {
	if store == nil {
		panic("store is required")
	}
	if client == nil {
		panic("redis client is required")
	}
	return &CachedStore{Store: store, client: client}
}

func (c *CachedStore) GetMerchant(walletAddress string) (*models.Merchant, error) {
	key := merchantCachePrefix + walletAddress
	if data, err := c.client.Get(context.Background(), key).Bytes(); err == nil {
		var m models.Merchant
		if err := json.Unmarshal(data, &m); err == nil {
			return &m, nil
		}
	}

	m, err := c.Store.GetMerchant(walletAddress)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(m); err == nil {
		c.client.Set(context.Background(), key, data, cacheTTL)
	}
	return m, nil
}

func (c *CachedStore) PutMerchant(m *models.Merchant) error {
	if err := c.Store.PutMerchant(m); err != nil {
		return err
	}
	c.client.Del(context.Background(), merchantCachePrefix+m.WalletAddress)
	return nil
}

func (c *CachedStore) GetPayment(id uint64) (*models.Payment, error) {
	key := fmt.Sprintf("%s%d", paymentCachePrefix, id)
	if data, err := c.client.Get(context.Background(), key).Bytes(); err == nil {
		var p models.Payment
		if err := json.Unmarshal(data, &p); err == nil {
			return &p, nil
		}
	}

	p, err := c.Store.GetPayment(id)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(p); err == nil {
		c.client.Set(context.Background(), key, data, cacheTTL)
	}
	return p, nil
}

func (c *CachedStore) PutPayment(p *models.Payment) error {
	if err := c.Store.PutPayment(p); err != nil {
		return err
	}
	c.client.Del(context.Background(), fmt.Sprintf("%s%d", paymentCachePrefix, p.ID))
	return nil
}

func (c *CachedStore) DeletePayment(id uint64) error {
	if err := c.Store.DeletePayment(id); err != nil {
		return err
	}
	c.client.Del(context.Background(), fmt.Sprintf("%s%d", paymentCachePrefix, id))
	return nil
}
