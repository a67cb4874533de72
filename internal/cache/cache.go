// Package cache is a best-effort redis layer. Redis being down or slow must never
// fail a request, so every read degrades to a miss and every write to a no-op.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every key this service writes.
const KeyPrefix = "blog:"

// Client wraps a redis client. The zero value and a nil *Client both act as an
// always-empty cache.
type Client struct {
	rdb *redis.Client
}

// New connects lazily; use Ping to check reachability.
func New(addr, password string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (c *Client) enabled() bool {
	return c != nil && c.rdb != nil
}

func key(k string) string {
	return KeyPrefix + k
}

// Ping reports whether redis answers. A disabled client is always healthy.
func (c *Client) Ping(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if !c.enabled() {
		return nil
	}
	return c.rdb.Close()
}

// Get returns the stored bytes, or nil on a miss. Errors are never surfaced.
func (c *Client) Get(ctx context.Context, k string) ([]byte, error) {
	if !c.enabled() {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key(k)).Bytes()
	if err != nil {
		// redis.Nil is an ordinary miss; anything else is treated the same way.
		return nil, nil
	}
	return data, nil
}

// Set stores value for ttl. Write failures are dropped.
func (c *Client) Set(ctx context.Context, k string, value []byte, ttl time.Duration) error {
	if c.enabled() {
		c.rdb.Set(ctx, key(k), value, ttl)
	}
	return nil
}

// Delete removes k. Write failures are dropped.
func (c *Client) Delete(ctx context.Context, k string) error {
	if c.enabled() {
		c.rdb.Del(ctx, key(k))
	}
	return nil
}

// GetJSON decodes the value at k into dst and reports whether it did.
// Corrupt entries are evicted.
func (c *Client) GetJSON(ctx context.Context, k string, dst interface{}) bool {
	data, _ := c.Get(ctx, k)
	if data == nil {
		return false
	}
	var syntaxErr *json.SyntaxError
	if err := json.Unmarshal(data, dst); err != nil {
		if errors.As(err, &syntaxErr) {
			_ = c.Delete(ctx, k)
		}
		return false
	}
	return true
}

// SetJSON encodes v and stores it for ttl.
func (c *Client) SetJSON(ctx context.Context, k string, v interface{}, ttl time.Duration) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, k, payload, ttl)
}
