package cache

import (
	"context"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/gastos-client/internal/logger"
)

const (
	keyPrefix = "gastos:"
	// a week; snapshots only seed the screen until the first fetch lands
	defaultExpiration = 7 * 24 * 60 * 60
)

type store interface {
	Set(item *memcache.Item) error
	Get(key string) (*memcache.Item, error)
	Delete(key string) error
}

type MemcacheClient struct {
	client store
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	if err := mc.Ping(); err != nil {
		return nil, errors.Wrap(err, "memcached ping")
	}
	return &MemcacheClient{mc}, nil
}

func formatKey(name string) string {
	return keyPrefix + name
}

// SaveCollection stores the JSON snapshot of one collection.
func (mc *MemcacheClient) SaveCollection(_ context.Context, name string, payload []byte) error {
	logger.Debug("cache collection", zap.String("collection", name), zap.Int("bytes", len(payload)))
	err := mc.client.Set(&memcache.Item{
		Key:        formatKey(name),
		Value:      payload,
		Expiration: defaultExpiration,
	})
	return errors.Wrapf(err, "cache %s", name)
}

func (mc *MemcacheClient) LoadCollection(_ context.Context, name string) ([]byte, error) {
	logger.Debug("get collection from cache", zap.String("collection", name))
	item, err := mc.client.Get(formatKey(name))
	if err != nil {
		return nil, errors.Wrapf(err, "get %s from cache", name)
	}
	return item.Value, nil
}

func (mc *MemcacheClient) InvalidateCollections(names []string) error {
	logger.Info("invalidate cache", zap.Strings("collections", names))

	for _, name := range names {
		err := mc.client.Delete(formatKey(name))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return errors.Wrapf(err, "invalidate %s", name)
		}
	}
	return nil
}
