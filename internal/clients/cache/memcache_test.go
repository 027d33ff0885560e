package cache

import (
	"context"
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	items map[string]*memcache.Item
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: make(map[string]*memcache.Item)}
}

func (s *memoryStore) Set(item *memcache.Item) error {
	s.items[item.Key] = item
	return nil
}

func (s *memoryStore) Get(key string) (*memcache.Item, error) {
	item, ok := s.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}
	return item, nil
}

func (s *memoryStore) Delete(key string) error {
	if _, ok := s.items[key]; !ok {
		return memcache.ErrCacheMiss
	}
	delete(s.items, key)
	return nil
}

func Test_OnSaveCollection_ShouldStoreUnderPrefixedKey(t *testing.T) {
	st := newMemoryStore()
	mc := &MemcacheClient{client: st}
	ctx := context.Background()

	require.NoError(t, mc.SaveCollection(ctx, "gastos", []byte(`[]`)))

	require.Contains(t, st.items, "gastos:gastos")
	assert.EqualValues(t, defaultExpiration, st.items["gastos:gastos"].Expiration)
	payload, err := mc.LoadCollection(ctx, "gastos")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), payload)
}

func Test_OnMissingCollection_ShouldReturnCacheMiss(t *testing.T) {
	mc := &MemcacheClient{client: newMemoryStore()}

	_, err := mc.LoadCollection(context.Background(), "categorias")

	assert.ErrorIs(t, err, memcache.ErrCacheMiss)
}

func Test_OnInvalidate_ShouldIgnoreMisses(t *testing.T) {
	st := newMemoryStore()
	mc := &MemcacheClient{client: st}
	require.NoError(t, mc.SaveCollection(context.Background(), "gastos", []byte(`[]`)))

	err := mc.InvalidateCollections([]string{"gastos", "categorias"})

	assert.NoError(t, err)
	assert.Empty(t, st.items)
}
