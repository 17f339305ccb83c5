package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (ManualOrderCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewManualOrderCache(client, ttl), mr
}

func order(id string, value float64) domain.ManualOrder {
	return domain.ManualOrder{
		ID:           id,
		UserID:       "user-1",
		OrderDate:    time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		CustomerName: "Acme",
		BusinessUnit: "Coil",
		OrderValue:   value,
		GrossMargin:  10,
		GrossProfit:  value / 10,
		Salesperson:  "Ana",
	}
}

func TestManualOrderCache_ListVazio(t *testing.T) {
	cache, _ := newTestCache(t, 0)

	orders, err := cache.List(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Nil(t, orders)
}

func TestManualOrderCache_AppendEList(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, cache.Append(ctx, "user-1", order("a", 100)))
	require.NoError(t, cache.Append(ctx, "user-1", order("b", 200)))
	// Mesmo id substitui o registro
	require.NoError(t, cache.Append(ctx, "user-1", order("a", 150)))

	orders, err := cache.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 150.0, orders[0].OrderValue)
	assert.Equal(t, "b", orders[1].ID)
	assert.True(t, orders[0].OrderDate.Equal(order("a", 0).OrderDate))

	others, err := cache.List(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestManualOrderCache_Remove(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, cache.Replace(ctx, "user-1", []domain.ManualOrder{order("a", 1), order("b", 2)}))

	removed, err := cache.Remove(ctx, "user-1", "a")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = cache.Remove(ctx, "user-1", "inexistente")
	require.NoError(t, err)
	assert.False(t, removed)

	orders, err := cache.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "b", orders[0].ID)
}

func TestManualOrderCache_TTL(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Replace(ctx, "user-1", []domain.ManualOrder{order("a", 1)}))
	assert.Equal(t, time.Hour, mr.TTL("manual_orders:user-1"))

	mr.FastForward(2 * time.Hour)

	orders, err := cache.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, orders)
}

func TestManualOrderCache_RedisIndisponivel(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	mr.Close()

	_, err := cache.List(context.Background(), "user-1")
	assert.Error(t, err)
}

func TestManualOrderCache_Pendentes(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.AddPending(ctx, "user-1", order("a", 1)))
	require.NoError(t, cache.AddPending(ctx, "user-1", order("b", 2)))

	// Pendentes não expiram junto com o cache de leitura
	assert.Equal(t, time.Duration(0), mr.TTL("manual_orders_pending:user-1"))
	mr.FastForward(2 * time.Hour)

	pending, err := cache.ListPending(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, pending, 2)

	removed, err := cache.RemovePending(ctx, "user-1", "a")
	require.NoError(t, err)
	assert.True(t, removed)

	pending, err = cache.ListPending(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b", pending[0].ID)

	orders, err := cache.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, orders)
}
