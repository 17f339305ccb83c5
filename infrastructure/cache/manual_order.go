package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	manualOrderKeyPrefix = "manual_orders"
	pendingKeyPrefix     = "manual_orders_pending"
)

// ManualOrderCache é o armazenamento reserva dos pedidos manuais, por usuário
type ManualOrderCache interface {
	List(ctx context.Context, userID string) ([]domain.ManualOrder, error)
	Replace(ctx context.Context, userID string, orders []domain.ManualOrder) error
	Append(ctx context.Context, userID string, order domain.ManualOrder) error
	Remove(ctx context.Context, userID, id string) (bool, error)

	// Pedidos aceitos com o postgres fora do ar, aguardando gravação
	AddPending(ctx context.Context, userID string, order domain.ManualOrder) error
	ListPending(ctx context.Context, userID string) ([]domain.ManualOrder, error)
	RemovePending(ctx context.Context, userID, id string) (bool, error)
}

type redisManualOrderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewManualOrderCache cria o cache. ttl zero mantém as chaves sem expiração.
func NewManualOrderCache(client *redis.Client, ttl time.Duration) ManualOrderCache {
	return &redisManualOrderCache{client: client, ttl: ttl}
}

func manualOrderKey(userID string) string {
	return fmt.Sprintf("%s:%s", manualOrderKeyPrefix, userID)
}

func pendingKey(userID string) string {
	return fmt.Sprintf("%s:%s", pendingKeyPrefix, userID)
}

// List retorna nil, nil quando não há nada em cache para o usuário
func (c *redisManualOrderCache) List(ctx context.Context, userID string) ([]domain.ManualOrder, error) {
	return c.read(ctx, c.client, manualOrderKey(userID))
}

func (c *redisManualOrderCache) Replace(ctx context.Context, userID string, orders []domain.ManualOrder) error {
	payload, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("erro ao serializar pedidos manuais: %w", err)
	}

	if err := c.client.Set(ctx, manualOrderKey(userID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar pedidos manuais no cache: %w", err)
	}

	return nil
}

func (c *redisManualOrderCache) Append(ctx context.Context, userID string, order domain.ManualOrder) error {
	return c.upsert(ctx, manualOrderKey(userID), c.ttl, order)
}

// Remove devolve false quando o pedido não estava em cache
func (c *redisManualOrderCache) Remove(ctx context.Context, userID, id string) (bool, error) {
	return c.remove(ctx, manualOrderKey(userID), c.ttl, id)
}

// AddPending grava sem expiração: o pedido só sai da lista depois de chegar ao postgres
func (c *redisManualOrderCache) AddPending(ctx context.Context, userID string, order domain.ManualOrder) error {
	return c.upsert(ctx, pendingKey(userID), 0, order)
}

func (c *redisManualOrderCache) ListPending(ctx context.Context, userID string) ([]domain.ManualOrder, error) {
	return c.read(ctx, c.client, pendingKey(userID))
}

func (c *redisManualOrderCache) RemovePending(ctx context.Context, userID, id string) (bool, error) {
	return c.remove(ctx, pendingKey(userID), 0, id)
}

func (c *redisManualOrderCache) upsert(ctx context.Context, key string, ttl time.Duration, order domain.ManualOrder) error {
	return c.update(ctx, key, ttl, func(orders []domain.ManualOrder) ([]domain.ManualOrder, bool) {
		for i := range orders {
			if orders[i].ID == order.ID {
				orders[i] = order
				return orders, true
			}
		}
		return append(orders, order), true
	})
}

func (c *redisManualOrderCache) remove(ctx context.Context, key string, ttl time.Duration, id string) (bool, error) {
	removed := false

	err := c.update(ctx, key, ttl, func(orders []domain.ManualOrder) ([]domain.ManualOrder, bool) {
		removed = false
		kept := make([]domain.ManualOrder, 0, len(orders))
		for _, order := range orders {
			if order.ID == id {
				removed = true
				continue
			}
			kept = append(kept, order)
		}
		return kept, removed
	})

	return removed, err
}

// update faz leitura, alteração e escrita sob WATCH para não perder gravações concorrentes
func (c *redisManualOrderCache) update(ctx context.Context, key string, ttl time.Duration, change func([]domain.ManualOrder) ([]domain.ManualOrder, bool)) error {
	txf := func(tx *redis.Tx) error {
		orders, err := c.read(ctx, tx, key)
		if err != nil {
			return err
		}

		updated, changed := change(orders)
		if !changed {
			return nil
		}

		payload, err := json.Marshal(updated)
		if err != nil {
			return fmt.Errorf("erro ao serializar pedidos manuais: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, ttl)
			return nil
		})
		return err
	}

	const maxRetries = 3
	for i := 0; i < maxRetries; i++ {
		err := c.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return fmt.Errorf("erro ao atualizar pedidos manuais no cache: %w", err)
	}

	return fmt.Errorf("erro ao atualizar pedidos manuais no cache: %w", redis.TxFailedErr)
}

func (c *redisManualOrderCache) read(ctx context.Context, cmd redis.Cmdable, key string) ([]domain.ManualOrder, error) {
	payload, err := cmd.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler pedidos manuais do cache: %w", err)
	}

	var orders []domain.ManualOrder
	if err := json.Unmarshal(payload, &orders); err != nil {
		return nil, fmt.Errorf("erro ao deserializar pedidos manuais: %w", err)
	}

	return orders, nil
}
