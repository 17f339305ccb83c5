package ordering

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockManualOrderRepository, cache.ManualOrderCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockManualOrderRepository(ctrl)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	orderCache := cache.NewManualOrderCache(client, 0)

	service := NewService(repo, reporting.NewBusinessUnitMapper(nil)).WithCache(orderCache)
	service.now = func() time.Time { return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC) }

	return service, repo, orderCache
}

func validRequest() domain.CreateManualOrderRequest {
	return domain.CreateManualOrderRequest{
		OrderDate:    "2024-06-15",
		CustomerName: "Acme",
		BusinessUnit: "coil(unit)",
		OrderValue:   1000,
		GrossMargin:  15,
		Salesperson:  "Ana",
	}
}

func TestService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		request  func() domain.CreateManualOrderRequest
		setup    func(repo *mocks.MockManualOrderRepository)
		validate func(t *testing.T, order *domain.ManualOrder, err error, orderCache cache.ManualOrderCache)
	}{
		{
			name:    "Pedido válido é gravado no banco e no cache",
			request: validRequest,
			setup: func(repo *mocks.MockManualOrderRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, order *domain.ManualOrder, err error, orderCache cache.ManualOrderCache) {
				require.NoError(t, err)
				assert.Len(t, order.ID, 12)
				assert.Equal(t, "user-1", order.UserID)
				assert.Equal(t, "Unit", order.BusinessUnit)
				assert.InDelta(t, 150.0, order.GrossProfit, 1e-9)
				assert.Equal(t, time.June, order.OrderDate.Month())

				cached, err := orderCache.List(context.Background(), "user-1")
				require.NoError(t, err)
				assert.Len(t, cached, 1)
			},
		},
		{
			name: "Grupo de produto legado substitui a unidade",
			request: func() domain.CreateManualOrderRequest {
				req := validRequest()
				req.BusinessUnit = ""
				req.ProductGroup = "HBPM"
				return req
			},
			setup: func(repo *mocks.MockManualOrderRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, order *domain.ManualOrder, err error, _ cache.ManualOrderCache) {
				require.NoError(t, err)
				assert.Equal(t, "HBPM", order.BusinessUnit)
			},
		},
		{
			name: "Formulário inválido não chega ao banco",
			request: func() domain.CreateManualOrderRequest {
				req := validRequest()
				req.OrderDate = "15/06/2024"
				req.CustomerName = ""
				req.GrossMargin = 150
				return req
			},
			setup: func(repo *mocks.MockManualOrderRepository) {},
			validate: func(t *testing.T, order *domain.ManualOrder, err error, _ cache.ManualOrderCache) {
				require.Error(t, err)
				assert.Nil(t, order)
				assert.True(t, errors.Is(err, ErrInvalidManualOrder))

				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "datetime", validationErr.Fields["order_date"])
				assert.Equal(t, "required", validationErr.Fields["customer_name"])
				assert.Equal(t, "lte", validationErr.Fields["gross_margin"])
			},
		},
		{
			name: "Cliente e vendedor só com espaços são rejeitados",
			request: func() domain.CreateManualOrderRequest {
				req := validRequest()
				req.CustomerName = "   "
				req.Salesperson = "\t "
				return req
			},
			setup: func(repo *mocks.MockManualOrderRepository) {},
			validate: func(t *testing.T, order *domain.ManualOrder, err error, _ cache.ManualOrderCache) {
				require.Error(t, err)
				assert.Nil(t, order)

				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "required", validationErr.Fields["customer_name"])
				assert.Equal(t, "required", validationErr.Fields["salesperson"])
			},
		},
		{
			name: "Textos são gravados sem espaços nas pontas",
			request: func() domain.CreateManualOrderRequest {
				req := validRequest()
				req.CustomerName = "  Acme  "
				req.Salesperson = " Ana "
				return req
			},
			setup: func(repo *mocks.MockManualOrderRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, order *domain.ManualOrder, err error, _ cache.ManualOrderCache) {
				require.NoError(t, err)
				assert.Equal(t, "Acme", order.CustomerName)
				assert.Equal(t, "Ana", order.Salesperson)
			},
		},
		{
			name: "Falha no banco mantém o pedido no cache",
			request: validRequest,
			setup: func(repo *mocks.MockManualOrderRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, order *domain.ManualOrder, err error, orderCache cache.ManualOrderCache) {
				require.NoError(t, err)

				cached, err := orderCache.List(context.Background(), "user-1")
				require.NoError(t, err)
				require.Len(t, cached, 1)
				assert.Equal(t, order.ID, cached[0].ID)

				pending, err := orderCache.ListPending(context.Background(), "user-1")
				require.NoError(t, err)
				require.Len(t, pending, 1)
				assert.Equal(t, order.ID, pending[0].ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, orderCache := newTestService(t)
			tt.setup(repo)

			order, err := service.CreateOrder(ctx, "user-1", tt.request())
			tt.validate(t, order, err, orderCache)
		})
	}
}

func TestService_ListOrders(t *testing.T) {
	ctx := context.Background()
	stored := []domain.ManualOrder{{ID: "a", UserID: "user-1", OrderValue: 10}}

	t.Run("Leitura do banco atualiza o cache", func(t *testing.T) {
		service, repo, orderCache := newTestService(t)
		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return(stored, nil)

		orders, err := service.ListOrders(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, stored, orders)

		cached, err := orderCache.List(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, cached, 1)
	})

	t.Run("Falha no banco serve o cache", func(t *testing.T) {
		service, repo, orderCache := newTestService(t)
		require.NoError(t, orderCache.Replace(ctx, "user-1", stored))
		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return(nil, errors.New("timeout"))

		orders, err := service.ListOrders(ctx, "user-1")

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "a", orders[0].ID)
	})

	t.Run("Falha no banco sem cache devolve lista vazia", func(t *testing.T) {
		service, repo, _ := newTestService(t)
		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return(nil, errors.New("timeout"))

		orders, err := service.ListOrders(ctx, "user-1")

		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("Pedido aceito com o banco fora é gravado quando o banco volta", func(t *testing.T) {
		service, repo, orderCache := newTestService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db fora do ar"))

		created, err := service.CreateOrder(ctx, "user-1", validRequest())
		require.NoError(t, err)

		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]domain.ManualOrder{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, order *domain.ManualOrder) error {
			assert.Equal(t, created.ID, order.ID)
			return nil
		})

		orders, err := service.ListOrders(ctx, "user-1")

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, created.ID, orders[0].ID)

		cached, err := orderCache.List(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, cached, 1)

		pending, err := orderCache.ListPending(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("Pedido pendente continua listado enquanto a gravação falha", func(t *testing.T) {
		service, repo, orderCache := newTestService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db fora do ar"))

		created, err := service.CreateOrder(ctx, "user-1", validRequest())
		require.NoError(t, err)

		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]domain.ManualOrder{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))

		orders, err := service.ListOrders(ctx, "user-1")

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, created.ID, orders[0].ID)

		cached, err := orderCache.List(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, cached, 1)

		pending, err := orderCache.ListPending(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, pending, 1)
	})

	t.Run("Pendente já gravado no banco sai da lista sem nova gravação", func(t *testing.T) {
		service, repo, orderCache := newTestService(t)
		require.NoError(t, orderCache.AddPending(ctx, "user-1", stored[0]))
		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return(stored, nil)

		orders, err := service.ListOrders(ctx, "user-1")

		require.NoError(t, err)
		assert.Len(t, orders, 1)

		pending, err := orderCache.ListPending(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("Usuário obrigatório", func(t *testing.T) {
		service, _, _ := newTestService(t)
		_, err := service.ListOrders(ctx, "")
		assert.ErrorIs(t, err, ErrUserIDRequired)
	})
}

func TestService_DeleteOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Remove do banco e do cache", func(t *testing.T) {
		service, repo, orderCache := newTestService(t)
		require.NoError(t, orderCache.Replace(ctx, "user-1", []domain.ManualOrder{{ID: "a"}, {ID: "b"}}))
		repo.EXPECT().Delete(gomock.Any(), "user-1", "a").Return(true, nil)

		require.NoError(t, service.DeleteOrder(ctx, "user-1", "a"))

		cached, err := orderCache.List(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, cached, 1)
		assert.Equal(t, "b", cached[0].ID)
	})

	t.Run("Pedido inexistente", func(t *testing.T) {
		service, repo, _ := newTestService(t)
		repo.EXPECT().Delete(gomock.Any(), "user-1", "x").Return(false, nil)

		assert.ErrorIs(t, service.DeleteOrder(ctx, "user-1", "x"), ErrManualOrderNotFound)
	})

	t.Run("Pedido pendente removido não volta ao banco", func(t *testing.T) {
		service, repo, orderCache := newTestService(t)
		require.NoError(t, orderCache.AddPending(ctx, "user-1", domain.ManualOrder{ID: "p"}))
		repo.EXPECT().Delete(gomock.Any(), "user-1", "p").Return(false, nil)

		require.NoError(t, service.DeleteOrder(ctx, "user-1", "p"))

		pending, err := orderCache.ListPending(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("Pedido só no cache é removido", func(t *testing.T) {
		service, repo, orderCache := newTestService(t)
		require.NoError(t, orderCache.Replace(ctx, "user-1", []domain.ManualOrder{{ID: "a"}}))
		repo.EXPECT().Delete(gomock.Any(), "user-1", "a").Return(false, errors.New("conexão recusada"))

		require.NoError(t, service.DeleteOrder(ctx, "user-1", "a"))
	})
}
