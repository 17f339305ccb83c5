package dashboard

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Dashboarder monta o dashboard de vendas a partir das APIs, dos pedidos manuais e das metas
type Dashboarder interface {
	// GetDashboard devolve o snapshot conciliado para a visão e os filtros pedidos
	GetDashboard(ctx context.Context, userID string, req domain.DashboardRequest) (*domain.DashboardResponse, error)

	// GetAvailableMonths lista os meses presentes nas origens de dados do ano
	GetAvailableMonths(ctx context.Context, year int) (*domain.AvailableMonths, error)

	// RefreshSourceData busca todas as origens e grava a coleta completa no banco
	RefreshSourceData(ctx context.Context, year int) (domain.FetchResult, error)
}

// OrderLister fornece os pedidos manuais do usuário
type OrderLister interface {
	ListOrders(ctx context.Context, userID string) ([]domain.ManualOrder, error)
}

// PlanProvider fornece as metas em vigor para o filtro de unidade
type PlanProvider interface {
	ActivePlan(ctx context.Context, userID string, businessUnit string) (*domain.TargetPlan, error)
}
