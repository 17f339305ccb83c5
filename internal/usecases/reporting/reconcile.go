package reporting

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/targeting"
)

// Reconcile junta o snapshot da API, os pedidos manuais e as metas em um único snapshot.
// periodMonth é o índice do mês (0-11). Um snapshot ausente ou malformado é trocado
// pelo snapshot zerado antes da conciliação; a função nunca falha.
func Reconcile(
	api *domain.DashboardSnapshot,
	orders []domain.ManualOrder,
	filters domain.DashboardFilters,
	periodMonth int,
	viewMode domain.ViewMode,
	plan *domain.TargetPlan,
) domain.DashboardSnapshot {
	base := ZeroSnapshot()
	if isUsableSnapshot(api) {
		base = *api
	}

	if periodMonth < 0 || periodMonth > 11 {
		periodMonth = 0
	}

	// 1. Pedidos manuais do período
	periodOrders := FilterManualOrders(orders, filters, periodMonth, viewMode)
	manual := sumOrders(periodOrders)

	// 2. Totais base a partir da tendência mensal
	start, end := PeriodRange(periodMonth, viewMode)
	totals := sumTrend(base.MonthlyTrend, start, end)

	// 3. Na visão mensal, o filtro de vendedor ou cliente usa a quebra informada pela API
	if viewMode != domain.ViewQTD && viewMode != domain.ViewYTD {
		if entity, ok := entityOverride(base.MonthlyTrend, periodMonth, filters); ok {
			totals = entity
		}
	}

	// 4. Soma dos pedidos manuais
	current := domain.CurrentPeriodTotals{
		TotalSales:  totals.Sales + manual.Sales,
		TotalGP:     totals.GP + manual.GP,
		TotalOrders: totals.Orders + manual.Orders,
	}
	current.AverageMargin = AverageMargin(current.TotalSales, current.TotalGP)

	// 5. Faixas de margem
	bands := MergeManualOrders(base.MarginBands, periodOrders)

	// 6. Pedidos manuais somados à tendência de cada mês
	trend := overlayOrders(base.MonthlyTrend, filterOrdersByEntity(orders, filters))

	snapshot := domain.DashboardSnapshot{
		CurrentPeriod: current,
		MarginBands:   bands,
		MonthlyTrend:  trend,
	}

	if plan != nil {
		snapshot.Target = compareTarget(plan, trend, current, periodMonth, viewMode)
	}

	return snapshot
}

func sumOrders(orders []domain.ManualOrder) domain.EntityTotals {
	var totals domain.EntityTotals
	for _, order := range orders {
		totals.Sales += order.OrderValue
		totals.GP += order.GrossProfit
		totals.Orders++
	}

	return totals
}

// trendMonth retorna o índice (0-11) do ponto da tendência, ou -1 quando desconhecido
func trendMonth(entry domain.MonthlyAggregate) int {
	if order := domain.MonthOrder(entry.Key); order > 0 {
		return order - 1
	}

	return domain.MonthOrder(entry.Month) - 1
}

func sumTrend(trend []domain.MonthlyAggregate, start, end int) domain.EntityTotals {
	var totals domain.EntityTotals
	for _, entry := range trend {
		month := trendMonth(entry)
		if month < start || month > end {
			continue
		}
		totals.Sales += entry.Sales
		totals.GP += entry.GP
		totals.Orders += entry.TotalOrders
	}

	return totals
}

// entityOverride busca os totais do vendedor (ou, na falta, do cliente) filtrado no mês.
// Quebras estimadas nunca são usadas.
func entityOverride(trend []domain.MonthlyAggregate, periodMonth int, filters domain.DashboardFilters) (domain.EntityTotals, bool) {
	if IsAll(filters.Salesperson) && IsAll(filters.Customer) {
		return domain.EntityTotals{}, false
	}

	for _, entry := range trend {
		if trendMonth(entry) != periodMonth || entry.Attribution != domain.AttributionReported {
			continue
		}

		if !IsAll(filters.Salesperson) {
			if totals, ok := entry.Salespeople[filters.Salesperson]; ok {
				return totals, true
			}
		}
		if !IsAll(filters.Customer) {
			if totals, ok := entry.Customers[filters.Customer]; ok {
				return totals, true
			}
		}
	}

	return domain.EntityTotals{}, false
}

// overlayOrders devolve uma nova tendência com vendas e lucro dos pedidos manuais somados mês a mês.
// Pedidos, vendedores e clientes continuam vindo só da API.
func overlayOrders(trend []domain.MonthlyAggregate, orders []domain.ManualOrder) []domain.MonthlyAggregate {
	var sales, gp [12]float64
	for _, order := range orders {
		month := int(order.OrderDate.Month()) - 1
		sales[month] += order.OrderValue
		gp[month] += order.GrossProfit
	}

	overlaid := make([]domain.MonthlyAggregate, len(trend))
	for i, entry := range trend {
		if month := trendMonth(entry); month >= 0 {
			entry.Sales += sales[month]
			entry.GP += gp[month]
		}
		overlaid[i] = entry
	}

	return overlaid
}

// compareTarget aplica a estratégia de rollover com o realizado da tendência e compara com o período
func compareTarget(
	plan *domain.TargetPlan,
	trend []domain.MonthlyAggregate,
	current domain.CurrentPeriodTotals,
	periodMonth int,
	viewMode domain.ViewMode,
) *domain.TargetComparison {
	var actuals domain.MonthlyTargets
	for _, entry := range trend {
		if month := trendMonth(entry); month >= 0 {
			actuals.Sales[month] += entry.Sales
			actuals.GP[month] += entry.GP
		}
	}

	adjusted := targeting.ApplyRollover(plan.Monthly, actuals, plan.Rollover, periodMonth+1)

	start, end := PeriodRange(periodMonth, viewMode)
	target := targeting.RangeTarget(adjusted, start, end)
	actual := domain.TargetAmount{Sales: current.TotalSales, GP: current.TotalGP}

	return &domain.TargetComparison{
		Target: target,
		Actual: actual,
		Gap: domain.TargetAmount{
			Sales: target.Sales - actual.Sales,
			GP:    target.GP - actual.GP,
		},
		Achievement: domain.TargetAmount{
			Sales: achievement(actual.Sales, target.Sales),
			GP:    achievement(actual.GP, target.GP),
		},
	}
}

func achievement(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}

	return actual / target * 100
}
