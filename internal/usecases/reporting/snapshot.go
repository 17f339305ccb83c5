package reporting

import (
	"math"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// ZeroSnapshot é o snapshot canônico sem dados: doze meses zerados e faixas vazias
func ZeroSnapshot() domain.DashboardSnapshot {
	trend := make([]domain.MonthlyAggregate, 0, len(domain.MonthKeys))
	for _, key := range domain.MonthKeys {
		trend = append(trend, domain.MonthlyAggregate{
			Key:         key,
			Month:       domain.MonthLabel(key),
			Salespeople: map[string]domain.EntityTotals{},
			Customers:   map[string]domain.EntityTotals{},
			Attribution: domain.AttributionEstimated,
		})
	}

	return domain.DashboardSnapshot{
		MarginBands:  ZeroMarginBands(),
		MonthlyTrend: trend,
	}
}

// BuildSnapshot monta o snapshot da API para o período e a visão informados.
// Sem meses disponíveis devolve o snapshot zerado.
func BuildSnapshot(data *domain.SourceData, periodMonth int, viewMode domain.ViewMode) domain.DashboardSnapshot {
	if data.IsEmpty() {
		return ZeroSnapshot()
	}

	months := AvailableMonths(MonthsOf(data.Invoices), MonthsOf(data.SalesOrders))
	if len(months) == 0 {
		return ZeroSnapshot()
	}

	rangeKeys := PeriodMonthKeys(periodMonth, viewMode)
	invoiceTotals := AggregateInvoiceMonths(data.Invoices, rangeKeys)
	salesOrderTotals := AggregateMonths(data.SalesOrders, rangeKeys)

	return domain.DashboardSnapshot{
		CurrentPeriod: CombineSources(invoiceTotals.MonthTotals, salesOrderTotals),
		MarginBands:   ClassifyInvoiceTotals(invoiceTotals),
		MonthlyTrend:  BuildTrend(data.Invoices, data.SalesOrders, months),
	}
}

// PeriodMonthKeys lista as chaves dos meses cobertos pela visão
func PeriodMonthKeys(periodMonth int, viewMode domain.ViewMode) []string {
	start, end := PeriodRange(periodMonth, viewMode)

	keys := make([]string, 0, end-start+1)
	for month := start; month <= end; month++ {
		if key := domain.MonthKeyAt(month); key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}

// isUsableSnapshot rejeita snapshots ausentes ou malformados
func isUsableSnapshot(snapshot *domain.DashboardSnapshot) bool {
	if snapshot == nil || len(snapshot.MonthlyTrend) == 0 || len(snapshot.MarginBands) != len(domain.MarginBandLabels) {
		return false
	}

	period := snapshot.CurrentPeriod
	if !finite(period.TotalSales, period.TotalGP, period.AverageMargin) {
		return false
	}

	for _, band := range snapshot.MarginBands {
		if !finite(band.Value, band.Percentage) {
			return false
		}
	}

	for _, entry := range snapshot.MonthlyTrend {
		if !finite(entry.Sales, entry.GP) {
			return false
		}
	}

	return true
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
