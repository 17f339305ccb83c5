package reporting

import (
	"math"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// UnassignedEntity agrupa linhas da API sem vendedor ou cliente informado
const UnassignedEntity = "Unassigned"

// EstimatedShare é uma fatia fixa usada quando a API não traz a quebra por vendedor ou cliente
type EstimatedShare struct {
	Name  string
	Share float64
}

var (
	estimatedSalespeople = []EstimatedShare{
		{Name: "Sales Rep A", Share: 0.3},
		{Name: "Sales Rep B", Share: 0.4},
		{Name: "Sales Rep C", Share: 0.3},
	}
	estimatedCustomers = []EstimatedShare{
		{Name: "Customer Group A", Share: 0.35},
		{Name: "Customer Group B", Share: 0.35},
		{Name: "Customer Group C", Share: 0.3},
	}
)

// BuildTrend gera um ponto por mês, na ordem recebida, somando faturamento e pedidos.
// Quando as linhas trazem vendedor ou cliente a quebra é "reported"; caso contrário é
// estimada por fatias fixas e marcada como "estimated".
func BuildTrend(invoices []domain.InvoiceRecord, salesOrders []domain.SalesOrderRecord, months []string) []domain.MonthlyAggregate {
	reported := hasAttribution(invoices) || hasAttribution(salesOrders)

	trend := make([]domain.MonthlyAggregate, 0, len(months))
	for _, month := range months {
		invoiceTotals := AggregateMonth(invoices, month)
		salesOrderTotals := AggregateMonth(salesOrders, month)

		entry := domain.MonthlyAggregate{
			Key:         strings.ToLower(month),
			Month:       domain.MonthLabel(month),
			Sales:       invoiceTotals.Amount + salesOrderTotals.Amount,
			GP:          invoiceTotals.GrossProfit + salesOrderTotals.GrossProfit,
			TotalOrders: invoiceTotals.OrderCount + salesOrderTotals.OrderCount,
		}

		if reported {
			entry.Attribution = domain.AttributionReported
			entry.Salespeople = make(map[string]domain.EntityTotals)
			entry.Customers = make(map[string]domain.EntityTotals)
			addReported(entry.Salespeople, entry.Customers, invoices, month)
			addReported(entry.Salespeople, entry.Customers, salesOrders, month)
		} else {
			entry.Attribution = domain.AttributionEstimated
			entry.Salespeople = estimateSplit(entry, estimatedSalespeople)
			entry.Customers = estimateSplit(entry, estimatedCustomers)
		}

		trend = append(trend, entry)
	}

	return trend
}

func hasAttribution[T unitRecord](records []T) bool {
	for _, record := range records {
		base := record.Base()
		if base.Salesperson != "" || base.Customer != "" {
			return true
		}
	}

	return false
}

func addReported[T unitRecord](salespeople, customers map[string]domain.EntityTotals, records []T, month string) {
	for _, record := range records {
		base := record.Base()
		if !strings.EqualFold(base.Month, month) {
			continue
		}

		addEntity(salespeople, entityName(base.Salesperson), base)
		addEntity(customers, entityName(base.Customer), base)
	}
}

func addEntity(entities map[string]domain.EntityTotals, name string, record domain.Record) {
	totals := entities[name]
	totals.Sales += record.TotalAmount
	totals.GP += record.GrossProfit
	totals.Orders += record.OrderCount
	entities[name] = totals
}

func entityName(name string) string {
	if name == "" {
		return UnassignedEntity
	}

	return name
}

func estimateSplit(entry domain.MonthlyAggregate, shares []EstimatedShare) map[string]domain.EntityTotals {
	split := make(map[string]domain.EntityTotals, len(shares))
	for _, share := range shares {
		split[share.Name] = domain.EntityTotals{
			Sales:  entry.Sales * share.Share,
			GP:     entry.GP * share.Share,
			Orders: int(math.Round(float64(entry.TotalOrders) * share.Share)),
		}
	}

	return split
}
