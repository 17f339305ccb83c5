package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestAggregateMonth(t *testing.T) {
	records := []domain.SalesOrderRecord{
		salesOrder("Coil", "jan", 100, 10, 1),
		salesOrder("Unit", "JAN", 50, 5, 2),
		salesOrder("Coil", "feb", 999, 99, 9),
	}

	totals := AggregateMonth(records, "jan")

	assert.Equal(t, domain.MonthTotals{Amount: 150, GrossProfit: 15, OrderCount: 3}, totals)
	assert.Equal(t, domain.MonthTotals{}, AggregateMonth(records, "mar"))
}

func TestAggregateInvoiceMonth(t *testing.T) {
	first := invoice("Coil", "jan", 100, 10, 3)
	first.MarginBands = domain.MarginBandCounts{BelowTen: 1, TenToTwenty: 1, AboveTwenty: 1}
	second := invoice("Coil", "jan", 200, 40, 2)
	second.MarginBands = domain.MarginBandCounts{AboveTwenty: 2}

	totals := AggregateInvoiceMonth([]domain.InvoiceRecord{first, second}, "jan")

	assert.Equal(t, 300.0, totals.Amount)
	assert.Equal(t, 5, totals.OrderCount)
	assert.Equal(t, domain.MarginBandCounts{BelowTen: 1, TenToTwenty: 1, AboveTwenty: 3}, totals.MarginBands)
}

func TestCombineSources(t *testing.T) {
	tests := []struct {
		name        string
		invoices    domain.MonthTotals
		salesOrders domain.MonthTotals
		expected    domain.CurrentPeriodTotals
	}{
		{
			name:        "Soma as duas origens",
			invoices:    domain.MonthTotals{Amount: 600, GrossProfit: 120, OrderCount: 3},
			salesOrders: domain.MonthTotals{Amount: 400, GrossProfit: 80, OrderCount: 2},
			expected:    domain.CurrentPeriodTotals{TotalSales: 1000, TotalGP: 200, TotalOrders: 5, AverageMargin: 20},
		},
		{
			name:        "Sem vendas a margem é zero",
			invoices:    domain.MonthTotals{GrossProfit: 50},
			salesOrders: domain.MonthTotals{},
			expected:    domain.CurrentPeriodTotals{TotalGP: 50},
		},
		{
			name:        "Vendas negativas não geram margem",
			invoices:    domain.MonthTotals{Amount: -10, GrossProfit: 5},
			salesOrders: domain.MonthTotals{},
			expected:    domain.CurrentPeriodTotals{TotalSales: -10, TotalGP: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CombineSources(tt.invoices, tt.salesOrders)
			assert.Equal(t, tt.expected.TotalSales, result.TotalSales)
			assert.Equal(t, tt.expected.TotalGP, result.TotalGP)
			assert.Equal(t, tt.expected.TotalOrders, result.TotalOrders)
			assert.InDelta(t, tt.expected.AverageMargin, result.AverageMargin, 1e-9)
		})
	}
}
