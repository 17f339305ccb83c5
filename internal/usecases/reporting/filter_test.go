package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func invoice(unit, month string, amount, gp float64, orders int) domain.InvoiceRecord {
	return domain.InvoiceRecord{Record: domain.Record{
		Month:        month,
		BusinessUnit: unit,
		TotalAmount:  amount,
		GrossProfit:  gp,
		OrderCount:   orders,
	}}
}

func salesOrder(unit, month string, amount, gp float64, orders int) domain.SalesOrderRecord {
	return domain.SalesOrderRecord{Record: domain.Record{
		Month:        month,
		BusinessUnit: unit,
		TotalAmount:  amount,
		GrossProfit:  gp,
		OrderCount:   orders,
	}}
}

func manualOrder(id string, date time.Time, unit, customer, salesperson string, value, margin float64) domain.ManualOrder {
	return domain.ManualOrder{
		ID:           id,
		OrderDate:    date,
		CustomerName: customer,
		BusinessUnit: unit,
		OrderValue:   value,
		GrossMargin:  margin,
		GrossProfit:  value * margin / 100,
		Salesperson:  salesperson,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestFilterByUnit(t *testing.T) {
	records := []domain.InvoiceRecord{
		invoice("Coil", "jan", 1, 0, 1),
		invoice("Unit", "jan", 2, 0, 1),
		invoice("Coil", "feb", 3, 0, 1),
	}

	t.Run("all devolve a entrada", func(t *testing.T) {
		assert.Equal(t, records, FilterByUnit(records, "ALL"))
		assert.Equal(t, records, FilterByUnit(records, ""))
	})

	t.Run("filtra por correspondência exata", func(t *testing.T) {
		filtered := FilterByUnit(records, "Coil")
		assert.Len(t, filtered, 2)
		assert.Empty(t, FilterByUnit(records, "coil"))
	})

	t.Run("não altera a entrada", func(t *testing.T) {
		_ = FilterByUnit(records, "Unit")
		assert.Len(t, records, 3)
		assert.Equal(t, "Coil", records[0].BusinessUnit)
	})
}

func TestFilterManualOrders(t *testing.T) {
	orders := []domain.ManualOrder{
		manualOrder("feb", date(2024, time.February, 10), "Coil", "Acme", "Ana", 100, 15),
		manualOrder("apr", date(2024, time.April, 3), "Coil", "Acme", "Ana", 100, 15),
		manualOrder("jun", date(2024, time.June, 20), "Unit", "Beta", "Bruno", 100, 15),
		manualOrder("aug", date(2024, time.August, 1), "Coil", "Acme", "Ana", 100, 15),
		manualOrder("jun-old", date(2023, time.June, 20), "Coil", "Acme", "Ana", 100, 15),
	}

	all := domain.DashboardFilters{BusinessUnit: "all", Customer: "all", Salesperson: "all"}

	ids := func(orders []domain.ManualOrder) []string {
		out := make([]string, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.ID)
		}
		return out
	}

	tests := []struct {
		name        string
		filters     domain.DashboardFilters
		periodMonth int
		viewMode    domain.ViewMode
		expected    []string
	}{
		{
			name:        "YTD em junho inclui fevereiro e exclui agosto",
			filters:     all,
			periodMonth: 5,
			viewMode:    domain.ViewYTD,
			expected:    []string{"feb", "apr", "jun", "jun-old"},
		},
		{
			name:        "QTD em junho considera abril a junho",
			filters:     all,
			periodMonth: 5,
			viewMode:    domain.ViewQTD,
			expected:    []string{"apr", "jun", "jun-old"},
		},
		{
			name:        "QTD em abril para no próprio mês",
			filters:     all,
			periodMonth: 3,
			viewMode:    domain.ViewQTD,
			expected:    []string{"apr"},
		},
		{
			name:        "Mensal considera apenas o mês",
			filters:     all,
			periodMonth: 1,
			viewMode:    domain.ViewMonthly,
			expected:    []string{"feb"},
		},
		{
			name:        "Visão desconhecida é mensal",
			filters:     all,
			periodMonth: 7,
			viewMode:    domain.ViewMode("weekly"),
			expected:    []string{"aug"},
		},
		{
			name:        "Filtros de unidade e vendedor são combinados",
			filters:     domain.DashboardFilters{BusinessUnit: "Coil", Customer: "all", Salesperson: "Ana"},
			periodMonth: 5,
			viewMode:    domain.ViewYTD,
			expected:    []string{"feb", "apr", "jun-old"},
		},
		{
			name:        "Filtro de cliente",
			filters:     domain.DashboardFilters{BusinessUnit: "all", Customer: "Beta", Salesperson: "all"},
			periodMonth: 11,
			viewMode:    domain.ViewYTD,
			expected:    []string{"jun"},
		},
		{
			name:        "Filtro de ano",
			filters:     domain.DashboardFilters{Year: 2024},
			periodMonth: 5,
			viewMode:    domain.ViewMonthly,
			expected:    []string{"jun"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(FilterManualOrders(orders, tt.filters, tt.periodMonth, tt.viewMode)))
		})
	}
}
