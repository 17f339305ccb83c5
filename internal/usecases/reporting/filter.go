package reporting

import (
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// unitRecord é satisfeito por InvoiceRecord e SalesOrderRecord
type unitRecord interface {
	Base() domain.Record
}

// IsAll indica se o valor do filtro desativa o filtro
func IsAll(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, domain.FilterAll)
}

// FilterByUnit mantém apenas os registros da unidade informada. "all" ou vazio devolve a entrada.
func FilterByUnit[T unitRecord](records []T, unit string) []T {
	if IsAll(unit) {
		return records
	}

	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if record.Base().BusinessUnit == unit {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

// FilterSourceData aplica o filtro de unidade às duas coleções
func FilterSourceData(data *domain.SourceData, unit string) *domain.SourceData {
	if data == nil {
		return &domain.SourceData{}
	}

	return &domain.SourceData{
		Invoices:    FilterByUnit(data.Invoices, unit),
		SalesOrders: FilterByUnit(data.SalesOrders, unit),
		Sources:     data.Sources,
	}
}

// PeriodRange retorna o intervalo de meses (índices iniciados em zero) coberto pela visão
func PeriodRange(periodMonth int, viewMode domain.ViewMode) (int, int) {
	switch viewMode {
	case domain.ViewQTD:
		start, _ := domain.QuarterBounds(periodMonth)
		return start, periodMonth
	case domain.ViewYTD:
		return 0, periodMonth
	default:
		return periodMonth, periodMonth
	}
}

// FilterManualOrders filtra pedidos manuais pelo período da visão e pelos filtros do dashboard.
// Visões desconhecidas são tratadas como mensais.
func FilterManualOrders(orders []domain.ManualOrder, filters domain.DashboardFilters, periodMonth int, viewMode domain.ViewMode) []domain.ManualOrder {
	start, end := PeriodRange(periodMonth, viewMode)

	filtered := make([]domain.ManualOrder, 0, len(orders))
	for _, order := range orders {
		month := int(order.OrderDate.Month()) - 1
		if month < start || month > end {
			continue
		}
		if matchesOrderFilters(order, filters) {
			filtered = append(filtered, order)
		}
	}

	return filtered
}

// filterOrdersByEntity aplica apenas os filtros de ano, unidade, cliente e vendedor
func filterOrdersByEntity(orders []domain.ManualOrder, filters domain.DashboardFilters) []domain.ManualOrder {
	filtered := make([]domain.ManualOrder, 0, len(orders))
	for _, order := range orders {
		if matchesOrderFilters(order, filters) {
			filtered = append(filtered, order)
		}
	}

	return filtered
}

func matchesOrderFilters(order domain.ManualOrder, filters domain.DashboardFilters) bool {
	if filters.Year != 0 && order.OrderDate.Year() != filters.Year {
		return false
	}
	if !IsAll(filters.BusinessUnit) && order.BusinessUnit != filters.BusinessUnit {
		return false
	}
	if !IsAll(filters.Customer) && order.CustomerName != filters.Customer {
		return false
	}
	if !IsAll(filters.Salesperson) && order.Salesperson != filters.Salesperson {
		return false
	}

	return true
}
