package reporting

import (
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// AggregateMonth soma os registros do mês informado (comparação sem diferenciar caixa)
func AggregateMonth[T unitRecord](records []T, month string) domain.MonthTotals {
	var totals domain.MonthTotals

	for _, record := range records {
		base := record.Base()
		if !strings.EqualFold(base.Month, month) {
			continue
		}
		totals.Amount += base.TotalAmount
		totals.GrossProfit += base.GrossProfit
		totals.OrderCount += base.OrderCount
	}

	return totals
}

// AggregateInvoiceMonth soma também as contagens por faixa de margem
func AggregateInvoiceMonth(records []domain.InvoiceRecord, month string) domain.InvoiceMonthTotals {
	totals := domain.InvoiceMonthTotals{MonthTotals: AggregateMonth(records, month)}

	for _, record := range records {
		if !strings.EqualFold(record.Month, month) {
			continue
		}
		totals.MarginBands.BelowTen += record.MarginBands.BelowTen
		totals.MarginBands.TenToTwenty += record.MarginBands.TenToTwenty
		totals.MarginBands.AboveTwenty += record.MarginBands.AboveTwenty
	}

	return totals
}

// AggregateInvoiceMonths soma os totais de faturamento de vários meses
func AggregateInvoiceMonths(records []domain.InvoiceRecord, months []string) domain.InvoiceMonthTotals {
	var totals domain.InvoiceMonthTotals

	for _, month := range months {
		monthTotals := AggregateInvoiceMonth(records, month)
		totals.Amount += monthTotals.Amount
		totals.GrossProfit += monthTotals.GrossProfit
		totals.OrderCount += monthTotals.OrderCount
		totals.MarginBands.BelowTen += monthTotals.MarginBands.BelowTen
		totals.MarginBands.TenToTwenty += monthTotals.MarginBands.TenToTwenty
		totals.MarginBands.AboveTwenty += monthTotals.MarginBands.AboveTwenty
	}

	return totals
}

// AggregateMonths soma os totais de vários meses
func AggregateMonths[T unitRecord](records []T, months []string) domain.MonthTotals {
	var totals domain.MonthTotals

	for _, month := range months {
		monthTotals := AggregateMonth(records, month)
		totals.Amount += monthTotals.Amount
		totals.GrossProfit += monthTotals.GrossProfit
		totals.OrderCount += monthTotals.OrderCount
	}

	return totals
}

// CombineSources junta faturamento e pedidos nos KPIs do período
func CombineSources(invoices, salesOrders domain.MonthTotals) domain.CurrentPeriodTotals {
	totals := domain.CurrentPeriodTotals{
		TotalSales:  invoices.Amount + salesOrders.Amount,
		TotalGP:     invoices.GrossProfit + salesOrders.GrossProfit,
		TotalOrders: invoices.OrderCount + salesOrders.OrderCount,
	}
	totals.AverageMargin = AverageMargin(totals.TotalSales, totals.TotalGP)

	return totals
}

// AverageMargin calcula a margem percentual, 0 quando não há vendas
func AverageMargin(sales, grossProfit float64) float64 {
	if sales <= 0 {
		return 0
	}

	return grossProfit / sales * 100
}
