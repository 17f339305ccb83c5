package reporting

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// ZeroMarginBands retorna as três faixas zeradas
func ZeroMarginBands() []domain.MarginBand {
	bands := make([]domain.MarginBand, len(domain.MarginBandLabels))
	for i, label := range domain.MarginBandLabels {
		bands[i] = domain.MarginBand{Label: label}
	}

	return bands
}

// ClassifyInvoiceTotals estima o valor de cada faixa proporcionalmente à quantidade de pedidos da faixa
func ClassifyInvoiceTotals(totals domain.InvoiceMonthTotals) []domain.MarginBand {
	bands := ZeroMarginBands()

	orderCount := totals.MarginBands.Total()
	if totals.Amount <= 0 || orderCount <= 0 {
		return bands
	}

	counts := [3]int{
		totals.MarginBands.BelowTen,
		totals.MarginBands.TenToTwenty,
		totals.MarginBands.AboveTwenty,
	}

	for i, count := range counts {
		bands[i].Orders = count
		bands[i].Value = totals.Amount * (float64(count) / float64(orderCount))
	}

	return recomputePercentages(bands)
}

// MarginBandIndex classifica uma margem percentual: <10, 10 a 20 inclusive, >20
func MarginBandIndex(margin float64) int {
	switch {
	case margin < 10:
		return 0
	case margin <= 20:
		return 1
	default:
		return 2
	}
}

// MergeManualOrders soma os pedidos manuais às faixas e recalcula os percentuais
func MergeManualOrders(bands []domain.MarginBand, orders []domain.ManualOrder) []domain.MarginBand {
	merged := ZeroMarginBands()
	for i := range merged {
		if i < len(bands) {
			merged[i].Orders = bands[i].Orders
			merged[i].Value = bands[i].Value
		}
	}

	for _, order := range orders {
		index := MarginBandIndex(order.GrossMargin)
		merged[index].Orders++
		merged[index].Value += order.OrderValue
	}

	return recomputePercentages(merged)
}

func recomputePercentages(bands []domain.MarginBand) []domain.MarginBand {
	var total float64
	for _, band := range bands {
		total += band.Value
	}

	for i := range bands {
		if total > 0 {
			bands[i].Percentage = bands[i].Value / total * 100
		} else {
			bands[i].Percentage = 0
		}
	}

	return bands
}
