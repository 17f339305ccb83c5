package targeting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SeasonalWeights é a sazonalidade padrão da distribuição ponderada (soma 106)
var SeasonalWeights = [12]float64{8, 8, 9, 9, 8, 7, 7, 8, 9, 10, 11, 12}

// Distribute divide as metas anuais em doze meses conforme o método.
// Pesos customizados inválidos (tamanho diferente de 12 ou soma não positiva) caem na divisão igual.
func Distribute(annualSales, annualGP float64, method domain.DistributionMethod, weights []float64) domain.MonthlyTargets {
	switch method {
	case domain.DistributionWeighted:
		return distributeByWeights(annualSales, annualGP, SeasonalWeights[:])
	case domain.DistributionCustom:
		if validWeights(weights) {
			return distributeByWeights(annualSales, annualGP, weights)
		}
	}

	return distributeEqually(annualSales, annualGP)
}

// DistributeAnnual aplica Distribute às metas anuais informadas
func DistributeAnnual(annual domain.AnnualTargets) domain.MonthlyTargets {
	return Distribute(annual.Sales, annual.GP, annual.Distribution, annual.Weights)
}

func distributeEqually(annualSales, annualGP float64) domain.MonthlyTargets {
	var targets domain.MonthlyTargets

	months := decimal.NewFromInt(12)
	sales := decimal.NewFromFloat(annualSales).Div(months).InexactFloat64()
	gp := decimal.NewFromFloat(annualGP).Div(months).InexactFloat64()

	for i := range targets.Sales {
		targets.Sales[i] = sales
		targets.GP[i] = gp
	}

	return targets
}

func distributeByWeights(annualSales, annualGP float64, weights []float64) domain.MonthlyTargets {
	var targets domain.MonthlyTargets

	total := decimal.Zero
	for _, w := range weights {
		total = total.Add(decimal.NewFromFloat(w))
	}

	sales := decimal.NewFromFloat(annualSales)
	gp := decimal.NewFromFloat(annualGP)

	for i, w := range weights {
		share := decimal.NewFromFloat(w)
		targets.Sales[i] = sales.Mul(share).Div(total).InexactFloat64()
		targets.GP[i] = gp.Mul(share).Div(total).InexactFloat64()
	}

	return targets
}

func validWeights(weights []float64) bool {
	if len(weights) != 12 {
		return false
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}

	return sum > 0
}
