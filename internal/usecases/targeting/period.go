package targeting

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// YTDTarget soma as metas dos meses já concluídos, de janeiro até o mês anterior a currentMonth (1-12)
func YTDTarget(targets domain.MonthlyTargets, currentMonth int) domain.TargetAmount {
	return RangeTarget(targets, 0, clampMonth(currentMonth-2))
}

// QuarterlyTarget soma as metas do trimestre (1-4)
func QuarterlyTarget(targets domain.MonthlyTargets, quarter int) domain.TargetAmount {
	if quarter < 1 || quarter > 4 {
		return domain.TargetAmount{}
	}

	start := (quarter - 1) * 3
	return RangeTarget(targets, start, start+2)
}

// RangeTarget soma as metas de start a end (índices iniciados em zero, inclusive)
func RangeTarget(targets domain.MonthlyTargets, start, end int) domain.TargetAmount {
	var amount domain.TargetAmount

	if start < 0 {
		start = 0
	}
	for i := start; i <= end && i < 12; i++ {
		amount.Sales += targets.Sales[i]
		amount.GP += targets.GP[i]
	}

	return amount
}

// ApplyRollover redistribui o déficit dos meses concluídos conforme a estratégia.
// currentMonth vai de 1 a 12; actuals traz o realizado por mês.
func ApplyRollover(targets, actuals domain.MonthlyTargets, strategy domain.RolloverStrategy, currentMonth int) domain.MonthlyTargets {
	current := clampMonth(currentMonth - 1)
	if current < 0 {
		current = 0
	}

	switch strategy {
	case domain.RolloverCumulative:
		gap := shortfall(targets, actuals, 0, current)
		return spread(targets, gap, current, 11)

	case domain.RolloverQuarterly:
		start, end := domain.QuarterBounds(current)
		gap := shortfall(targets, actuals, start, current)
		return spread(targets, gap, current, end)

	case domain.RolloverRedistribute:
		gap := shortfall(targets, actuals, 0, current)
		return spread(targets, gap, 0, 11)

	default:
		return targets
	}
}

// shortfall soma meta menos realizado dos meses em [start, end)
func shortfall(targets, actuals domain.MonthlyTargets, start, end int) domain.TargetAmount {
	var gap domain.TargetAmount
	for i := start; i < end; i++ {
		gap.Sales += targets.Sales[i] - actuals.Sales[i]
		gap.GP += targets.GP[i] - actuals.GP[i]
	}

	return gap
}

// spread soma o déficit em partes iguais aos meses de start a end, inclusive
func spread(targets domain.MonthlyTargets, gap domain.TargetAmount, start, end int) domain.MonthlyTargets {
	months := end - start + 1
	if months <= 0 || (gap.Sales == 0 && gap.GP == 0) {
		return targets
	}

	adjusted := targets
	for i := start; i <= end; i++ {
		adjusted.Sales[i] += gap.Sales / float64(months)
		adjusted.GP[i] += gap.GP / float64(months)
	}

	return adjusted
}

func clampMonth(month int) int {
	if month > 11 {
		return 11
	}

	return month
}
