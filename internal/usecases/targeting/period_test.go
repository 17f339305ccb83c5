package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func flatTargets(sales, gp float64) domain.MonthlyTargets {
	var targets domain.MonthlyTargets
	for i := range targets.Sales {
		targets.Sales[i] = sales
		targets.GP[i] = gp
	}
	return targets
}

func TestYTDTarget(t *testing.T) {
	targets := flatTargets(100, 10)

	tests := []struct {
		name         string
		currentMonth int
		expected     domain.TargetAmount
	}{
		{name: "Janeiro não tem meses concluídos", currentMonth: 1, expected: domain.TargetAmount{}},
		{name: "Junho soma janeiro a maio", currentMonth: 6, expected: domain.TargetAmount{Sales: 500, GP: 50}},
		{name: "Dezembro soma onze meses", currentMonth: 12, expected: domain.TargetAmount{Sales: 1100, GP: 110}},
		{name: "Mês acima de 12 é limitado", currentMonth: 14, expected: domain.TargetAmount{Sales: 1200, GP: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, YTDTarget(targets, tt.currentMonth))
		})
	}
}

func TestQuarterlyTarget(t *testing.T) {
	var targets domain.MonthlyTargets
	for i := range targets.Sales {
		targets.Sales[i] = float64(i + 1)
	}

	assert.Equal(t, 6.0, QuarterlyTarget(targets, 1).Sales)
	assert.Equal(t, 15.0, QuarterlyTarget(targets, 2).Sales)
	assert.Equal(t, 33.0, QuarterlyTarget(targets, 4).Sales)
	assert.Equal(t, domain.TargetAmount{}, QuarterlyTarget(targets, 5))
}

func TestApplyRollover(t *testing.T) {
	targets := flatTargets(1000, 100)

	// Abril a junho (índices 3 a 5) ficaram 300 abaixo da meta cada
	actuals := flatTargets(1000, 100)
	actuals.Sales[3], actuals.Sales[4], actuals.Sales[5] = 700, 700, 700
	actuals.GP[4] = 40

	t.Run("none mantém as metas", func(t *testing.T) {
		assert.Equal(t, targets, ApplyRollover(targets, actuals, domain.RolloverNone, 8))
	})

	t.Run("estratégia desconhecida mantém as metas", func(t *testing.T) {
		assert.Equal(t, targets, ApplyRollover(targets, actuals, domain.RolloverStrategy("x"), 8))
	})

	t.Run("cumulativo espalha o déficit pelos meses restantes", func(t *testing.T) {
		// Mês atual agosto: déficit de 900 em vendas e 60 em lucro para agosto a dezembro
		adjusted := ApplyRollover(targets, actuals, domain.RolloverCumulative, 8)

		assert.Equal(t, 1000.0, adjusted.Sales[6])
		assert.InDelta(t, 1180.0, adjusted.Sales[7], 1e-9)
		assert.InDelta(t, 1180.0, adjusted.Sales[11], 1e-9)
		assert.InDelta(t, 112.0, adjusted.GP[7], 1e-9)
		assert.InDelta(t, sum(targets.Sales)+900, sum(adjusted.Sales), 1e-9)
	})

	t.Run("trimestral considera só o trimestre atual", func(t *testing.T) {
		// Mês atual junho (Q2): déficit de abril e maio (600) vai todo para junho
		adjusted := ApplyRollover(targets, actuals, domain.RolloverQuarterly, 6)

		assert.InDelta(t, 1600.0, adjusted.Sales[5], 1e-9)
		assert.Equal(t, 1000.0, adjusted.Sales[6])
		assert.InDelta(t, 160.0, adjusted.GP[5], 1e-9)
	})

	t.Run("trimestral no início do trimestre não altera", func(t *testing.T) {
		assert.Equal(t, targets, ApplyRollover(targets, actuals, domain.RolloverQuarterly, 7))
	})

	t.Run("redistribuição espalha pelos doze meses", func(t *testing.T) {
		adjusted := ApplyRollover(targets, actuals, domain.RolloverRedistribute, 8)

		assert.InDelta(t, 1075.0, adjusted.Sales[0], 1e-9)
		assert.InDelta(t, 1075.0, adjusted.Sales[11], 1e-9)
		assert.InDelta(t, 105.0, adjusted.GP[0], 1e-9)
	})

	t.Run("não altera a entrada", func(t *testing.T) {
		_ = ApplyRollover(targets, actuals, domain.RolloverCumulative, 8)
		assert.Equal(t, 1000.0, targets.Sales[11])
	})
}
