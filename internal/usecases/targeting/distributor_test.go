package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func sum(values [12]float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func TestDistribute_Igual(t *testing.T) {
	targets := Distribute(38400000, 9600000, domain.DistributionEqual, nil)

	for i := 0; i < 12; i++ {
		assert.Equal(t, 3200000.0, targets.Sales[i])
		assert.Equal(t, 800000.0, targets.GP[i])
	}
}

func TestDistribute_SomaPreservada(t *testing.T) {
	custom := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	tests := []struct {
		name    string
		method  domain.DistributionMethod
		weights []float64
	}{
		{name: "igual", method: domain.DistributionEqual},
		{name: "ponderada", method: domain.DistributionWeighted},
		{name: "customizada", method: domain.DistributionCustom, weights: custom},
		{name: "método desconhecido", method: domain.DistributionMethod("seasonal")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets := Distribute(1234567.89, 345678.12, tt.method, tt.weights)
			assert.InDelta(t, 1234567.89, sum(targets.Sales), 1e-6)
			assert.InDelta(t, 345678.12, sum(targets.GP), 1e-6)
		})
	}
}

func TestDistribute_Ponderada(t *testing.T) {
	targets := Distribute(106000, 10600, domain.DistributionWeighted, nil)

	assert.InDelta(t, 8000.0, targets.Sales[0], 1e-9)
	assert.InDelta(t, 7000.0, targets.Sales[5], 1e-9)
	assert.InDelta(t, 12000.0, targets.Sales[11], 1e-9)
	assert.InDelta(t, 1200.0, targets.GP[11], 1e-9)
}

func TestDistribute_CustomizadaInvalidaUsaIgual(t *testing.T) {
	equal := Distribute(1200, 120, domain.DistributionEqual, nil)

	tests := []struct {
		name    string
		weights []float64
	}{
		{name: "sem pesos", weights: nil},
		{name: "tamanho errado", weights: []float64{1, 2, 3}},
		{name: "soma zero", weights: make([]float64, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, equal, Distribute(1200, 120, domain.DistributionCustom, tt.weights))
		})
	}
}
