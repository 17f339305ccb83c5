package reporting

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// defaultBusinessUnitTable associa os rótulos recebidos da API às unidades canônicas
var defaultBusinessUnitTable = map[string]string{
	domain.BusinessUnitCoil: domain.BusinessUnitCoil,
	domain.BusinessUnitUnit: domain.BusinessUnitUnit,
	domain.BusinessUnitME:   domain.BusinessUnitME,
	domain.BusinessUnitHBPM: domain.BusinessUnitHBPM,
	domain.BusinessUnitMKT:  domain.BusinessUnitMKT,

	// Rótulos legados
	"Coil(Unit)":  domain.BusinessUnitUnit,
	"Coil (Unit)": domain.BusinessUnitUnit,
	"ME":          domain.BusinessUnitME,
	"M & E":       domain.BusinessUnitME,
	"Marketing":   domain.BusinessUnitMKT,
}

// BusinessUnitMapper normaliza rótulos de unidade de negócio para o conjunto canônico
type BusinessUnitMapper struct {
	table  map[string]string
	folded map[string]string
}

// NewBusinessUnitMapper cria o mapeador com a tabela padrão acrescida dos aliases informados
func NewBusinessUnitMapper(aliases map[string]string) *BusinessUnitMapper {
	m := &BusinessUnitMapper{
		table:  make(map[string]string, len(defaultBusinessUnitTable)+len(aliases)),
		folded: make(map[string]string, len(defaultBusinessUnitTable)+len(aliases)),
	}

	for raw, canonical := range defaultBusinessUnitTable {
		m.add(raw, canonical)
	}
	for raw, canonical := range aliases {
		m.add(raw, canonical)
	}

	return m
}

func (m *BusinessUnitMapper) add(raw, canonical string) {
	m.table[raw] = canonical
	m.folded[strings.ToLower(strings.TrimSpace(raw))] = canonical
}

// Map traduz o rótulo por correspondência exata. Rótulos desconhecidos são devolvidos sem alteração.
func (m *BusinessUnitMapper) Map(raw string) string {
	if canonical, ok := m.table[raw]; ok {
		return canonical
	}

	logrus.WithField("business_unit", raw).Debug("Unidade de negócio sem mapeamento, mantendo rótulo original")
	return raw
}

// MapFold ignora espaços nas pontas e diferenças de caixa antes da busca
func (m *BusinessUnitMapper) MapFold(raw string) string {
	if canonical, ok := m.folded[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canonical
	}

	logrus.WithField("business_unit", raw).Debug("Unidade de negócio sem mapeamento, mantendo rótulo original")
	return raw
}
