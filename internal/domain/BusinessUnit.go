package domain

// Unidades de negócio canônicas usadas em todos os relatórios
const (
	BusinessUnitCoil = "Coil"
	BusinessUnitUnit = "Unit"
	BusinessUnitME   = "M&E"
	BusinessUnitHBPM = "HBPM"
	BusinessUnitMKT  = "MKT"
)

// DefaultBusinessUnit é atribuída às linhas da API que não informam unidade
const DefaultBusinessUnit = BusinessUnitCoil

// FilterAll é o valor sentinela que desativa um filtro
const FilterAll = "all"

// CanonicalBusinessUnits lista as unidades canônicas na ordem de exibição
var CanonicalBusinessUnits = []string{
	BusinessUnitCoil,
	BusinessUnitUnit,
	BusinessUnitME,
	BusinessUnitHBPM,
	BusinessUnitMKT,
}
