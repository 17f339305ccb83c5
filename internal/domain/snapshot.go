package domain

import "time"

// ViewMode é o recorte de tempo do dashboard
type ViewMode string

const (
	ViewMonthly ViewMode = "monthly"
	ViewQTD     ViewMode = "qtd"
	ViewYTD     ViewMode = "ytd"
)

// DashboardFilters são os filtros aplicados ao dashboard
type DashboardFilters struct {
	BusinessUnit string `json:"business_unit"`
	Customer     string `json:"customer"`
	Salesperson  string `json:"salesperson"`
	Year         int    `json:"year,omitempty"` // 0 aceita pedidos manuais de qualquer ano
}

// CurrentPeriodTotals são os KPIs do período selecionado
type CurrentPeriodTotals struct {
	TotalSales    float64 `json:"total_sales"`
	TotalGP       float64 `json:"total_gp"`
	TotalOrders   int     `json:"total_orders"`
	AverageMargin float64 `json:"average_margin"`
}

// TargetComparison compara o realizado do período com a meta
type TargetComparison struct {
	Target      TargetAmount `json:"target"`
	Actual      TargetAmount `json:"actual"`
	Gap         TargetAmount `json:"gap"`
	Achievement TargetAmount `json:"achievement"` // Percentual da meta atingido
}

// DashboardSnapshot é o resultado consolidado da conciliação
type DashboardSnapshot struct {
	CurrentPeriod CurrentPeriodTotals `json:"current_period"`
	MarginBands   []MarginBand        `json:"margin_bands"`
	MonthlyTrend  []MonthlyAggregate  `json:"monthly_trend"`
	Target        *TargetComparison   `json:"target,omitempty"`
}

// DashboardRequest são os parâmetros de uma consulta ao dashboard
type DashboardRequest struct {
	ViewMode ViewMode         `json:"view_mode"`
	Month    int              `json:"month"` // Índice iniciado em zero; negativo usa o último mês disponível
	Filters  DashboardFilters `json:"filters"`
}

// PeriodInfo descreve o período efetivamente usado
type PeriodInfo struct {
	ViewMode ViewMode `json:"view_mode"`
	Month    int      `json:"month"` // 1-12
	MonthKey string   `json:"month_key"`
	Year     int      `json:"year,omitempty"`
}

// DashboardResponse é o corpo devolvido ao frontend
type DashboardResponse struct {
	DashboardSnapshot
	Period          PeriodInfo       `json:"period"`
	Filters         DashboardFilters `json:"filters"`
	AvailableMonths []string         `json:"available_months"`
	Status          FetchStatus      `json:"status"`
	Notice          string           `json:"notice,omitempty"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// AvailableMonths lista os meses presentes nas origens de dados
type AvailableMonths struct {
	Months      []string    `json:"months"`
	LatestMonth string      `json:"latest_month"`
	Status      FetchStatus `json:"status"`
}
