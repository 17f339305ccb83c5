package domain

// Origem da quebra por vendedor/cliente
const (
	AttributionReported  = "reported"  // Informada pela API de vendas
	AttributionEstimated = "estimated" // Rateio fixo, sem atribuição real
)

// EntityTotals são os totais de um vendedor ou cliente em um mês
type EntityTotals struct {
	Sales  float64 `json:"sales"`
	GP     float64 `json:"gp"`
	Orders int     `json:"orders"`
}

// MonthlyAggregate é um ponto da tendência mensal
type MonthlyAggregate struct {
	Key         string                  `json:"key"`
	Month       string                  `json:"month"`
	Sales       float64                 `json:"sales"`
	GP          float64                 `json:"gp"`
	TotalOrders int                     `json:"total_orders"`
	Salespeople map[string]EntityTotals `json:"salespeople"`
	Customers   map[string]EntityTotals `json:"customers"`
	Attribution string                  `json:"attribution"`
}
