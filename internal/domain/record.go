package domain

// RawPayload é o corpo bruto devolvido pela API de vendas, antes de qualquer validação
type RawPayload struct {
	Invoice    []any `json:"invoice"`
	SalesOrder []any `json:"sales_order"`
}

// Record é uma linha agregada por unidade de negócio e mês, já convertida para valores numéricos
type Record struct {
	Month                string  `json:"month"`
	BusinessUnit         string  `json:"business_unit"`
	OriginalBusinessUnit string  `json:"original_business_unit"`
	TotalAmount          float64 `json:"total_amount"`
	GrossProfit          float64 `json:"gross_profit"`
	OrderCount           int     `json:"order_count"`
	Salesperson          string  `json:"salesperson,omitempty"`
	Customer             string  `json:"customer,omitempty"`
}

// Base permite que funções genéricas acessem os campos comuns de faturas e pedidos
func (r Record) Base() Record {
	return r
}

// MarginBandCounts guarda a quantidade de pedidos por faixa de margem informada pela API
type MarginBandCounts struct {
	BelowTen    int `json:"below_ten"`
	TenToTwenty int `json:"ten_to_twenty"`
	AboveTwenty int `json:"above_twenty"`
}

// Total soma as três faixas
func (c MarginBandCounts) Total() int {
	return c.BelowTen + c.TenToTwenty + c.AboveTwenty
}

// InvoiceRecord representa uma linha de faturamento
type InvoiceRecord struct {
	Record
	MarginBands MarginBandCounts `json:"margin_bands"`
}

// SalesOrderRecord representa uma linha de pedidos de venda
type SalesOrderRecord struct {
	Record
}

// SourceData agrupa os registros processados de todas as origens consultadas
type SourceData struct {
	Invoices    []InvoiceRecord    `json:"invoices"`
	SalesOrders []SalesOrderRecord `json:"sales_orders"`
	Sources     []string           `json:"sources"`
}

// IsEmpty indica se não há nenhum registro
func (d *SourceData) IsEmpty() bool {
	return d == nil || (len(d.Invoices) == 0 && len(d.SalesOrders) == 0)
}

// MonthTotals são as somas de um conjunto de registros para um mês
type MonthTotals struct {
	Amount      float64 `json:"amount"`
	GrossProfit float64 `json:"gross_profit"`
	OrderCount  int     `json:"order_count"`
}

// InvoiceMonthTotals acrescenta as contagens por faixa de margem
type InvoiceMonthTotals struct {
	MonthTotals
	MarginBands MarginBandCounts `json:"margin_bands"`
}
