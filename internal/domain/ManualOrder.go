package domain

import "time"

// ManualOrder representa um pedido lançado manualmente pelo usuário
type ManualOrder struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	OrderDate    time.Time `json:"order_date"`
	CustomerName string    `json:"customer_name"`
	BusinessUnit string    `json:"business_unit"`
	OrderValue   float64   `json:"order_value"`
	GrossMargin  float64   `json:"gross_margin"` // Percentual
	GrossProfit  float64   `json:"gross_profit"` // Derivado de OrderValue e GrossMargin
	Salesperson  string    `json:"salesperson"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateManualOrderRequest é o formulário de lançamento de pedido.
// ProductGroup é aceito no lugar de BusinessUnit para clientes antigos.
type CreateManualOrderRequest struct {
	OrderDate    string  `json:"order_date" validate:"required,datetime=2006-01-02"`
	CustomerName string  `json:"customer_name" validate:"required,max=200"`
	BusinessUnit string  `json:"business_unit" validate:"required_without=ProductGroup,max=50"`
	ProductGroup string  `json:"product_group,omitempty" validate:"max=50"`
	OrderValue   float64 `json:"order_value" validate:"gte=0"`
	GrossMargin  float64 `json:"gross_margin" validate:"gte=-100,lte=100"`
	Salesperson  string  `json:"salesperson" validate:"required,max=100"`
}
