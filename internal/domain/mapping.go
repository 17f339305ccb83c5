package domain

// MappingProfile define os nomes dos campos das linhas recebidas da API de vendas.
// As tags mapstructure permitem carregar o perfil direto da configuração.
type MappingProfile struct {
	BusinessUnit      string `mapstructure:"mapping_business_unit_field"`
	Month             string `mapstructure:"mapping_month_field"`
	TotalAmount       string `mapstructure:"mapping_total_amount_field"`
	GrossProfit       string `mapstructure:"mapping_gross_profit_field"`
	OrderCount        string `mapstructure:"mapping_order_count_field"`
	MarginBelowTen    string `mapstructure:"mapping_margin_below_ten_field"`
	MarginTenToTwenty string `mapstructure:"mapping_margin_ten_to_twenty_field"`
	MarginAboveTwenty string `mapstructure:"mapping_margin_above_twenty_field"`
	Salesperson       string `mapstructure:"mapping_salesperson_field"`
	Customer          string `mapstructure:"mapping_customer_field"`
}
