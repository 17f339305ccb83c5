package reporting

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// DefaultMappingProfile retorna os nomes de campo usados pela API de vendas
func DefaultMappingProfile() domain.MappingProfile {
	return domain.MappingProfile{
		BusinessUnit:      "bu",
		Month:             "month",
		TotalAmount:       "total_amount",
		GrossProfit:       "gross_profit",
		OrderCount:        "order_count",
		MarginBelowTen:    "margin_below_10",
		MarginTenToTwenty: "margin_10_20",
		MarginAboveTwenty: "margin_above_20",
		Salesperson:       "salesperson",
		Customer:          "customer",
	}
}

// withDefaults completa campos vazios com o perfil padrão
func withDefaults(p domain.MappingProfile) domain.MappingProfile {
	def := DefaultMappingProfile()
	fill := func(value *string, fallback string) {
		if strings.TrimSpace(*value) == "" {
			*value = fallback
		}
	}

	fill(&p.BusinessUnit, def.BusinessUnit)
	fill(&p.Month, def.Month)
	fill(&p.TotalAmount, def.TotalAmount)
	fill(&p.GrossProfit, def.GrossProfit)
	fill(&p.OrderCount, def.OrderCount)
	fill(&p.MarginBelowTen, def.MarginBelowTen)
	fill(&p.MarginTenToTwenty, def.MarginTenToTwenty)
	fill(&p.MarginAboveTwenty, def.MarginAboveTwenty)
	fill(&p.Salesperson, def.Salesperson)
	fill(&p.Customer, def.Customer)

	return p
}

// RecordProcessor converte as linhas brutas da API em registros tipados
type RecordProcessor struct {
	profile domain.MappingProfile
	mapper  *BusinessUnitMapper
}

// NewRecordProcessor cria um processador com o perfil de campos e o mapeador de unidades
func NewRecordProcessor(profile domain.MappingProfile, mapper *BusinessUnitMapper) *RecordProcessor {
	if mapper == nil {
		mapper = NewBusinessUnitMapper(nil)
	}

	return &RecordProcessor{
		profile: withDefaults(profile),
		mapper:  mapper,
	}
}

// NormalizeUnit traduz o filtro de unidade informado pelo usuário para o rótulo canônico.
// "all" e vazio são mantidos como estão.
func (p *RecordProcessor) NormalizeUnit(raw string) string {
	if IsAll(raw) {
		return raw
	}

	return p.mapper.MapFold(raw)
}

// Process converte o payload completo de uma origem
func (p *RecordProcessor) Process(payload domain.RawPayload) *domain.SourceData {
	return &domain.SourceData{
		Invoices:    p.ProcessInvoices(payload.Invoice),
		SalesOrders: p.ProcessSalesOrders(payload.SalesOrder),
	}
}

// ProcessInvoices converte linhas de faturamento. Linhas que não são objetos são descartadas.
func (p *RecordProcessor) ProcessInvoices(rows []any) []domain.InvoiceRecord {
	records := make([]domain.InvoiceRecord, 0, len(rows))

	for _, raw := range rows {
		row, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		records = append(records, domain.InvoiceRecord{
			Record: p.record(row),
			MarginBands: domain.MarginBandCounts{
				BelowTen:    ToCount(row[p.profile.MarginBelowTen]),
				TenToTwenty: ToCount(row[p.profile.MarginTenToTwenty]),
				AboveTwenty: ToCount(row[p.profile.MarginAboveTwenty]),
			},
		})
	}

	return records
}

// ProcessSalesOrders converte linhas de pedidos de venda. Linhas que não são objetos são descartadas.
func (p *RecordProcessor) ProcessSalesOrders(rows []any) []domain.SalesOrderRecord {
	records := make([]domain.SalesOrderRecord, 0, len(rows))

	for _, raw := range rows {
		row, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		records = append(records, domain.SalesOrderRecord{Record: p.record(row)})
	}

	return records
}

func (p *RecordProcessor) record(row map[string]any) domain.Record {
	original := domain.DefaultBusinessUnit
	if value, ok := row[p.profile.BusinessUnit]; ok && value != nil {
		if label := toText(value); label != "" {
			original = label
		}
	}

	return domain.Record{
		Month:                NormalizeMonth(row[p.profile.Month]),
		BusinessUnit:         p.mapper.Map(original),
		OriginalBusinessUnit: original,
		TotalAmount:          ToNumber(row[p.profile.TotalAmount]),
		GrossProfit:          ToNumber(row[p.profile.GrossProfit]),
		OrderCount:           ToCount(row[p.profile.OrderCount]),
		Salesperson:          toText(row[p.profile.Salesperson]),
		Customer:             toText(row[p.profile.Customer]),
	}
}

// ToNumber converte qualquer valor em um número finito. Valores ausentes ou inválidos viram 0.
func ToNumber(value any) float64 {
	var n float64

	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		n = parsed
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}

	return n
}

// maxCount é o maior inteiro representado exatamente em float64
const maxCount = 1 << 53

// ToCount converte o valor em uma contagem inteira. Fora de [-maxCount, maxCount] vira 0.
func ToCount(value any) int {
	n := math.Round(ToNumber(value))
	if n > maxCount || n < -maxCount {
		return 0
	}

	return int(n)
}

// NormalizeMonth devolve a chave de três letras em minúsculas do mês.
// Aceita "jan", "January", "JAN" e números de 1 a 12. Valores desconhecidos são mantidos em minúsculas.
func NormalizeMonth(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		if len(text) >= 3 && domain.MonthOrder(text[:3]) > 0 {
			return text[:3]
		}
		if number, err := strconv.Atoi(text); err == nil {
			if key := domain.MonthKeyAt(number - 1); key != "" {
				return key
			}
		}
		return text
	case bool:
		return ""
	default:
		number := ToNumber(v)
		if key := domain.MonthKeyAt(int(number) - 1); key != "" && number == math.Trunc(number) {
			return key
		}
		return strings.ToLower(fmt.Sprint(v))
	}
}

func toText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
