package reporting

import (
	"sort"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// MonthsOf lista as chaves de mês presentes nos registros, na ordem em que aparecem
func MonthsOf[T unitRecord](records []T) []string {
	months := make([]string, 0, len(records))
	for _, record := range records {
		months = append(months, record.Base().Month)
	}

	return months
}

// AvailableMonths une as coleções, remove duplicados e ordena por calendário.
// Chaves desconhecidas têm ordem 0 e ficam no início.
func AvailableMonths(collections ...[]string) []string {
	seen := make(map[string]bool)
	months := make([]string, 0, 12)

	for _, collection := range collections {
		for _, month := range collection {
			key := strings.ToLower(strings.TrimSpace(month))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			months = append(months, key)
		}
	}

	sort.SliceStable(months, func(i, j int) bool {
		return domain.MonthOrder(months[i]) < domain.MonthOrder(months[j])
	})

	return months
}

// LatestMonth retorna o mês de maior ordem de calendário.
// Sem nenhum mês reconhecido devolve o primeiro elemento, e "" para entrada vazia.
func LatestMonth(months []string) string {
	if len(months) == 0 {
		return ""
	}

	latest := ""
	latestOrder := 0
	for _, month := range months {
		if order := domain.MonthOrder(month); order > latestOrder {
			latest = month
			latestOrder = order
		}
	}

	if latestOrder == 0 {
		return months[0]
	}

	return latest
}
