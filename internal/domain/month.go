package domain

import "strings"

// MonthKeys são as chaves de mês usadas pela API de vendas, em ordem de calendário
var MonthKeys = [12]string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthOrder retorna a posição de calendário (1-12) da chave de mês, ou 0 quando desconhecida
func MonthOrder(key string) int {
	key = strings.ToLower(key)
	for i, k := range MonthKeys {
		if k == key {
			return i + 1
		}
	}
	return 0
}

// MonthKeyAt retorna a chave do mês para um índice iniciado em zero
func MonthKeyAt(index int) string {
	if index < 0 || index > 11 {
		return ""
	}
	return MonthKeys[index]
}

// MonthLabel retorna o rótulo de exibição de uma chave de mês
func MonthLabel(key string) string {
	order := MonthOrder(key)
	if order == 0 {
		return key
	}
	return monthLabels[order-1]
}

// QuarterBounds retorna o primeiro e o último mês (índices iniciados em zero) do trimestre que contém o mês
func QuarterBounds(month int) (int, int) {
	start := (month / 3) * 3
	return start, start + 2
}
