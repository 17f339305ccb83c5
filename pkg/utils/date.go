package utils

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidMonth = errors.New("mês inválido, use 1 a 12")
	ErrInvalidYear  = errors.New("ano inválido")
)

// ParseMonthParam converte o mês 1-12 da query para o índice 0-11; vazio devolve -1
func ParseMonthParam(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return -1, nil
	}

	month, err := strconv.Atoi(raw)
	if err != nil || month < 1 || month > 12 {
		return 0, errors.Wrapf(ErrInvalidMonth, "%q", raw)
	}

	return month - 1, nil
}

// ParseYearParam valida o ano de quatro dígitos; vazio devolve 0
func ParseYearParam(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 1000 || year > 9999 {
		return 0, errors.Wrapf(ErrInvalidYear, "%q", raw)
	}

	return year, nil
}
