package dashboard

import "github.com/pkg/errors"

var (
	ErrInvalidViewMode     = errors.New("visão inválida, use monthly, qtd ou ytd")
	ErrInvalidMonth        = errors.New("mês inválido, use valores de 1 a 12")
	ErrNoSourcesConfigured = errors.New("nenhuma fonte de API de vendas configurada")
	ErrAllSourcesFailed    = errors.New("todas as fontes de API de vendas falharam")
	ErrNoSourceData        = errors.New("nenhum dado de vendas disponível")
)

// SourceError identifica a fonte que falhou na coleta
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return "fonte " + e.Source + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
