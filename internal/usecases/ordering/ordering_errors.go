package ordering

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de pedidos manuais
var (
	ErrInvalidManualOrder  = errors.New("pedido manual inválido")
	ErrManualOrderNotFound = errors.New("pedido manual não encontrado")
	ErrUserIDRequired      = errors.New("usuário obrigatório")
	ErrGenerateID          = errors.New("erro ao gerar id do pedido")
	ErrStorageUnavailable  = errors.New("armazenamento de pedidos indisponível")
)

// ValidationError descreve os campos rejeitados na criação do pedido
type ValidationError struct {
	Fields map[string]string
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidManualOrder.Error(), e.Fields)
}

// Unwrap permite errors.Is(err, ErrInvalidManualOrder)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidManualOrder
}
