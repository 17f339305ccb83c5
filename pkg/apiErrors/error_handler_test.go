package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		status int
	}{
		{name: "Token inválido", code: ErrInvalidToken, status: http.StatusUnauthorized},
		{name: "Requisição inválida", code: ErrInvalidRequest, status: http.StatusBadRequest},
		{name: "Não encontrado", code: ErrNotFound, status: http.StatusNotFound},
		{name: "Fórmula inválida", code: ErrInvalidFormula, status: http.StatusUnprocessableEntity},
		{name: "Código desconhecido vira 500", code: "XYZ", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "erro"})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.Equal(t, map[string]any{"campo": "erro"}, body.Details)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer, Message: "Erro desconhecido"}, FromError(nil, ErrNotFound))
	assert.Equal(t, APIError{Code: ErrNotFound, Message: "sumiu"}, FromError(errors.New("sumiu"), ErrNotFound))
}
