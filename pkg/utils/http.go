package utils

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodyBytes limita o corpo das requisições JSON
const maxBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("corpo da requisição vazio")

// WriteJSON escreve v como JSON com o status informado
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// DecodeJSON lê o corpo da requisição em dst
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	if err != nil {
		return errors.Wrap(err, "JSON inválido")
	}

	return nil
}
