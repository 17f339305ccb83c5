package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// requireUserID devolve o usuário do token ou responde 401
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não identificado no token", nil)
		return "", false
	}
	return userID, true
}

// respond escreve a resposta JSON e registra falhas de escrita
func respond(w http.ResponseWriter, r *http.Request, status int, body any, scope string) {
	if err := utils.WriteJSON(w, status, body); err != nil {
		log.ForContext(r.Context()).WithError(err).Errorf("%s: erro ao codificar resposta", scope)
	}
}
