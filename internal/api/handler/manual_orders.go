package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ListManualOrders lista os pedidos manuais do usuário autenticado
func ListManualOrders(service ordering.ManualOrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		orders, err := service.ListOrders(r.Context(), userID)
		if err != nil {
			writeOrderError(w, r, err, "manual-orders: erro ao listar pedidos")
			return
		}

		respond(w, r, http.StatusOK, orders, "manual-orders")
	})
}

// CreateManualOrder lança um pedido manual
func CreateManualOrder(service ordering.ManualOrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req domain.CreateManualOrderRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		order, err := service.CreateOrder(r.Context(), userID, req)
		if err != nil {
			writeOrderError(w, r, err, "manual-orders: erro ao criar pedido")
			return
		}

		logger.WithField("order_id", order.ID).Info("manual-orders: pedido criado")
		respond(w, r, http.StatusCreated, order, "manual-orders")
	})
}

// DeleteManualOrder remove um pedido manual do usuário
func DeleteManualOrder(service ordering.ManualOrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Id do pedido não informado", nil)
			return
		}

		if err := service.DeleteOrder(r.Context(), userID, id); err != nil {
			writeOrderError(w, r, err, "manual-orders: erro ao remover pedido")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeOrderError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var validationErr *ordering.ValidationError
	switch {
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Pedido inválido", validationErr.Fields)
	case errors.Is(err, ordering.ErrInvalidManualOrder):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, ordering.ErrManualOrderNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Pedido não encontrado", nil)
	case errors.Is(err, ordering.ErrStorageUnavailable):
		log.ForContext(r.Context()).WithError(err).Error(msg)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Armazenamento de pedidos indisponível", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error(msg)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar pedido", nil)
	}
}
