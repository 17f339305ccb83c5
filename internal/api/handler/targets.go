package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// GetTargets devolve a configuração de metas do usuário
func GetTargets(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		targets, err := service.Load(r.Context(), userID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("targets: erro ao carregar metas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar metas", nil)
			return
		}

		respond(w, r, http.StatusOK, targets, "targets")
	})
}

// SaveTargets grava a configuração de metas; com entrada anual as metas mensais são regeradas
func SaveTargets(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var targets domain.EnhancedTargets
		if err := utils.DecodeJSON(r, &targets); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		saved, err := service.Save(r.Context(), userID, &targets)
		if err != nil {
			if isTargetValidationError(err) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("targets: erro ao gravar metas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar metas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"input_method": saved.InputMethod,
			"global":       saved.GlobalTargets,
		}).Info("targets: metas gravadas")

		respond(w, r, http.StatusOK, saved, "targets")
	})
}

// DistributeTargets pré-visualiza a divisão da meta anual em meses
func DistributeTargets(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.DistributeRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if req.Sales < 0 || req.GP < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, targeting.ErrNegativeTarget.Error(), nil)
			return
		}

		switch req.Distribution {
		case "":
			req.Distribution = domain.DistributionEqual
		case domain.DistributionEqual, domain.DistributionWeighted, domain.DistributionCustom:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, targeting.ErrInvalidDistribution.Error(), nil)
			return
		}

		respond(w, r, http.StatusOK, service.DistributePreview(req), "targets-distribute")
	})
}

// GetTargetSummary devolve as metas acumuladas no ano e por trimestre
func GetTargetSummary(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		month, err := utils.ParseMonthParam(query.Get("month"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		if month < 0 {
			month = int(time.Now().Month()) - 1
		}

		summary, err := service.Summary(r.Context(), userID, query.Get("business_unit"), month)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("targets-summary: erro ao resumir metas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar metas", nil)
			return
		}

		respond(w, r, http.StatusOK, summary, "targets-summary")
	})
}

func isTargetValidationError(err error) bool {
	return errors.Is(err, targeting.ErrInvalidInputMethod) ||
		errors.Is(err, targeting.ErrInvalidRollover) ||
		errors.Is(err, targeting.ErrInvalidDistribution) ||
		errors.Is(err, targeting.ErrNegativeTarget)
}
