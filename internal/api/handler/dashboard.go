package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// GetDashboard devolve o snapshot conciliado do período pedido
func GetDashboard(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

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

		year, err := utils.ParseYearParam(query.Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		req := domain.DashboardRequest{
			ViewMode: domain.ViewMode(strings.ToLower(strings.TrimSpace(query.Get("view")))),
			Month:    month,
			Filters: domain.DashboardFilters{
				BusinessUnit: strings.TrimSpace(query.Get("business_unit")),
				Customer:     strings.TrimSpace(query.Get("customer")),
				Salesperson:  strings.TrimSpace(query.Get("salesperson")),
				Year:         year,
			},
		}

		logger.WithFields(log.Fields{
			"view":          req.ViewMode,
			"month":         month,
			"year":          year,
			"business_unit": req.Filters.BusinessUnit,
		}).Info("dashboard: montando snapshot")

		response, err := service.GetDashboard(r.Context(), userID, req)
		if err != nil {
			if errors.Is(err, dashboard.ErrInvalidViewMode) || errors.Is(err, dashboard.ErrInvalidMonth) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("dashboard: erro ao montar snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar dashboard", nil)
			return
		}

		logger.WithFields(log.Fields{
			"status":    response.Status,
			"month_key": response.Period.MonthKey,
		}).Info("dashboard: snapshot gerado")

		respond(w, r, http.StatusOK, response, "dashboard")
	})
}

// GetAvailableMonths lista os meses com dados nas APIs de vendas
func GetAvailableMonths(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := utils.ParseYearParam(r.URL.Query().Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		months, err := service.GetAvailableMonths(r.Context(), year)
		if err != nil {
			logger.WithError(err).Error("dashboard-months: erro ao buscar meses disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar meses disponíveis", nil)
			return
		}

		respond(w, r, http.StatusOK, months, "dashboard-months")
	})
}
