package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/months",
			Method:  http.MethodGet,
			Handler: GetAvailableMonths(service),
		},
	}
}

func ManualOrders(service ordering.ManualOrderService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/manual-orders",
			Method:  http.MethodGet,
			Handler: ListManualOrders(service),
		},
		{
			Path:    "/v1/manual-orders",
			Method:  http.MethodPost,
			Handler: CreateManualOrder(service),
		},
		{
			Path:    "/v1/manual-orders/:id",
			Method:  http.MethodDelete,
			Handler: DeleteManualOrder(service),
		},
	}
}

func Targets(service targeting.Targeter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/targets",
			Method:  http.MethodGet,
			Handler: GetTargets(service),
		},
		{
			Path:    "/v1/targets",
			Method:  http.MethodPut,
			Handler: SaveTargets(service),
		},
		{
			Path:    "/v1/targets/distribute",
			Method:  http.MethodPost,
			Handler: DistributeTargets(service),
		},
		{
			Path:    "/v1/targets/summary",
			Method:  http.MethodGet,
			Handler: GetTargetSummary(service),
		},
	}
}

func Formulas() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/formulas/evaluate",
			Method:  http.MethodPost,
			Handler: EvaluateFormula(),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}
