package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSourceRefresh = "source-refresh"
	CronJobTypeAll           = "all"
)

// SyncTrigger é um agendador que pode ser disparado manualmente
type SyncTrigger interface {
	TriggerManualSync()
	IsRunning() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SourceRefreshSyncService SyncTrigger
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSourceRefresh, CronJobTypeAll:
			if services.SourceRefreshSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de coleta das APIs de vendas não disponível", nil)
				return
			}
			if services.SourceRefreshSyncService.IsRunning() {
				apiErrors.WriteError(w, apiErrors.ErrConflict, "Coleta das APIs de vendas já em andamento", nil)
				return
			}
			services.SourceRefreshSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: source-refresh, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		respond(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}, "cron")
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SourceRefreshSyncService != nil {
			status[CronJobTypeSourceRefresh] = services.SourceRefreshSyncService.GetStatus()
		}

		respond(w, r, http.StatusOK, status, "cron")
	})
}
