package handler

import (
	"encoding/json"
	"net/http"

	"github.com/VinnieVedi1/revenue-tracker-api/internal/scheduler"
	"github.com/VinnieVedi1/revenue-tracker-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRevenue = "revenue"
	CronJobTypeNiches  = "niches"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	RevenueCollectionSyncService *scheduler.RevenueCollectionSyncService
	NicheScanSyncService         *scheduler.NicheScanSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRevenue:
			if services.RevenueCollectionSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de coleta de receita não disponível", nil)
				return
			}
			services.RevenueCollectionSyncService.TriggerManualSync()

		case CronJobTypeNiches:
			if services.NicheScanSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de varredura de nichos não disponível", nil)
				return
			}
			services.NicheScanSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.RevenueCollectionSyncService != nil {
				services.RevenueCollectionSyncService.TriggerManualSync()
			}
			if services.NicheScanSyncService != nil {
				services.NicheScanSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: revenue, niches, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"revenue": services.RevenueCollectionSyncService.GetStatus(),
			"niches":  services.NicheScanSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}

// GetCollectionStatus retorna o resumo do último ciclo de coleta de receita
func GetCollectionStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCollectionStatus")

		if services.RevenueCollectionSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de coleta de receita não disponível", nil)
			return
		}

		summary := services.RevenueCollectionSyncService.LastSummary()
		if summary == nil {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"message": "Nenhum ciclo de coleta executado até o momento",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}
