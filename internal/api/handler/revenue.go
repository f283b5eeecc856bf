package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/aggregating"
	"github.com/VinnieVedi1/revenue-tracker-api/pkg/apiErrors"
	"github.com/VinnieVedi1/revenue-tracker-api/pkg/log"
	"github.com/VinnieVedi1/revenue-tracker-api/pkg/utils"
	"github.com/pkg/errors"
)

// IngestRecordRequest é o corpo aceito pela ingestão manual de registros
type IngestRecordRequest struct {
	OccurredAt            time.Time `json:"occurred_at"`
	Amount                float64   `json:"amount"`
	Source                string    `json:"source"`
	EntityID              string    `json:"entity_id"`
	ExternalTransactionID string    `json:"external_transaction_id"`
	BillingEmail          string    `json:"billing_email"`
}

// GetDailyTotal retorna o total de receita de um dia-calendário (UTC)
func GetDailyTotal(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  r.URL.Query().Get("date"),
				"error": err.Error(),
			}).Warn("revenue: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		day := *date
		if day.IsZero() {
			day = time.Now().UTC()
		}

		filter := filterFromQuery(r)

		total, err := service.DailyTotal(day, filter)
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  day.Format(time.DateOnly),
				"error": err.Error(),
			}).Error("revenue: failed to compute daily total")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular o total diário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(domain.DailyTotal{
			Date:  utils.DayStartUTC(day),
			Total: total,
		}); err != nil {
			logger.WithError(err).Error("revenue: failed to encode daily total response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetTrend retorna as estatísticas da janela de dias consecutivos
func GetTrend(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		windowDays, err := strconv.Atoi(r.URL.Query().Get("window_days"))
		if err != nil {
			logger.WithFields(log.Fields{
				"window_days": r.URL.Query().Get("window_days"),
				"error":       err.Error(),
			}).Warn("revenue: invalid window_days parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "window_days deve ser um inteiro", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"end_date": r.URL.Query().Get("end_date"),
				"error":    err.Error(),
			}).Warn("revenue: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		end := *endDate
		if end.IsZero() {
			end = time.Now().UTC()
		}

		filter := filterFromQuery(r)

		logger.WithFields(log.Fields{
			"window_days": windowDays,
			"end_date":    end.Format(time.DateOnly),
		}).Debug("revenue: computing trend report")

		report, err := service.Trend(windowDays, end, filter)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidWindow) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, "A janela de tendência exige no mínimo 2 dias", map[string]any{
					"window_days": windowDays,
				})
				return
			}

			logger.WithFields(log.Fields{
				"window_days": windowDays,
				"end_date":    end.Format(time.DateOnly),
				"error":       err.Error(),
			}).Error("revenue: failed to compute trend report")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular a tendência", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("revenue: failed to encode trend response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// IngestRecord insere manualmente um registro de receita já confirmado
func IngestRecord(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req IngestRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		record := &domain.RevenueRecord{
			OccurredAt:            req.OccurredAt,
			Amount:                req.Amount,
			Source:                req.Source,
			EntityID:              req.EntityID,
			ExternalTransactionID: req.ExternalTransactionID,
			BillingEmail:          req.BillingEmail,
		}

		id, err := service.Ingest(record)
		if err != nil {
			handleIngestError(w, logger, record, err)
			return
		}

		logger.WithFields(log.Fields{
			"record_id": id,
			"source":    record.Source,
		}).Info("revenue: record ingested manually")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"id": id,
		})
	})
}

func handleIngestError(w http.ResponseWriter, logger log.Logger, record *domain.RevenueRecord, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAmount, "Valor deve ser finito e não negativo", map[string]any{
			"amount": record.Amount,
		})

	case errors.Is(err, domain.ErrDuplicateTransaction):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateTransaction, "Transação já ingerida para esta origem", map[string]any{
			"source":                  record.Source,
			"external_transaction_id": record.ExternalTransactionID,
		})

	case errors.Is(err, domain.ErrMissingRequiredField):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "occurred_at, source e external_transaction_id são obrigatórios", nil)

	default:
		logger.WithFields(log.Fields{
			"source": record.Source,
			"error":  err.Error(),
		}).Error("revenue: failed to ingest record")

		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao ingerir registro", nil)
	}
}

// filterFromQuery monta o filtro opcional de agregação a partir da query string
func filterFromQuery(r *http.Request) *domain.RevenueFilter {
	var filter *domain.RevenueFilter

	if entityID := r.URL.Query().Get("entity_id"); entityID != "" {
		if filter == nil {
			filter = &domain.RevenueFilter{}
		}
		filter.EntityID = &entityID
	}

	if source := r.URL.Query().Get("source"); source != "" {
		if filter == nil {
			filter = &domain.RevenueFilter{}
		}
		filter.Source = &source
	}

	return filter
}
