package handler

import (
	"encoding/json"
	"net/http"

	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/scanning"
	"github.com/VinnieVedi1/revenue-tracker-api/pkg/apiErrors"
	"github.com/VinnieVedi1/revenue-tracker-api/pkg/log"
)

// ListNicheOpportunities retorna as oportunidades de nicho acima do limiar
// configurado, ordenadas por pontuação decrescente
func ListNicheOpportunities(service scanning.Scanner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		opportunities, err := service.ListOpportunities()
		if err != nil {
			logger.WithError(err).Error("niches: failed to list opportunities")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar oportunidades de nicho", nil)
			return
		}

		logger.WithField("count", len(opportunities)).Info("niches: opportunities listed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(opportunities); err != nil {
			logger.WithError(err).Error("niches: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
