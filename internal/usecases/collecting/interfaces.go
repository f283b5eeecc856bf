package collecting

import (
	"context"
	"time"

	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
)

// SourceAdapter é o contrato de uma origem externa de receita. FetchTransactions
// deve respeitar o contexto: a coleta limita cada origem com timeout e trata
// o estouro como falha da origem, nunca como travamento do ciclo.
type SourceAdapter interface {
	Name() string
	FetchTransactions(ctx context.Context, since, until time.Time) ([]domain.RawTransaction, error)
}

// Ingester é o subconjunto do agregador que a coleta usa
type Ingester interface {
	Ingest(record *domain.RevenueRecord) (string, error)
}
