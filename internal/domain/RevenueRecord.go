package domain

import (
	"errors"
	"math"
	"time"
)

// EntityUnknown é o sentinela usado quando a receita não pode ser atribuída
// a um produto específico
const EntityUnknown = "unknown"

// Erros de domínio da ingestão e da agregação de receita
var (
	// ErrInvalidAmount indica valor negativo ou não finito na ingestão
	ErrInvalidAmount = errors.New("invalid amount: must be non-negative and finite")

	// ErrDuplicateTransaction indica que (source, external_transaction_id)
	// já foi ingerido. Reentrega de webhook e janelas de polling sobrepostas
	// caem aqui; quem chama trata como sucesso idempotente.
	ErrDuplicateTransaction = errors.New("duplicate transaction for source")

	// ErrInvalidWindow indica janela de tendência menor que 2 dias
	ErrInvalidWindow = errors.New("invalid trend window: requires at least 2 days")

	// ErrMissingRequiredField indica campos obrigatórios ausentes no registro
	ErrMissingRequiredField = errors.New("missing required field on revenue record")
)

// RevenueRecord representa uma transação de receita confirmada observada em
// uma origem externa. Registros são imutáveis após a ingestão: estorno é um
// novo registro de ajuste negativo ou uma exclusão, nunca uma alteração.
type RevenueRecord struct {
	ID                    string    `json:"id"`
	OccurredAt            time.Time `json:"occurred_at"`
	Amount                float64   `json:"amount"`
	Source                string    `json:"source"`
	EntityID              string    `json:"entity_id"`
	ExternalTransactionID string    `json:"external_transaction_id"`
	BillingEmail          string    `json:"billing_email,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

// Validate aplica as regras de fronteira da ingestão
func (r *RevenueRecord) Validate() error {
	if r.Amount < 0 || math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) {
		return ErrInvalidAmount
	}

	if r.OccurredAt.IsZero() || r.Source == "" || r.ExternalTransactionID == "" {
		return ErrMissingRequiredField
	}

	return nil
}

// Normalize preenche o sentinela de entidade e converte o horário para UTC
func (r *RevenueRecord) Normalize() {
	if r.EntityID == "" {
		r.EntityID = EntityUnknown
	}
	r.OccurredAt = r.OccurredAt.UTC()
}

// RevenueFilter restringe agregações por produto e/ou origem. Campos nulos
// não filtram.
type RevenueFilter struct {
	EntityID *string
	Source   *string
}

// Matches verifica se o registro satisfaz o filtro
func (f *RevenueFilter) Matches(r *RevenueRecord) bool {
	if f == nil {
		return true
	}

	if f.EntityID != nil && r.EntityID != *f.EntityID {
		return false
	}

	if f.Source != nil && r.Source != *f.Source {
		return false
	}

	return true
}
