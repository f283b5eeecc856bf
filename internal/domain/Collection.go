package domain

import "time"

// RawTransaction é a forma bruta de uma transação retornada por um adaptador
// de origem de pagamento. AmountMinor vem em unidades mínimas da moeda
// (centavos); a conversão para decimal acontece na ingestão.
type RawTransaction struct {
	ExternalID   string
	AmountMinor  int64
	OccurredAt   time.Time
	Paid         bool
	Refunded     bool
	BillingEmail string
	Metadata     map[string]string
}

// MetadataEntityKey é a chave de metadados usada pelas origens para apontar
// o produto que gerou a receita
const MetadataEntityKey = "entity_id"

// SourceWatermark guarda o instante da última transação ingerida com sucesso
// de uma origem, limitando a janela da próxima busca
type SourceWatermark struct {
	Source    string    `json:"source"`
	LastSeen  time.Time `json:"last_seen"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SourceCycleResult é a contribuição de uma origem em um ciclo de coleta.
// Quando a origem falha, Total fica em zero e FailedZero marca explicitamente
// que o zero veio de erro, distinguível de um dia sem receita.
type SourceCycleResult struct {
	Source     string  `json:"source"`
	Fetched    int     `json:"fetched"`
	Ingested   int     `json:"ingested"`
	Duplicates int     `json:"duplicates"`
	Skipped    int     `json:"skipped"`
	Rejected   int     `json:"rejected"`
	Total      float64 `json:"total"`
	FailedZero bool    `json:"failed_zero"`
	Error      string  `json:"error,omitempty"`
}

// CycleSummary resume um ciclo completo de coleta de receita
type CycleSummary struct {
	StartedAt   time.Time                     `json:"started_at"`
	CompletedAt time.Time                     `json:"completed_at"`
	Sources     map[string]*SourceCycleResult `json:"sources"`
	Total       float64                       `json:"total"`
	// ConsecutiveFailures acumula ciclos seguidos com falha por origem,
	// para alerta de operador
	ConsecutiveFailures map[string]int `json:"consecutive_failures"`
}
