package domain

import "time"

// Faixas de competição reportadas pelos sinais de mercado
const (
	CompetitionLow    = "low"
	CompetitionMedium = "medium"
	CompetitionHigh   = "high"
)

// NeutralOpportunityScore é o score usado quando o adaptador de pontuação
// falha: a política é degradar para o neutro, não propagar o erro
const NeutralOpportunityScore = 50.0

// NicheTopic é um tópico candidato com seus sinais numéricos
type NicheTopic struct {
	Topic           string `json:"topic"`
	SearchVolume    int    `json:"search_volume"`
	CompetitionTier string `json:"competition_tier"`
}

// NicheOpportunity é um tópico pontuado pelo adaptador externo.
// Score fica em [0, 100]; Fallback indica que o valor é o neutro por falha
// do adaptador.
type NicheOpportunity struct {
	ID              int64     `json:"id"`
	Topic           string    `json:"topic"`
	SearchVolume    int       `json:"search_volume"`
	CompetitionTier string    `json:"competition_tier"`
	Score           float64   `json:"score"`
	Fallback        bool      `json:"fallback"`
	ScoredAt        time.Time `json:"scored_at"`
}
