package domain

import "time"

// Direções possíveis de uma tendência de receita
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Limiares fixos de classificação da direção, em pontos percentuais.
// Não são configuráveis por chamada.
const (
	TrendUpThreshold   = 5.0
	TrendDownThreshold = -5.0
)

// DailyTotal é o total de receita de um dia-calendário (UTC)
type DailyTotal struct {
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

// TrendReport é o resultado da análise de uma janela de dias consecutivos.
// Days vem ordenado do dia mais antigo para o mais recente.
type TrendReport struct {
	WindowDays int          `json:"window_days"`
	EndDate    time.Time    `json:"end_date"`
	Days       []DailyTotal `json:"days"`
	Average    float64      `json:"average"`
	Best       float64      `json:"best"`
	Worst      float64      `json:"worst"`
	GrowthRate float64      `json:"growth_rate"`
	Direction  string       `json:"direction"`
}
