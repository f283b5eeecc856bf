package aggregating

import (
	"time"

	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/VinnieVedi1/revenue-tracker-api/pkg/utils"
)

// Tamanho das sub-janelas comparadas pelo cálculo de crescimento. Para
// janelas menores que 3 dias as sub-janelas se sobrepõem de propósito
// (windowDays=2 compara os mesmos 2 valores), comportamento observável que é
// mantido, não "corrigido".
const growthSubWindow = 3

// ComputeDailyTotal soma os valores dos registros com occurred_at dentro do
// intervalo semiaberto [início do dia, início do dia seguinte) em UTC, após
// aplicar o filtro. Função pura: zero quando nada casa, sem efeitos.
func ComputeDailyTotal(records []*domain.RevenueRecord, date time.Time, filter *domain.RevenueFilter) float64 {
	dayStart, nextDayStart := utils.DayIntervalUTC(date)

	total := 0.0
	for _, record := range records {
		if !filter.Matches(record) {
			continue
		}

		occurred := record.OccurredAt.UTC()
		if occurred.Before(dayStart) || !occurred.Before(nextDayStart) {
			continue
		}

		total += record.Amount
	}

	return total
}

// ComputeTrend calcula as estatísticas de tendência sobre os windowDays dias
// consecutivos terminando em endDate (inclusive). Determinística: entradas
// idênticas produzem saída bit a bit idêntica.
func ComputeTrend(records []*domain.RevenueRecord, windowDays int, endDate time.Time, filter *domain.RevenueFilter) (*domain.TrendReport, error) {
	if windowDays < 2 {
		return nil, domain.ErrInvalidWindow
	}

	end := utils.DayStartUTC(endDate)

	days := make([]domain.DailyTotal, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		date := end.AddDate(0, 0, -i)
		days = append(days, domain.DailyTotal{
			Date:  date,
			Total: ComputeDailyTotal(records, date, filter),
		})
	}

	sub := growthSubWindow
	if windowDays < sub {
		sub = windowDays
	}

	earlierAvg := meanOf(days[:sub])
	recentAvg := meanOf(days[len(days)-sub:])

	// earlierAvg zerado define crescimento como 0 em vez de propagar
	// divisão por zero
	growthRate := 0.0
	if earlierAvg > 0 {
		growthRate = (recentAvg - earlierAvg) / earlierAvg * 100
	}

	direction := domain.TrendStable
	if growthRate > domain.TrendUpThreshold {
		direction = domain.TrendUp
	} else if growthRate < domain.TrendDownThreshold {
		direction = domain.TrendDown
	}

	best := days[0].Total
	worst := days[0].Total
	for _, day := range days[1:] {
		if day.Total > best {
			best = day.Total
		}
		if day.Total < worst {
			worst = day.Total
		}
	}

	return &domain.TrendReport{
		WindowDays: windowDays,
		EndDate:    end,
		Days:       days,
		Average:    meanOf(days),
		Best:       best,
		Worst:      worst,
		GrowthRate: growthRate,
		Direction:  direction,
	}, nil
}

func meanOf(days []domain.DailyTotal) float64 {
	if len(days) == 0 {
		return 0
	}

	sum := 0.0
	for _, day := range days {
		sum += day.Total
	}

	return sum / float64(len(days))
}
