package aggregating

import (
	"fmt"
	"time"

	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/repository"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/VinnieVedi1/revenue-tracker-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Aggregator expõe a ingestão e as agregações de receita. DailyTotal e Trend
// são leituras puras sobre um snapshot dos registros e podem ser chamadas
// concorrentemente; Ingest serializa por (source, external_transaction_id)
// via constraint de unicidade do banco.
type Aggregator interface {
	Ingest(record *domain.RevenueRecord) (string, error)
	DailyTotal(date time.Time, filter *domain.RevenueFilter) (float64, error)
	Trend(windowDays int, endDate time.Time, filter *domain.RevenueFilter) (*domain.TrendReport, error)
}

type Service struct {
	recordRepo repository.RevenueRecordRepository
}

func NewService(recordRepo repository.RevenueRecordRepository) Aggregator {
	return &Service{
		recordRepo: recordRepo,
	}
}

// Ingest valida, normaliza e grava o registro, retornando o ID atribuído.
// Valor negativo ou não finito falha com domain.ErrInvalidAmount; transação
// repetida falha com domain.ErrDuplicateTransaction e nada é gravado.
func (s *Service) Ingest(record *domain.RevenueRecord) (string, error) {
	if err := record.Validate(); err != nil {
		return "", err
	}

	record.Normalize()

	if record.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return "", fmt.Errorf("erro ao gerar ID do registro: %w", err)
		}
		record.ID = id
	}

	id, err := s.recordRepo.Insert(record)
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"record_id": id,
		"source":    record.Source,
		"entity_id": record.EntityID,
		"amount":    record.Amount,
	}).Debug("aggregating: revenue record ingested")

	return id, nil
}

// DailyTotal retorna o total de receita do dia-calendário (UTC) informado
func (s *Service) DailyTotal(date time.Time, filter *domain.RevenueFilter) (float64, error) {
	dayStart, nextDayStart := utils.DayIntervalUTC(date)

	records, err := s.recordRepo.GetByDateRange(dayStart, nextDayStart, filter)
	if err != nil {
		return 0, err
	}

	return ComputeDailyTotal(records, date, filter), nil
}

// Trend retorna as estatísticas da janela de windowDays dias terminando em
// endDate
func (s *Service) Trend(windowDays int, endDate time.Time, filter *domain.RevenueFilter) (*domain.TrendReport, error) {
	if windowDays < 2 {
		return nil, domain.ErrInvalidWindow
	}

	end := utils.DayStartUTC(endDate)
	windowStart := end.AddDate(0, 0, -(windowDays - 1))

	records, err := s.recordRepo.GetByDateRange(windowStart, end.AddDate(0, 0, 1), filter)
	if err != nil {
		return nil, err
	}

	return ComputeTrend(records, windowDays, endDate, filter)
}
