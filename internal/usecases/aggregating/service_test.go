package aggregating

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/repository/mocks"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validRecord() *domain.RevenueRecord {
	return &domain.RevenueRecord{
		OccurredAt:            time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		Amount:                49.90,
		Source:                "stripe",
		EntityID:              "prod-1",
		ExternalTransactionID: "ch_123",
	}
}

func TestService_Ingest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRevenueRecordRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("registro válido é normalizado e gravado", func(t *testing.T) {
		record := validRecord()

		mockRepo.EXPECT().
			Insert(gomock.Any()).
			DoAndReturn(func(r *domain.RevenueRecord) (string, error) {
				assert.NotEmpty(t, r.ID)
				assert.Equal(t, time.UTC, r.OccurredAt.Location())
				return r.ID, nil
			})

		id, err := service.Ingest(record)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("entidade vazia recebe o sentinela unknown", func(t *testing.T) {
		record := validRecord()
		record.EntityID = ""

		mockRepo.EXPECT().
			Insert(gomock.Any()).
			DoAndReturn(func(r *domain.RevenueRecord) (string, error) {
				assert.Equal(t, domain.EntityUnknown, r.EntityID)
				return r.ID, nil
			})

		_, err := service.Ingest(record)
		require.NoError(t, err)
	})

	t.Run("duplicata do repositório é propagada sem regravar", func(t *testing.T) {
		record := validRecord()

		mockRepo.EXPECT().
			Insert(gomock.Any()).
			Return("", fmt.Errorf("transação ch_123 da origem stripe: %w", domain.ErrDuplicateTransaction))

		id, err := service.Ingest(record)
		assert.Empty(t, id)
		assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)
	})
}

func TestService_Ingest_ValoresInvalidos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao repositório é esperada: a validação barra antes
	mockRepo := mocks.NewMockRevenueRecordRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name    string
		mutate  func(r *domain.RevenueRecord)
		wantErr error
	}{
		{
			name:    "valor negativo",
			mutate:  func(r *domain.RevenueRecord) { r.Amount = -0.01 },
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "valor NaN",
			mutate:  func(r *domain.RevenueRecord) { r.Amount = math.NaN() },
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "valor infinito",
			mutate:  func(r *domain.RevenueRecord) { r.Amount = math.Inf(1) },
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "origem ausente",
			mutate:  func(r *domain.RevenueRecord) { r.Source = "" },
			wantErr: domain.ErrMissingRequiredField,
		},
		{
			name:    "identificador externo ausente",
			mutate:  func(r *domain.RevenueRecord) { r.ExternalTransactionID = "" },
			wantErr: domain.ErrMissingRequiredField,
		},
		{
			name:    "data de ocorrência ausente",
			mutate:  func(r *domain.RevenueRecord) { r.OccurredAt = time.Time{} },
			wantErr: domain.ErrMissingRequiredField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)

			id, err := service.Ingest(record)
			assert.Empty(t, id)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// uniqueRecordStore simula a constraint de unicidade do banco em memória
type uniqueRecordStore struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (s *uniqueRecordStore) Insert(record *domain.RevenueRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := record.Source + "|" + record.ExternalTransactionID
	if s.seen[key] {
		return "", fmt.Errorf("transação %s da origem %s: %w",
			record.ExternalTransactionID, record.Source, domain.ErrDuplicateTransaction)
	}
	s.seen[key] = true
	return record.ID, nil
}

func (s *uniqueRecordStore) GetByDateRange(startDate, endDate time.Time, filter *domain.RevenueFilter) ([]*domain.RevenueRecord, error) {
	return nil, nil
}

func (s *uniqueRecordStore) Delete(id string) error { return nil }

func (s *uniqueRecordStore) CountBySource(source string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.seen)), nil
}

func TestService_Ingest_ConcorrenciaMesmaTransacao(t *testing.T) {
	store := &uniqueRecordStore{seen: make(map[string]bool)}
	service := NewService(store)

	const ingesters = 20

	var wg sync.WaitGroup
	results := make([]error, ingesters)

	for i := 0; i < ingesters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, results[idx] = service.Ingest(validRecord())
		}(i)
	}
	wg.Wait()

	successes := 0
	duplicates := 0
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, domain.ErrDuplicateTransaction):
			duplicates++
		}
	}

	// Exatamente um insersor vence; os demais veem a duplicata
	assert.Equal(t, 1, successes)
	assert.Equal(t, ingesters-1, duplicates)

	count, err := store.CountBySource("stripe")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestService_DailyTotal_ConsultaIntervaloSemiaberto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRevenueRecordRepository(ctrl)
	service := NewService(mockRepo)

	date := time.Date(2024, 3, 15, 18, 45, 0, 0, time.UTC)
	dayStart := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		GetByDateRange(dayStart, dayStart.AddDate(0, 0, 1), nil).
		Return([]*domain.RevenueRecord{
			{OccurredAt: dayStart.Add(2 * time.Hour), Amount: 30.0, Source: "stripe"},
			{OccurredAt: dayStart.Add(20 * time.Hour), Amount: 12.5, Source: "gumroad"},
		}, nil)

	total, err := service.DailyTotal(date, nil)
	require.NoError(t, err)
	assert.Equal(t, 42.5, total)
}

func TestService_Trend_JanelaInvalidaNaoConsultaRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRevenueRecordRepository(ctrl)
	service := NewService(mockRepo)

	report, err := service.Trend(1, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), nil)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}
