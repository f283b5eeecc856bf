package collecting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	repomocks "github.com/VinnieVedi1/revenue-tracker-api/infrastructure/repository/mocks"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/collecting/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		RevenueSync: config.RevenueSync{
			CronSchedule:         "10 * * * *",
			LookbackHours:        24,
			SourceTimeoutSeconds: 5,
			MaxConcurrentJobs:    3,
			Enabled:              true,
		},
	}
}

func paidTransaction(externalID string, amountMinor int64, occurredAt time.Time) domain.RawTransaction {
	return domain.RawTransaction{
		ExternalID:  externalID,
		AmountMinor: amountMinor,
		OccurredAt:  occurredAt,
		Paid:        true,
	}
}

func TestService_RunCycle_FalhaDeUmaOrigemNaoContaminaAsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	healthy := mocks.NewMockSourceAdapter(ctrl)
	broken := mocks.NewMockSourceAdapter(ctrl)
	ingester := mocks.NewMockIngester(ctrl)
	watermarkRepo := repomocks.NewMockWatermarkRepository(ctrl)

	healthy.EXPECT().Name().Return("stripe").AnyTimes()
	broken.EXPECT().Name().Return("gumroad").AnyTimes()

	occurredAt := time.Now().UTC().Add(-time.Hour)

	watermarkRepo.EXPECT().GetBySource("stripe").Return(nil, nil)
	watermarkRepo.EXPECT().GetBySource("gumroad").Return(nil, nil)

	healthy.EXPECT().
		FetchTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.RawTransaction{
			paidTransaction("ch_1", 4990, occurredAt),
			paidTransaction("ch_2", 1000, occurredAt.Add(time.Minute)),
		}, nil)

	broken.EXPECT().
		FetchTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("api returned status 503"))

	ingester.EXPECT().Ingest(gomock.Any()).Return("id-1", nil)
	ingester.EXPECT().Ingest(gomock.Any()).Return("id-2", nil)

	watermarkRepo.EXPECT().SaveOrUpdate("stripe", occurredAt.Add(time.Minute)).Return(nil)

	service := NewService([]SourceAdapter{healthy, broken}, ingester, watermarkRepo, testConfig())

	summary := service.RunCycle(context.Background())
	require.NotNil(t, summary)

	stripeResult := summary.Sources["stripe"]
	require.NotNil(t, stripeResult)
	assert.False(t, stripeResult.FailedZero)
	assert.Equal(t, 2, stripeResult.Fetched)
	assert.Equal(t, 2, stripeResult.Ingested)
	assert.InDelta(t, 59.90, stripeResult.Total, 1e-9)

	gumroadResult := summary.Sources["gumroad"]
	require.NotNil(t, gumroadResult)
	assert.True(t, gumroadResult.FailedZero)
	assert.Zero(t, gumroadResult.Ingested)
	assert.Zero(t, gumroadResult.Total)
	assert.Contains(t, gumroadResult.Error, "gumroad")

	// A origem com falha contribui com zero, mas o ciclo soma as saudáveis
	assert.InDelta(t, 59.90, summary.Total, 1e-9)
	assert.Equal(t, 0, summary.ConsecutiveFailures["stripe"])
	assert.Equal(t, 1, summary.ConsecutiveFailures["gumroad"])
}

func TestService_RunCycle_FalhasConsecutivasAcumulamEResetam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSourceAdapter(ctrl)
	ingester := mocks.NewMockIngester(ctrl)
	watermarkRepo := repomocks.NewMockWatermarkRepository(ctrl)

	source.EXPECT().Name().Return("stripe").AnyTimes()
	watermarkRepo.EXPECT().GetBySource("stripe").Return(nil, nil).Times(3)

	gomock.InOrder(
		source.EXPECT().
			FetchTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout")),
		source.EXPECT().
			FetchTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout")),
		source.EXPECT().
			FetchTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]domain.RawTransaction{}, nil),
	)

	service := NewService([]SourceAdapter{source}, ingester, watermarkRepo, testConfig())

	first := service.RunCycle(context.Background())
	assert.Equal(t, 1, first.ConsecutiveFailures["stripe"])

	second := service.RunCycle(context.Background())
	assert.Equal(t, 2, second.ConsecutiveFailures["stripe"])

	// Um ciclo bem-sucedido zera o contador
	third := service.RunCycle(context.Background())
	assert.Equal(t, 0, third.ConsecutiveFailures["stripe"])
	assert.Equal(t, map[string]int{"stripe": 0}, service.ConsecutiveFailures())
}

func TestService_RunCycle_DuplicatasSaoNoOpIdempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSourceAdapter(ctrl)
	ingester := mocks.NewMockIngester(ctrl)
	watermarkRepo := repomocks.NewMockWatermarkRepository(ctrl)

	source.EXPECT().Name().Return("stripe").AnyTimes()
	watermarkRepo.EXPECT().GetBySource("stripe").Return(nil, nil)

	occurredAt := time.Now().UTC().Add(-2 * time.Hour)

	source.EXPECT().
		FetchTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.RawTransaction{
			paidTransaction("ch_1", 4990, occurredAt),
			paidTransaction("ch_1", 4990, occurredAt),
		}, nil)

	gomock.InOrder(
		ingester.EXPECT().Ingest(gomock.Any()).Return("id-1", nil),
		ingester.EXPECT().Ingest(gomock.Any()).
			Return("", fmt.Errorf("transação ch_1 da origem stripe: %w", domain.ErrDuplicateTransaction)),
	)

	watermarkRepo.EXPECT().SaveOrUpdate("stripe", occurredAt).Return(nil)

	service := NewService([]SourceAdapter{source}, ingester, watermarkRepo, testConfig())

	summary := service.RunCycle(context.Background())
	result := summary.Sources["stripe"]

	assert.Equal(t, 1, result.Ingested)
	assert.Equal(t, 1, result.Duplicates)
	assert.Zero(t, result.Rejected)
	assert.False(t, result.FailedZero)
	// A reentrega não soma duas vezes
	assert.InDelta(t, 49.90, result.Total, 1e-9)
}

func TestService_RunCycle_IgnoraNaoPagasEEstornadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSourceAdapter(ctrl)
	ingester := mocks.NewMockIngester(ctrl)
	watermarkRepo := repomocks.NewMockWatermarkRepository(ctrl)

	source.EXPECT().Name().Return("gumroad").AnyTimes()
	watermarkRepo.EXPECT().GetBySource("gumroad").Return(nil, nil)

	occurredAt := time.Now().UTC().Add(-time.Hour)

	pending := paidTransaction("sale_1", 1500, occurredAt)
	pending.Paid = false

	refunded := paidTransaction("sale_2", 2500, occurredAt)
	refunded.Refunded = true

	source.EXPECT().
		FetchTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.RawTransaction{
			pending,
			refunded,
			paidTransaction("sale_3", 990, occurredAt),
		}, nil)

	ingester.EXPECT().Ingest(gomock.Any()).Return("id-3", nil)
	watermarkRepo.EXPECT().SaveOrUpdate("gumroad", occurredAt).Return(nil)

	service := NewService([]SourceAdapter{source}, ingester, watermarkRepo, testConfig())

	summary := service.RunCycle(context.Background())
	result := summary.Sources["gumroad"]

	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 1, result.Ingested)
	assert.InDelta(t, 9.90, result.Total, 1e-9)
}

func TestService_RunCycle_RejeicaoNaoAvancaMarcaDagua(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSourceAdapter(ctrl)
	ingester := mocks.NewMockIngester(ctrl)
	watermarkRepo := repomocks.NewMockWatermarkRepository(ctrl)

	source.EXPECT().Name().Return("stripe").AnyTimes()
	watermarkRepo.EXPECT().GetBySource("stripe").Return(nil, nil)

	source.EXPECT().
		FetchTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.RawTransaction{
			paidTransaction("ch_bad", 100, time.Now().UTC().Add(-time.Minute)),
		}, nil)

	ingester.EXPECT().Ingest(gomock.Any()).Return("", domain.ErrInvalidAmount)

	// Nenhum SaveOrUpdate: o registro rejeitado não avança a marca d'água

	service := NewService([]SourceAdapter{source}, ingester, watermarkRepo, testConfig())

	summary := service.RunCycle(context.Background())
	result := summary.Sources["stripe"]

	assert.Equal(t, 1, result.Rejected)
	assert.Zero(t, result.Ingested)
	assert.Zero(t, result.Total)
	assert.False(t, result.FailedZero)
}

func TestService_RunCycle_MarcaDaguaDefineInicioDaJanela(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSourceAdapter(ctrl)
	ingester := mocks.NewMockIngester(ctrl)
	watermarkRepo := repomocks.NewMockWatermarkRepository(ctrl)

	source.EXPECT().Name().Return("stripe").AnyTimes()

	lastSeen := time.Now().UTC().Add(-30 * time.Minute)
	watermarkRepo.EXPECT().GetBySource("stripe").Return(&domain.SourceWatermark{
		Source:   "stripe",
		LastSeen: lastSeen,
	}, nil)

	source.EXPECT().
		FetchTransactions(gomock.Any(), lastSeen, gomock.Any()).
		Return([]domain.RawTransaction{}, nil)

	service := NewService([]SourceAdapter{source}, ingester, watermarkRepo, testConfig())

	summary := service.RunCycle(context.Background())
	assert.False(t, summary.Sources["stripe"].FailedZero)
}

func TestNewSourceError_PreservaOSentinela(t *testing.T) {
	err := NewSourceError("stripe", errors.New("connection refused"))

	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "stripe")
	assert.Contains(t, err.Error(), "connection refused")
}
