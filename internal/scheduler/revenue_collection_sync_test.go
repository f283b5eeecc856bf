package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/collecting/mocks"
	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func syncConfig(enabled bool) *config.Config {
	return &config.Config{
		RevenueSync: config.RevenueSync{
			CronSchedule:         "10 * * * *",
			LookbackHours:        24,
			SourceTimeoutSeconds: 30,
			MaxConcurrentJobs:    3,
			Enabled:              enabled,
		},
	}
}

func TestRevenueCollectionSyncService_runCollectionCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCollector := mocks.NewMockCollector(ctrl)

	summary := &domain.CycleSummary{
		StartedAt:   time.Now().UTC(),
		CompletedAt: time.Now().UTC(),
		Total:       123.45,
		Sources:     map[string]*domain.SourceCycleResult{},
		ConsecutiveFailures: map[string]int{
			"stripe":  0,
			"gumroad": 2,
		},
	}

	mockCollector.EXPECT().RunCycle(gomock.Any()).Return(summary)

	service := NewRevenueCollectionSyncService(mockCollector, syncConfig(true))
	service.runCollectionCycle(context.Background())

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestRevenueCollectionSyncService_CicloEmAndamentoNaoDispara(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada a RunCycle é esperada com o ciclo já em andamento
	mockCollector := mocks.NewMockCollector(ctrl)

	service := &RevenueCollectionSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      RevenueCollectionSyncConfig{SyncEnabled: true},
		collector:   mockCollector,
		syncRunning: true,
	}

	service.runCollectionCycle(context.Background())
}

func TestRevenueCollectionSyncService_StartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCollector := mocks.NewMockCollector(ctrl)

	service := NewRevenueCollectionSyncService(mockCollector, syncConfig(false))

	// Desabilitado: nada é agendado e nenhum ciclo roda
	err := service.Start(context.Background())
	require.NoError(t, err)
}

func TestRevenueCollectionSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCollector := mocks.NewMockCollector(ctrl)

	lastCycle := &domain.CycleSummary{Total: 99.9}
	mockCollector.EXPECT().ConsecutiveFailures().Return(map[string]int{"stripe": 1})
	mockCollector.EXPECT().LastSummary().Return(lastCycle)

	service := NewRevenueCollectionSyncService(mockCollector, syncConfig(true))

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "10 * * * *", status["sync_cron"])
	assert.Equal(t, map[string]int{"stripe": 1}, status["consecutive_failures"])
	assert.Equal(t, lastCycle, status["last_cycle"])
}

func TestRevenueCollectionSyncService_LastSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCollector := mocks.NewMockCollector(ctrl)

	summary := &domain.CycleSummary{Total: 10}
	mockCollector.EXPECT().LastSummary().Return(summary)

	service := NewRevenueCollectionSyncService(mockCollector, syncConfig(true))

	assert.Equal(t, summary, service.LastSummary())
}
