package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/collecting"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// RevenueCollectionSyncConfig representa a configuração do agendador de
// coleta de receita
type RevenueCollectionSyncConfig struct {
	CronSchedule         string
	LookbackHours        int
	SourceTimeoutSeconds int
	MaxConcurrentJobs    int
	SyncEnabled          bool
}

// RevenueCollectionSyncService gerencia o agendamento dos ciclos de coleta
// de receita das origens externas
type RevenueCollectionSyncService struct {
	scheduler           *gocron.Scheduler
	config              RevenueCollectionSyncConfig
	collector           collecting.Collector
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewRevenueCollectionSyncService cria uma nova instância do serviço de
// sincronização de coleta de receita
func NewRevenueCollectionSyncService(
	collector collecting.Collector,
	appConfig *config.Config,
) *RevenueCollectionSyncService {
	syncConfig := RevenueCollectionSyncConfig{
		CronSchedule:         appConfig.RevenueSync.CronSchedule,
		LookbackHours:        appConfig.RevenueSync.LookbackHours,
		SourceTimeoutSeconds: appConfig.RevenueSync.SourceTimeoutSeconds,
		MaxConcurrentJobs:    appConfig.RevenueSync.MaxConcurrentJobs,
		SyncEnabled:          appConfig.RevenueSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":          syncConfig.CronSchedule,
		"lookback_hours":         syncConfig.LookbackHours,
		"source_timeout_seconds": syncConfig.SourceTimeoutSeconds,
		"max_concurrent_jobs":    syncConfig.MaxConcurrentJobs,
		"sync_enabled":           syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de coleta de receita carregada")

	return &RevenueCollectionSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		collector:   collector,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *RevenueCollectionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Coleta de receita desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de coleta de receita")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCollectionCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta de receita: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de coleta de receita")
		s.scheduler.Stop()
	}()

	return nil
}

// runCollectionCycle executa um ciclo de coleta, garantindo que apenas um
// rode por vez
func (s *RevenueCollectionSyncService) runCollectionCycle(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de coleta de receita já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	summary := s.collector.RunCycle(ctx)

	// Falha consecutiva por origem vai para o log como alerta de operador
	for source, failures := range summary.ConsecutiveFailures {
		if failures > 0 {
			logrus.WithFields(logrus.Fields{
				"source":               source,
				"consecutive_failures": failures,
			}).Warn("Origem de receita com falhas consecutivas")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"total":    summary.Total,
	}).Info("Ciclo de coleta de receita concluído")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente um ciclo de coleta
func (s *RevenueCollectionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de coleta de receita já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando ciclo manual de coleta de receita")
	go s.runCollectionCycle(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *RevenueCollectionSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_hours":    s.config.LookbackHours,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_source_timeout_s":  s.config.SourceTimeoutSeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"consecutive_failures":   s.collector.ConsecutiveFailures(),
	}

	if summary := s.collector.LastSummary(); summary != nil {
		status["last_cycle"] = summary
	}

	return status
}

// LastSummary expõe o resumo do último ciclo para a API
func (s *RevenueCollectionSyncService) LastSummary() *domain.CycleSummary {
	return s.collector.LastSummary()
}
