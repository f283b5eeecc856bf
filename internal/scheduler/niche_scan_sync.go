package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/scanning"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// NicheScanSyncConfig representa a configuração do agendador de varredura de
// nichos
type NicheScanSyncConfig struct {
	CronSchedule string
	MinScore     float64
	SyncEnabled  bool
}

// NicheScanSyncService gerencia o agendamento da varredura periódica de
// oportunidades de nicho
type NicheScanSyncService struct {
	scheduler           *gocron.Scheduler
	config              NicheScanSyncConfig
	scanner             scanning.Scanner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewNicheScanSyncService cria uma nova instância do serviço de varredura de
// nichos
func NewNicheScanSyncService(
	scanner scanning.Scanner,
	appConfig *config.Config,
) *NicheScanSyncService {
	syncConfig := NicheScanSyncConfig{
		CronSchedule: appConfig.NicheScan.CronSchedule,
		MinScore:     appConfig.NicheScan.MinScore,
		SyncEnabled:  appConfig.NicheScan.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"min_score":     syncConfig.MinScore,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de varredura de nichos carregada")

	return &NicheScanSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		scanner:     scanner,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *NicheScanSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Varredura de nichos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de varredura de nichos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runScan(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de nichos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de varredura de nichos")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *NicheScanSyncService) runScan(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de nichos já em andamento, ignorando")
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

	opportunities, err := s.scanner.Scan(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro durante a varredura de nichos")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":      duration.String(),
		"opportunities": len(opportunities),
	}).Info("Varredura de nichos concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma varredura de nichos
func (s *NicheScanSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de nichos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de nichos")
	go s.runScan(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *NicheScanSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"min_score":              s.config.MinScore,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
