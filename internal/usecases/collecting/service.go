package collecting

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/repository"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/VinnieVedi1/revenue-tracker-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Collector executa ciclos de coleta de receita sobre as origens configuradas
type Collector interface {
	RunCycle(ctx context.Context) *domain.CycleSummary
	LastSummary() *domain.CycleSummary
	ConsecutiveFailures() map[string]int
}

type Service struct {
	sources       []SourceAdapter
	ingester      Ingester
	watermarkRepo repository.WatermarkRepository

	lookback      time.Duration
	sourceTimeout time.Duration
	maxConcurrent int

	mu           sync.Mutex
	lastSummary  *domain.CycleSummary
	failureCount map[string]int
}

func NewService(
	sources []SourceAdapter,
	ingester Ingester,
	watermarkRepo repository.WatermarkRepository,
	cfg *config.Config,
) *Service {
	maxConcurrent := cfg.RevenueSync.MaxConcurrentJobs
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &Service{
		sources:       sources,
		ingester:      ingester,
		watermarkRepo: watermarkRepo,
		lookback:      time.Duration(cfg.RevenueSync.LookbackHours) * time.Hour,
		sourceTimeout: time.Duration(cfg.RevenueSync.SourceTimeoutSeconds) * time.Second,
		maxConcurrent: maxConcurrent,
		failureCount:  make(map[string]int),
	}
}

// RunCycle coleta de todas as origens e devolve o resumo do ciclo. As buscas
// rodam concorrentes sob um semáforo; a falha de uma origem é capturada no
// resultado daquela origem e nunca aborta as demais.
func (s *Service) RunCycle(ctx context.Context) *domain.CycleSummary {
	startedAt := time.Now().UTC()

	logrus.WithField("sources", len(s.sources)).Info("collecting: starting revenue collection cycle")

	semaphore := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup

	results := make([]*domain.SourceCycleResult, len(s.sources))

	for i, source := range s.sources {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(idx int, src SourceAdapter) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			results[idx] = s.collectFromSource(ctx, src)
		}(i, source)
	}

	wg.Wait()

	summary := &domain.CycleSummary{
		StartedAt:           startedAt,
		CompletedAt:         time.Now().UTC(),
		Sources:             make(map[string]*domain.SourceCycleResult, len(results)),
		ConsecutiveFailures: make(map[string]int, len(results)),
	}

	s.mu.Lock()
	for _, result := range results {
		summary.Sources[result.Source] = result
		summary.Total += result.Total

		if result.FailedZero {
			s.failureCount[result.Source]++
		} else {
			s.failureCount[result.Source] = 0
		}
		summary.ConsecutiveFailures[result.Source] = s.failureCount[result.Source]
	}
	s.lastSummary = summary
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": summary.CompletedAt.Sub(summary.StartedAt).String(),
		"total":    summary.Total,
	}).Info("collecting: revenue collection cycle completed")

	return summary
}

// collectFromSource busca e ingere as transações de uma origem. A janela
// começa na marca d'água da origem (ou em now-lookback quando não existe) e
// a busca é limitada por timeout.
func (s *Service) collectFromSource(ctx context.Context, source SourceAdapter) *domain.SourceCycleResult {
	result := &domain.SourceCycleResult{Source: source.Name()}

	until := time.Now().UTC()
	since := until.Add(-s.lookback)

	watermark, err := s.watermarkRepo.GetBySource(source.Name())
	if err != nil {
		logrus.WithError(err).WithField("source", source.Name()).
			Warn("collecting: failed to load watermark, falling back to lookback window")
	} else if watermark != nil && watermark.LastSeen.After(since) {
		since = watermark.LastSeen
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.sourceTimeout)
	defer cancel()

	transactions, err := source.FetchTransactions(fetchCtx, since, until)
	if err != nil {
		sourceErr := NewSourceError(source.Name(), err)
		result.FailedZero = true
		result.Error = sourceErr.Error()

		logrus.WithError(sourceErr).WithField("source", source.Name()).
			Error("collecting: source fetch failed, contribution recorded as zero-due-to-error")

		return result
	}

	result.Fetched = len(transactions)
	lastSeen := since

	for _, tx := range transactions {
		if !tx.Paid || tx.Refunded {
			result.Skipped++
			continue
		}

		record := toRevenueRecord(source.Name(), tx)

		_, err := s.ingester.Ingest(record)
		switch {
		case err == nil:
			result.Ingested++
			result.Total += record.Amount
		case errors.Is(err, domain.ErrDuplicateTransaction):
			// Reentrega esperada; no-op idempotente
			result.Duplicates++
		default:
			result.Rejected++
			logrus.WithError(err).WithFields(logrus.Fields{
				"source":      source.Name(),
				"external_id": tx.ExternalID,
			}).Warn("collecting: transaction rejected at ingestion")
			continue
		}

		if tx.OccurredAt.After(lastSeen) {
			lastSeen = tx.OccurredAt
		}
	}

	if lastSeen.After(since) {
		if err := s.watermarkRepo.SaveOrUpdate(source.Name(), lastSeen); err != nil {
			logrus.WithError(err).WithField("source", source.Name()).
				Error("collecting: failed to advance watermark")
		}
	}

	logrus.WithFields(logrus.Fields{
		"source":     result.Source,
		"fetched":    result.Fetched,
		"ingested":   result.Ingested,
		"duplicates": result.Duplicates,
		"skipped":    result.Skipped,
		"total":      result.Total,
	}).Info("collecting: source collection finished")

	return result
}

// LastSummary retorna o resumo do último ciclo executado, ou nil
func (s *Service) LastSummary() *domain.CycleSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSummary
}

// ConsecutiveFailures retorna, por origem, quantos ciclos seguidos falharam
func (s *Service) ConsecutiveFailures() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	failures := make(map[string]int, len(s.failureCount))
	for source, count := range s.failureCount {
		failures[source] = count
	}
	return failures
}

func toRevenueRecord(source string, tx domain.RawTransaction) *domain.RevenueRecord {
	entityID := domain.EntityUnknown
	if id, ok := tx.Metadata[domain.MetadataEntityKey]; ok && id != "" {
		entityID = id
	}

	return &domain.RevenueRecord{
		OccurredAt:            tx.OccurredAt,
		Amount:                utils.FromMinorUnits(tx.AmountMinor),
		Source:                source,
		EntityID:              entityID,
		ExternalTransactionID: tx.ExternalID,
		BillingEmail:          tx.BillingEmail,
	}
}
