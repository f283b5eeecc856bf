package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/database/postgres"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/gumroad"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/gumroad/gumroadclient"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/scoring"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/scoring/scoringclient"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/stripe"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/stripe/stripeclient"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/repository"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/api"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/scheduler"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/aggregating"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/authenticating"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/collecting"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/usecases/scanning"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	recordRepo := repository.NewRevenueRecordRepository(pgConn)
	watermarkRepo := repository.NewWatermarkRepository(pgConn)
	nicheRepo := repository.NewNicheOpportunityRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	stripeClient := stripeclient.NewClient(cfg)
	stripeIntegrator := stripe.New(cfg, stripeClient)

	gumroadClient := gumroadclient.NewClient(cfg)
	gumroadIntegrator := gumroad.New(cfg, gumroadClient)

	scoringClient := scoringclient.NewClient(cfg)
	scoringIntegrator := scoring.New(cfg, scoringClient)

	aggregatorService := aggregating.NewService(recordRepo)

	// As origens de receita entram aqui; uma origem nova é só mais um adaptador
	sources := []collecting.SourceAdapter{
		stripeIntegrator,
		gumroadIntegrator,
	}

	collectorService := collecting.NewService(sources, aggregatorService, watermarkRepo, cfg)

	scannerService := scanning.NewService(scoringIntegrator, nicheRepo, cfg)

	// Inicializa os agendadores de sincronização separados
	revenueSyncService := scheduler.NewRevenueCollectionSyncService(collectorService, cfg)
	nicheScanSyncService := scheduler.NewNicheScanSyncService(scannerService, cfg)

	// Inicia os agendadores em background
	if err := revenueSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de coleta de receita")
	} else {
		logrus.Info("Agendador de coleta de receita iniciado com sucesso")
	}

	if err := nicheScanSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura de nichos")
	} else {
		logrus.Info("Agendador de varredura de nichos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		aggregatorService,
		scannerService,
		authenticator,
		revenueSyncService,
		nicheScanSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
