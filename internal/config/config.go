package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Stripe      Stripe      `mapstructure:",squash"`
	Gumroad     Gumroad     `mapstructure:",squash"`
	Scoring     Scoring     `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	RevenueSync RevenueSync `mapstructure:",squash"`
	NicheScan   NicheScan   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Stripe struct {
	URL       string `mapstructure:"stripe_url"`
	SecretKey string `mapstructure:"stripe_secret_key"`
}

type Gumroad struct {
	URL         string `mapstructure:"gumroad_url"`
	AccessToken string `mapstructure:"gumroad_access_token"`
}

// Scoring configura o adaptador de pontuação de nichos (API compatível com
// chat completions)
type Scoring struct {
	URL    string `mapstructure:"scoring_url"`
	APIKey string `mapstructure:"scoring_api_key"`
	Model  string `mapstructure:"scoring_model"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type RevenueSync struct {
	CronSchedule         string `mapstructure:"revenue_sync_cron"`
	LookbackHours        int    `mapstructure:"revenue_sync_lookback_hours"`
	SourceTimeoutSeconds int    `mapstructure:"revenue_sync_source_timeout_seconds"`
	MaxConcurrentJobs    int    `mapstructure:"revenue_sync_max_concurrent_jobs"`
	Enabled              bool   `mapstructure:"revenue_sync_enabled"`
}

type NicheScan struct {
	CronSchedule string  `mapstructure:"niche_scan_cron"`
	MinScore     float64 `mapstructure:"niche_scan_min_score"`
	Enabled      bool    `mapstructure:"niche_scan_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/revenue")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STRIPE_URL", "https://api.stripe.com/v1")
	viper.SetDefault("STRIPE_SECRET_KEY", "")

	viper.SetDefault("GUMROAD_URL", "https://api.gumroad.com/v2")
	viper.SetDefault("GUMROAD_ACCESS_TOKEN", "")

	viper.SetDefault("SCORING_URL", "https://api.openai.com/v1")
	viper.SetDefault("SCORING_API_KEY", "")
	viper.SetDefault("SCORING_MODEL", "gpt-4o-mini")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Coleta de receita a cada hora, no minuto 10
	viper.SetDefault("REVENUE_SYNC_CRON", "10 * * * *")
	viper.SetDefault("REVENUE_SYNC_LOOKBACK_HOURS", 24)
	viper.SetDefault("REVENUE_SYNC_SOURCE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("REVENUE_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("REVENUE_SYNC_ENABLED", false)

	// Varredura de nichos uma vez por dia, às 6h
	viper.SetDefault("NICHE_SCAN_CRON", "0 6 * * *")
	viper.SetDefault("NICHE_SCAN_MIN_SCORE", 70)
	viper.SetDefault("NICHE_SCAN_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
