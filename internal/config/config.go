package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	YieldAPI      YieldAPI      `mapstructure:",squash"`
	Session       Session       `mapstructure:",squash"`
	SessionVerify SessionVerify `mapstructure:",squash"`
	ReportExport  ReportExport  `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	AccessToken   AccessToken   `mapstructure:",squash"`
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

// YieldAPI aponta para o backend REST de produtividade.
// BaseURL vazio é aceito no carregamento, mas o cliente falha antes de qualquer I/O.
type YieldAPI struct {
	BaseURL string        `mapstructure:"yield_api_base_url"`
	Timeout time.Duration `mapstructure:"yield_api_timeout"`
}

// Session identifica sob qual perfil a credencial é persistida
type Session struct {
	Profile string `mapstructure:"session_profile"`
}

type SessionVerify struct {
	CronSchedule string `mapstructure:"session_verify_cron"`
	Enabled      bool   `mapstructure:"session_verify_enabled"`
}

type ReportExport struct {
	CronSchedule string   `mapstructure:"report_export_cron"`
	Enabled      bool     `mapstructure:"report_export_enabled"`
	Dir          string   `mapstructure:"report_export_dir"`
	Format       string   `mapstructure:"report_export_format"`
	Kinds        []string `mapstructure:"report_export_kinds"`
}

// AccessToken configura os tokens entregues aos clientes do BFF no login.
// Sem segredo, um aleatório é gerado a cada inicialização.
type AccessToken struct {
	Secret string        `mapstructure:"access_token_secret"`
	TTL    time.Duration `mapstructure:"access_token_ttl"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/harvest?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("YIELD_API_BASE_URL", "")
	viper.SetDefault("YIELD_API_TIMEOUT", "15s")

	viper.SetDefault("SESSION_PROFILE", "default")

	viper.SetDefault("SESSION_VERIFY_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SESSION_VERIFY_ENABLED", false)

	viper.SetDefault("REPORT_EXPORT_CRON", "0 6 * * 1") // Segundas às 6h da manhã
	viper.SetDefault("REPORT_EXPORT_ENABLED", false)
	viper.SetDefault("REPORT_EXPORT_DIR", "reports")
	viper.SetDefault("REPORT_EXPORT_FORMAT", "pdf")
	viper.SetDefault("REPORT_EXPORT_KINDS", "crops,history,analytics")

	viper.SetDefault("ACCESS_TOKEN_SECRET", "")
	viper.SetDefault("ACCESS_TOKEN_TTL", "12h")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "config: erro ao decodificar variáveis")
	}

	if config.YieldAPI.Timeout <= 0 {
		config.YieldAPI.Timeout = 15 * time.Second
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

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
