package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var ErrInvalidSalesAPISource = errors.New("fonte de API de vendas inválida")

// DefaultSalesAPISource é o código da fonte única configurada sem SALES_API_SOURCES
const DefaultSalesAPISource = "default"

type Config struct {
	App                 App                   `mapstructure:",squash"`
	Server              Server                `mapstructure:",squash"`
	Database            Database              `mapstructure:",squash"`
	Redis               Redis                 `mapstructure:",squash"`
	SalesAPI            SalesAPI              `mapstructure:",squash"`
	Auth                Auth                  `mapstructure:",squash"`
	Mapping             domain.MappingProfile `mapstructure:",squash"`
	BusinessUnitAliases BusinessUnitAliases   `mapstructure:",squash"`
	SourceRefreshSync   SourceRefreshSync     `mapstructure:",squash"`
	SalesAPIMultiClient map[string]SalesAPI   `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Redis struct {
	Addr           string        `mapstructure:"redis_addr"`
	Password       string        `mapstructure:"redis_password"`
	DB             int           `mapstructure:"redis_db"`
	ManualOrderTTL time.Duration `mapstructure:"redis_manual_order_ttl"`
	Enabled        bool          `mapstructure:"redis_enabled"`
}

// SalesAPI é a configuração de uma empresa na API de vendas
type SalesAPI struct {
	URL            string        `mapstructure:"sales_api_url"`
	AccessToken    string        `mapstructure:"sales_api_access_token"`
	Sources        string        `mapstructure:"sales_api_sources"`
	Timeout        time.Duration `mapstructure:"sales_api_timeout"`
	MaxConcurrency int           `mapstructure:"sales_api_max_concurrency"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
	Issuer string `mapstructure:"auth_issuer"`
}

// BusinessUnitAliases acrescenta apelidos de unidade no formato "rótulo=Unidade,..."
type BusinessUnitAliases struct {
	Raw    string            `mapstructure:"business_unit_aliases"`
	Parsed map[string]string `mapstructure:"-"`
}

type SourceRefreshSync struct {
	CronSchedule string        `mapstructure:"source_refresh_sync_cron"`
	Timeout      time.Duration `mapstructure:"source_refresh_sync_timeout"`
	Enabled      bool          `mapstructure:"source_refresh_sync_enabled"`
	RunOnStartup bool          `mapstructure:"source_refresh_sync_run_on_startup"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_MANUAL_ORDER_TTL", "720h") // 30 dias
	viper.SetDefault("REDIS_ENABLED", true)

	viper.SetDefault("SALES_API_URL", "")
	viper.SetDefault("SALES_API_ACCESS_TOKEN", "")
	viper.SetDefault("SALES_API_SOURCES", "")
	viper.SetDefault("SALES_API_TIMEOUT", "30s")
	viper.SetDefault("SALES_API_MAX_CONCURRENCY", 4)

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_ISSUER", "")

	viper.SetDefault("MAPPING_BUSINESS_UNIT_FIELD", "bu")
	viper.SetDefault("MAPPING_MONTH_FIELD", "month")
	viper.SetDefault("MAPPING_TOTAL_AMOUNT_FIELD", "total_amount")
	viper.SetDefault("MAPPING_GROSS_PROFIT_FIELD", "gross_profit")
	viper.SetDefault("MAPPING_ORDER_COUNT_FIELD", "order_count")
	viper.SetDefault("MAPPING_MARGIN_BELOW_TEN_FIELD", "margin_below_10")
	viper.SetDefault("MAPPING_MARGIN_TEN_TO_TWENTY_FIELD", "margin_10_20")
	viper.SetDefault("MAPPING_MARGIN_ABOVE_TWENTY_FIELD", "margin_above_20")
	viper.SetDefault("MAPPING_SALESPERSON_FIELD", "salesperson")
	viper.SetDefault("MAPPING_CUSTOMER_FIELD", "customer")

	viper.SetDefault("BUSINESS_UNIT_ALIASES", "")

	viper.SetDefault("SOURCE_REFRESH_SYNC_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("SOURCE_REFRESH_SYNC_TIMEOUT", "5m")
	viper.SetDefault("SOURCE_REFRESH_SYNC_ENABLED", false)
	viper.SetDefault("SOURCE_REFRESH_SYNC_RUN_ON_STARTUP", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.SalesAPIMultiClient, err = ParseSalesAPISources(config.SalesAPI)
	if err != nil {
		return nil, err
	}
	if len(config.SalesAPIMultiClient) == 0 {
		logrus.Warn("Nenhuma fonte de API de vendas configurada")
	}

	config.BusinessUnitAliases.Parsed = ParseAliases(config.BusinessUnitAliases.Raw)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// ParseSalesAPISources monta o mapa de empresas a partir de "codigo=url|token,...".
// Sem lista, a URL e o token únicos viram a fonte "default".
func ParseSalesAPISources(base SalesAPI) (map[string]SalesAPI, error) {
	sources := make(map[string]SalesAPI)

	raw := strings.TrimSpace(base.Sources)
	if raw == "" {
		if base.URL != "" {
			sources[DefaultSalesAPISource] = base
		}
		return sources, nil
	}

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		code, target, found := strings.Cut(entry, "=")
		code = strings.TrimSpace(code)
		if !found || code == "" {
			return nil, errors.Wrapf(ErrInvalidSalesAPISource, "%q", entry)
		}

		url, token, _ := strings.Cut(target, "|")
		url = strings.TrimSpace(url)
		if url == "" {
			return nil, errors.Wrapf(ErrInvalidSalesAPISource, "%q sem url", code)
		}

		source := base
		source.URL = url
		source.AccessToken = strings.TrimSpace(token)
		if source.AccessToken == "" {
			source.AccessToken = base.AccessToken
		}
		sources[code] = source
	}

	return sources, nil
}

// ParseAliases lê pares "rótulo=Unidade" separados por vírgula
func ParseAliases(raw string) map[string]string {
	aliases := make(map[string]string)
	for _, entry := range strings.Split(raw, ",") {
		label, unit, found := strings.Cut(entry, "=")
		label, unit = strings.TrimSpace(label), strings.TrimSpace(unit)
		if !found || label == "" || unit == "" {
			continue
		}
		aliases[label] = unit
	}
	return aliases
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
