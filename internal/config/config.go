package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	Environment string `mapstructure:"environment"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	RatesKey string `mapstructure:"rates_key"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// CustodianConfig holds custodial wallet provider configuration
type CustodianConfig struct {
	URL     string        `mapstructure:"url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ChargeConfig holds charge provider configuration
type ChargeConfig struct {
	URL    string        `mapstructure:"url"`
	Secret string        `mapstructure:"secret"`
	// ProcessorActor is the actor whose pledges are verified against the
	// charge provider
	ProcessorActor string `mapstructure:"processor_actor"`
	// SentinelActor bypasses charge verification outside production
	SentinelActor string        `mapstructure:"sentinel_actor"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// SettlementConfig holds contribution settlement configuration
type SettlementConfig struct {
	AltCurrency string `mapstructure:"altcurrency"`
	// Unit is the contribution denomination in satoshis
	Unit int64 `mapstructure:"unit"`
	// UnitVotes is the number of votes a whole unit is worth
	UnitVotes int `mapstructure:"unit_votes"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// SurveyorConfig holds surveyor regeneration configuration
type SurveyorConfig struct {
	// Schedule is a 6-field cron expression with a seconds column
	Schedule  string       `mapstructure:"schedule"`
	BatchSize int          `mapstructure:"batch_size"`
	Worker    WorkerConfig `mapstructure:"worker"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Custodian  CustodianConfig  `mapstructure:"custodian"`
	Charge     ChargeConfig     `mapstructure:"charge"`
	Settlement SettlementConfig `mapstructure:"settlement"`
}

// SchedulerConfig holds configuration for the surveyor scheduler
type SchedulerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Redis      RedisConfig    `mapstructure:"redis"`
	Surveyor   SurveyorConfig `mapstructure:"surveyor"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.rates_key", "rates:satoshis")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "LEDGER_REPORTS")
	v.SetDefault("custodian.timeout", "30s")
	v.SetDefault("charge.timeout", "30s")
	v.SetDefault("charge.processor_actor", "authorize.processor")
	v.SetDefault("charge.sentinel_actor", "automation")
	v.SetDefault("environment", "development")
	v.SetDefault("settlement.altcurrency", "BTC")
	v.SetDefault("settlement.unit", 30000)
	v.SetDefault("settlement.unit_votes", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSchedulerConfig loads configuration for the surveyor scheduler
func LoadSchedulerConfig(configFile string, envPath string) (*SchedulerConfig, error) {
	v := configureViper("scheduler", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.rates_key", "rates:satoshis")
	v.SetDefault("surveyor.schedule", "0 0 0 * * 0,3,5")
	v.SetDefault("surveyor.batch_size", 100)
	v.SetDefault("surveyor.worker.pool_size", 10)
	v.SetDefault("surveyor.worker.queue_size", 100)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg SchedulerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/scheduler/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("PATRON_LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"environment",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		"redis.rates_key",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Custodian
		"custodian.url",
		"custodian.token",
		"custodian.timeout",
		// Charge provider
		"charge.url",
		"charge.secret",
		"charge.processor_actor",
		"charge.sentinel_actor",
		"charge.timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Settlement
		"settlement.altcurrency",
		"settlement.unit",
		"settlement.unit_votes",
		// Surveyor scheduler
		"surveyor.schedule",
		"surveyor.batch_size",
		"surveyor.worker.pool_size",
		"surveyor.worker.queue_size",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
