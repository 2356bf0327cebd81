package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
environment: production
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: ledger
  sslmode: require
redis:
  addr: "localhost:6380"
  rates_key: "rates:test"
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_REPORTS"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
custodian:
  url: "https://custodian.example.com"
  token: "test-token"
charge:
  url: "https://charge.example.com"
  secret: "sk_test"
settlement:
  altcurrency: BTC
  unit: 25000
  unit_votes: 5
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "production", cfg.Environment)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "localhost:6380", cfg.Redis.Addr)
				assert.Equal(t, "rates:test", cfg.Redis.RatesKey)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_REPORTS", cfg.NATS.StreamName)
				assert.Equal(t, "https://custodian.example.com", cfg.Custodian.URL)
				assert.Equal(t, "sk_test", cfg.Charge.Secret)
				assert.Equal(t, int64(25000), cfg.Settlement.Unit)
				assert.Equal(t, 5, cfg.Settlement.UnitVotes)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: ledger
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "rates:satoshis", cfg.Redis.RatesKey)
				assert.Equal(t, "LEDGER_REPORTS", cfg.NATS.StreamName)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "authorize.processor", cfg.Charge.ProcessorActor)
				assert.Equal(t, "automation", cfg.Charge.SentinelActor)
				assert.Equal(t, "development", cfg.Environment)
				assert.Equal(t, "BTC", cfg.Settlement.AltCurrency)
				assert.Equal(t, int64(30000), cfg.Settlement.Unit)
				assert.Equal(t, 10, cfg.Settlement.UnitVotes)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadAPIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadSchedulerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SchedulerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: ledger
redis:
  addr: "localhost:6379"
surveyor:
  schedule: "0 30 2 * * 1"
  batch_size: 50
  worker:
    pool_size: 4
    queue_size: 40
`,
			expectError: false,
			validate: func(t *testing.T, cfg *SchedulerConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "0 30 2 * * 1", cfg.Surveyor.Schedule)
				assert.Equal(t, 50, cfg.Surveyor.BatchSize)
				assert.Equal(t, 4, cfg.Surveyor.Worker.WorkerPoolSize)
				assert.Equal(t, 40, cfg.Surveyor.Worker.WorkerQueueSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: ledger
`,
			expectError: false,
			validate: func(t *testing.T, cfg *SchedulerConfig) {
				// Check defaults
				assert.Equal(t, "0 0 0 * * 0,3,5", cfg.Surveyor.Schedule)
				assert.Equal(t, 100, cfg.Surveyor.BatchSize)
				assert.Equal(t, 10, cfg.Surveyor.Worker.WorkerPoolSize)
				assert.Equal(t, 100, cfg.Surveyor.Worker.WorkerQueueSize)
				assert.Equal(t, "rates:satoshis", cfg.Redis.RatesKey)
				assert.Equal(t, 5, cfg.Database.MaxOpenConns)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: ledger
`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadSchedulerConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "ledger",
		Password: "secret",
		DBName:   "patron_ledger",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=ledger password=secret dbname=patron_ledger sslmode=disable",
		cfg.DSN())
}
