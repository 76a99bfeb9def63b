package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		check   func(t *testing.T, cfg ServiceConfig)
		wantErr string
	}{
		{
			name: "defaults without file",
			check: func(t *testing.T, cfg ServiceConfig) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "yaml over defaults",
			yaml: "api:\n  grpcPort: 9000\ndatabase:\n  driver: mysql\n  mysql:\n    host: db\n",
			check: func(t *testing.T, cfg ServiceConfig) {
				assert.Equal(t, 9000, cfg.API.GRPCPort)
				assert.Equal(t, 8084, cfg.API.HTTPPort)
				assert.Equal(t, DriverMySQL, cfg.DatabaseConfig.Driver)
				assert.Equal(t, "db", cfg.DatabaseConfig.Mysql.Host)
				assert.Equal(t, 3306, cfg.DatabaseConfig.Mysql.Port)
			},
		},
		{
			name: "environment over yaml",
			yaml: "database:\n  driver: mysql\n",
			env: map[string]string{
				"ENGAGEMENT_DB_DRIVER":        "postgres",
				"ENGAGEMENT_DB_POSTGRES_HOST": "pg",
				"ENGAGEMENT_KAFKA_ENABLED":    "true",
				"ENGAGEMENT_AUTH_JWT_SECRET":  "s3cr3t",
				"ENGAGEMENT_API_HTTP_PORT":    "9090",
			},
			check: func(t *testing.T, cfg ServiceConfig) {
				assert.Equal(t, DriverPostgres, cfg.DatabaseConfig.Driver)
				assert.Equal(t, "pg", cfg.DatabaseConfig.Postgres.Host)
				assert.True(t, cfg.MessengerConfig.Kafka.Enabled)
				assert.Equal(t, "s3cr3t", cfg.Auth.JWTSecret)
				assert.Equal(t, 9090, cfg.API.HTTPPort)
			},
		},
		{
			name:    "unknown driver",
			yaml:    "database:\n  driver: oracle\n",
			wantErr: "unsupported database driver",
		},
		{
			name:    "malformed yaml",
			yaml:    "api: [",
			wantErr: "decode config",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.yaml != "" {
				path = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))
			}
			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestDefaultsFileDecodes(t *testing.T) {
	f, err := os.ReadFile("defaults.yaml")
	require.NoError(t, err)
	cfg := Default()
	require.NoError(t, Decode(strings.NewReader(string(f)), &cfg))
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DriverSQLite, cfg.DatabaseConfig.Driver)
	assert.Equal(t, "engagement", cfg.MessengerConfig.Kafka.Topic)
}
