package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[logs]
file = "logs/app.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.InDelta(t, 18.0, cfg.Pricing.GSTRate, 0.001)
	assert.InDelta(t, 5.0, cfg.Pricing.ServiceFee, 0.001)
	assert.Equal(t, 5, cfg.Simulation.IntervalSeconds)
}

func TestLoad_UnknownDriver(t *testing.T) {
	path := writeConfig(t, `
[storage]
driver = "cassandra"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}

func TestLoad_PostgresRequiresHost(t *testing.T) {
	path := writeConfig(t, `
[storage]
driver = "postgres"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database host is required")
}

func TestLoad_EnvOverridesPassword(t *testing.T) {
	t.Setenv("PARKING_DB_PASSWORD", "from-env")

	path := writeConfig(t, `
[storage]
driver = "postgres"

[database]
host = "localhost"
port = 5432
user = "parking"
password = "from-file"
dbname = "parking"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "parking",
		Password: "secret",
		DBName:   "parking",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "dbname=parking")
	assert.Contains(t, dsn, "sslmode=disable")
}
