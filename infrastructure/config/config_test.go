package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		LogLevel:        "info",
		ChainID:         365,
		RPCAddr:         "https://eth-rpc.testnet.example.com/rpc",
		ContractAddress: "0x1234567890123456789012345678901234567890",
		Signer: SignerConfig{
			URL:       "https://signer.example.com",
			AccountID: "keeper.testnet",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := validConfig()
		require.NoError(t, cfg.Validate())
	})

	cases := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"zero chain id", func(c *Config) { c.ChainID = 0 }, "chain_id"},
		{"missing rpc addr", func(c *Config) { c.RPCAddr = "" }, "rpc_addr"},
		{"bad contract address", func(c *Config) { c.ContractAddress = "not-hex" }, "contract_address"},
		{"missing signer url", func(c *Config) { c.Signer.URL = "" }, "signer.url"},
		{"missing signer account", func(c *Config) { c.Signer.AccountID = "" }, "signer.account_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads from toml file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		content := `
log_level = "debug"
chain_id = 365
rpc_addr = "https://eth-rpc.testnet.example.com/rpc"
contract_address = "0x1234567890123456789012345678901234567890"

[signer]
url = "https://signer.example.com"
account_id = "keeper.testnet"

[database]
user = "keeper"
password = "secret"
host = "localhost"
port = "5432"
dbName = "oracle_keeper"

[slack]
webhook_url = "https://hooks.slack.com/services/T0/B0/x"
channel = "#oracle-alerts"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, int64(365), cfg.ChainID)
		assert.Equal(t, "keeper.testnet", cfg.Signer.AccountID)
		assert.Equal(t, "#oracle-alerts", cfg.Slack.Channel)

		// Defaults applied where the file is silent.
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`log_level = "info"`), 0o600))

		cfg, err := LoadConfig(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("malformed file is rejected", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`not [valid toml`), 0o600))

		cfg, err := LoadConfig(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestDatabaseConfig_GetDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		User:     "keeper",
		Password: "secret",
		Host:     "localhost",
		Port:     "5432",
		DBName:   "oracle_keeper",
		SSLMode:  "disable",
	}

	dsn := db.GetDatabaseDSN()
	assert.Equal(t, "host=localhost port=5432 user=keeper password=secret dbname=oracle_keeper sslmode=disable", dsn)
}
