// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("CHAIN_NETWORK", "")
	t.Setenv("CHAIN_ID", "")
	t.Setenv("CHAIN_RPC_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, NetworkAeneid, cfg.Chain.Network)
	assert.Equal(t, int64(1315), cfg.Chain.ChainID)
	assert.Equal(t, "https://aeneid.storyrpc.io", cfg.Chain.RPCURL)
	assert.Equal(t, int64(50), cfg.Storage.MaxFileSizeMB)
}

func TestLoadMainnetPreset(t *testing.T) {
	t.Setenv("CHAIN_NETWORK", "mainnet")
	t.Setenv("CHAIN_ID", "")
	t.Setenv("CHAIN_RPC_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(1514), cfg.Chain.ChainID)
	assert.Equal(t, "https://storyscan.io", cfg.Chain.ExplorerURL())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment: "development",
			Database:    DatabaseConfig{Driver: DriverMemory},
			Storage:     StorageConfig{MaxFileSizeMB: 50},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "unsupported database driver"},
		{"production postgres without password", func(c *Config) {
			c.Environment = "production"
			c.Database.Driver = DriverPostgres
		}, "database password is required"},
		{"bad contract address", func(c *Config) { c.Chain.Contracts.Marketplace = "0x1234" }, "MARKETPLACE"},
		{"good contract address", func(c *Config) {
			c.Chain.Contracts.IPDAO = "0x1234567890123456789012345678901234567890"
		}, ""},
		{"zero upload size", func(c *Config) { c.Storage.MaxFileSizeMB = 0 }, "UPLOAD_MAX_FILE_SIZE_MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_LIST", " https://a.example , ,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getEnvAsList("TEST_LIST", nil))
	assert.Nil(t, getEnvAsList("TEST_LIST_UNSET", nil))
}
