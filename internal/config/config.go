// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Storage     StorageConfig
	AWS         AWSConfig
	Chain       ChainConfig
	RateLimit   RateLimitConfig
	Log         LogConfig
	I18n        I18nConfig
}

type ServerConfig struct {
	Port           string
	Host           string
	ReadTimeout    int
	WriteTimeout   int
	IdleTimeout    int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver       string // memory, sqlite or postgres
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	Path         string // sqlite file
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
	Seed         bool
}

type StorageConfig struct {
	IPFSAPIURL      string
	MaxFileSizeMB   int64
	MaxUploadSizeMB int64
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
}

type ChainConfig struct {
	Network   string
	ChainID   int64
	RPCURL    string
	Contracts ContractAddresses
}

type ContractAddresses struct {
	IPRegistryAdapter  string `json:"ipRegistryAdapter"`
	IPEnforcer         string `json:"ipEnforcer"`
	Fractionalizer     string `json:"fractionalizer"`
	Marketplace        string `json:"marketplace"`
	YieldVault         string `json:"yieldVault"`
	RevenueDistributor string `json:"revenueDistributor"`
	IPDAO              string `json:"ipdao"`
}

type RateLimitConfig struct {
	General float64 // requests per second, <= 0 disables
	Burst   int
	Write   float64
}

type LogConfig struct {
	Level  string
	Format string
}

type I18nConfig struct {
	DefaultLocale string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	network := getEnv("CHAIN_NETWORK", NetworkAeneid)
	preset := PresetFor(network)

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Host:           getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:    getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:   getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:    getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", nil),
		},
		Database: DatabaseConfig{
			Driver:       strings.ToLower(getEnv("DB_DRIVER", DriverMemory)),
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "dippchain_studio"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			Path:         getEnv("DB_PATH", "dippchain.db"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "warn"),
			Seed:         getEnvAsBool("DB_SEED", true),
		},
		Storage: StorageConfig{
			IPFSAPIURL:      getEnv("IPFS_API_URL", ""),
			MaxFileSizeMB:   int64(getEnvAsInt("UPLOAD_MAX_FILE_SIZE_MB", 50)),
			MaxUploadSizeMB: int64(getEnvAsInt("UPLOAD_MAX_REQUEST_SIZE_MB", 200)),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "dippchain-content"),
		},
		Chain: ChainConfig{
			Network: network,
			ChainID: int64(getEnvAsInt("CHAIN_ID", int(preset.ChainID))),
			RPCURL:  getEnv("CHAIN_RPC_URL", preset.RPCURL),
			Contracts: ContractAddresses{
				IPRegistryAdapter:  getEnv("IP_REGISTRY_ADAPTER", ""),
				IPEnforcer:         getEnv("IP_ENFORCER", ""),
				Fractionalizer:     getEnv("FRACTIONALIZER", ""),
				Marketplace:        getEnv("MARKETPLACE", ""),
				YieldVault:         getEnv("YIELD_VAULT", ""),
				RevenueDistributor: getEnv("REVENUE_DISTRIBUTOR", ""),
				IPDAO:              getEnv("IPDAO", ""),
			},
		},
		RateLimit: RateLimitConfig{
			General: getEnvAsFloat("RATE_LIMIT_RPS", 10),
			Burst:   getEnvAsInt("RATE_LIMIT_BURST", 20),
			Write:   getEnvAsFloat("RATE_LIMIT_WRITE_RPS", 1),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Database.Driver == DriverPostgres && c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	for name, addr := range c.Chain.Contracts.byName() {
		if addr != "" && !common.IsHexAddress(addr) {
			return fmt.Errorf("contract address %s=%q is not a hex address", name, addr)
		}
	}

	if c.Storage.MaxFileSizeMB <= 0 {
		return fmt.Errorf("UPLOAD_MAX_FILE_SIZE_MB must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
