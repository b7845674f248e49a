package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// GatewayMode selects which gateway implementation a portal server wires in.
const (
	GatewayModeSAP  = "sap"
	GatewayModeFake = "fake"
)

// SAPConfig holds the SAP connection settings shared by the SOAP and REST transports
type SAPConfig struct {
	BaseURL     string
	ServicePath string
	Client      string
	User        string
	Password    string
	Language    string
	Timeout     time.Duration
}

// DBConfig holds database configuration for the audit store
type DBConfig struct {
	Enabled         bool
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
}

// GetDSN returns the PostgreSQL connection string
func (c *DBConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port        string
	Env         string
	CORSOrigins []string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	SigningKey      string
	ExpirationHours int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// RateLimitConfig bounds login attempts per client IP
type RateLimitConfig struct {
	LoginMax    int
	LoginWindow time.Duration
}

// UploadConfig holds profile document upload settings
type UploadConfig struct {
	Dir          string
	MaxSizeBytes int64
}

// Config holds all configuration for one portal server
type Config struct {
	PortalName  string
	GatewayMode string
	Server      ServerConfig
	SAP         SAPConfig
	DB          DBConfig
	JWT         JWTConfig
	Log         LogConfig
	Metrics     MetricsConfig
	RateLimit   RateLimitConfig
	Upload      UploadConfig
}

// Load loads configuration from environment variables. Secrets have no
// fallback literals: the JWT signing key is always required, and SAP
// credentials are required whenever the real gateway is selected.
func Load(portalName string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	config := &Config{
		PortalName:  portalName,
		GatewayMode: getEnv("GATEWAY_MODE", GatewayModeSAP),
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			Env:         getEnv("APP_ENV", "development"),
			CORSOrigins: getEnvAsSlice("CORS_ORIGINS", []string{"http://localhost:4200"}),
		},
		SAP: SAPConfig{
			BaseURL:     getEnv("SAP_BASE_URL", ""),
			ServicePath: getEnv("SAP_SERVICE_PATH", "/sap/bc/srt/scs/sap/zfy_portal_service"),
			Client:      getEnv("SAP_CLIENT", "100"),
			User:        getEnv("SAP_USER", ""),
			Password:    getEnv("SAP_PASSWORD", ""),
			Language:    getEnv("SAP_LANGUAGE", "EN"),
			Timeout:     getEnvAsDuration("SAP_TIMEOUT", 30*time.Second),
		},
		DB: DBConfig{
			Enabled:         getEnvAsBool("AUDIT_DB_ENABLED", false),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			DBName:          getEnv("DB_NAME", portalName),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 1*time.Hour),
			LogLevel:        getEnvAsLogLevel("DB_LOG_LEVEL", logger.Warn),
		},
		JWT: JWTConfig{
			SigningKey:      getEnv("JWT_SIGNING_KEY", ""),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", portalName),
		},
		RateLimit: RateLimitConfig{
			LoginMax:    getEnvAsInt("LOGIN_RATE_MAX", 5),
			LoginWindow: getEnvAsDuration("LOGIN_RATE_WINDOW", 15*time.Minute),
		},
		Upload: UploadConfig{
			Dir:          getEnv("UPLOAD_DIR", "./uploads"),
			MaxSizeBytes: int64(getEnvAsInt("UPLOAD_MAX_SIZE_MB", 10)) * 1024 * 1024,
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.JWT.SigningKey == "" {
		return fmt.Errorf("JWT_SIGNING_KEY must be set")
	}
	switch c.GatewayMode {
	case GatewayModeSAP:
		if c.SAP.BaseURL == "" {
			return fmt.Errorf("SAP_BASE_URL must be set when GATEWAY_MODE=sap")
		}
		if c.SAP.User == "" || c.SAP.Password == "" {
			return fmt.Errorf("SAP_USER and SAP_PASSWORD must be set when GATEWAY_MODE=sap")
		}
	case GatewayModeFake:
		if c.Server.Env == "production" {
			return fmt.Errorf("GATEWAY_MODE=fake is not allowed in production")
		}
	default:
		return fmt.Errorf("unknown GATEWAY_MODE %q", c.GatewayMode)
	}
	return nil
}

// LogConfig returns the configuration as a zap logger-friendly format
func (c *Config) LogConfig() []zap.Field {
	return []zap.Field{
		zap.String("portal", c.PortalName),
		zap.String("environment", c.Server.Env),
		zap.String("gateway_mode", c.GatewayMode),
		zap.String("sap_base_url", c.SAP.BaseURL),
		zap.String("sap_client", c.SAP.Client),
		zap.String("server_port", c.Server.Port),
	}
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as booleans
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get comma-separated environment variables as slices
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Helper function to get environment variables as log levels
func getEnvAsLogLevel(key string, defaultValue logger.LogLevel) logger.LogLevel {
	valueStr := getEnv(key, "")
	switch valueStr {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return defaultValue
	}
}
