package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"

	AuditBackendSQL      = "sql"
	AuditBackendDynamoDB = "dynamodb"
)

// DBConfig holds database configuration
type DBConfig struct {
	Driver          string
	DSN             string
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

// GetDSN returns the connection string for the configured driver.
// An explicit DB_DSN always wins.
func (c *DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.DBName)
	case DriverSQLite:
		return c.DBName + ".db"
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	}
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port               string
	Env                string
	CORSAllowedOrigins []string
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

// AuditConfig selects where audit entries are written.
type AuditConfig struct {
	Backend   string
	TableName string
}

// AWSConfig holds the AWS settings of the DynamoDB audit store.
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

// SeedConfig holds the first admin account created on an empty user table.
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
}

// PaymentsConfig configures the online collection gateway.
type PaymentsConfig struct {
	MercadoPagoAccessToken string
	MockMode               bool
	TestPayerEmail         string
	TestPayerUserID        string
}

// Sandbox reports a Mercado Pago test credential.
func (c PaymentsConfig) Sandbox() bool {
	return strings.HasPrefix(c.MercadoPagoAccessToken, "TEST-")
}

// BusinessConfig holds toggles for domain rules.
type BusinessConfig struct {
	StrictStatusTransitions bool
	AllowRegistration       bool
}

// Config holds all configuration
type Config struct {
	ServiceName string
	DB          DBConfig
	Server      ServerConfig
	JWT         JWTConfig
	Log         LogConfig
	Metrics     MetricsConfig
	Audit       AuditConfig
	AWS         AWSConfig
	Seed        SeedConfig
	Payments    PaymentsConfig
	Business    BusinessConfig
}

// Load reads configuration from environment variables. The .env file is
// loaded by godotenv/autoload in main.
func Load(serviceName string) (*Config, error) {
	cfg := &Config{
		ServiceName: getEnv("SERVICE_NAME", serviceName),
		DB: DBConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "password"),
			DBName:          getEnv("DB_NAME", serviceName),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 50),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 1*time.Hour),
			LogLevel:        getEnvAsLogLevel("DB_LOG_LEVEL", logger.Warn),
		},
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Env:                getEnv("APP_ENV", "development"),
			CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		JWT: JWTConfig{
			SigningKey:      getEnv("JWT_SIGNING_KEY", ""),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", serviceName),
		},
		Audit: AuditConfig{
			Backend:   strings.ToLower(getEnv("AUDIT_LOG_BACKEND", AuditBackendSQL)),
			TableName: getEnv("AUDIT_LOG_TABLE", "audit_logs"),
		},
		AWS: AWSConfig{
			Region:           getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
			DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		},
		Seed: SeedConfig{
			AdminUsername: getEnv("ADMIN_SEED_USERNAME", "admin"),
			AdminPassword: getEnv("ADMIN_SEED_PASSWORD", ""),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
			MockMode:               getEnvAsBool("PAYMENT_GATEWAY_MOCK", false) || getEnvAsBool("MERCADOPAGO_MOCK", false),
			TestPayerEmail:         getEnv("MERCADOPAGO_TEST_PAYER_EMAIL", ""),
			TestPayerUserID:        getEnv("MERCADOPAGO_TEST_PAYER_USER_ID", ""),
		},
		Business: BusinessConfig{
			StrictStatusTransitions: getEnvAsBool("STRICT_STATUS_TRANSITIONS", false),
			AllowRegistration:       getEnvAsBool("ALLOW_REGISTRATION", false),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	switch c.Audit.Backend {
	case AuditBackendSQL, AuditBackendDynamoDB:
	default:
		return fmt.Errorf("unsupported AUDIT_LOG_BACKEND %q", c.Audit.Backend)
	}
	if c.JWT.SigningKey == "" {
		if c.Server.Env == "production" {
			return fmt.Errorf("JWT_SIGNING_KEY is required in production")
		}
		c.JWT.SigningKey = "dev-signing-key"
	}
	if c.JWT.ExpirationHours <= 0 {
		c.JWT.ExpirationHours = 24
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// LogFields returns the configuration as zap fields, without secrets.
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("db_driver", c.DB.Driver),
		zap.String("db_host", c.DB.Host),
		zap.String("db_name", c.DB.DBName),
		zap.String("server_port", c.Server.Port),
		zap.String("audit_backend", c.Audit.Backend),
		zap.Bool("payment_gateway_mock", c.Payments.MockMode),
		zap.Bool("strict_status_transitions", c.Business.StrictStatusTransitions),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getEnvAsLogLevel(key string, defaultValue logger.LogLevel) logger.LogLevel {
	switch strings.ToLower(getEnv(key, "")) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	}
	return defaultValue
}
