package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	S3      S3Config
	OCR     OCRConfig
	Verify  VerifyConfig
	Refdata RefdataConfig
	CORS    CORSConfig
	Log     LogConfig
	Email   EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds validation settings for portal-issued bearer tokens.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for document image storage.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// OCRConfig holds settings for the external text-recognition service.
type OCRConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	Language    string `mapstructure:"language"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// VerifyConfig holds the engine's tolerance policy. The defaults are the only
// documented tolerance values; do not change them without evidence.
type VerifyConfig struct {
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	IDNumberThreshold   float64 `mapstructure:"id_number_threshold"`
}

// RefdataConfig holds optional external overrides for the reference tables.
// Empty paths mean the embedded defaults.
type RefdataConfig struct {
	CategoriesPath string `mapstructure:"categories_path"`
	MonthsPath     string `mapstructure:"months_path"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EmailConfig holds outcome-notification settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	PortalURL   string `mapstructure:"portal_url"`
}

// Load reads configuration from environment variables with the PLMS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PLMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "plms")
	v.SetDefault("db.password", "plms_secret")
	v.SetDefault("db.name", "plms_idverify")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "plms-portal")

	// S3 defaults
	v.SetDefault("s3.region", "ap-southeast-1")
	v.SetDefault("s3.bucket", "plms-id-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// OCR defaults
	v.SetDefault("ocr.endpoint", "http://localhost:8884/tesseract")
	v.SetDefault("ocr.language", "eng")
	v.SetDefault("ocr.timeout_secs", 60)

	// Verify defaults
	v.SetDefault("verify.similarity_threshold", 0.5)
	v.SetDefault("verify.id_number_threshold", 0.8)

	// Refdata defaults (empty = embedded tables)
	v.SetDefault("refdata.categories_path", "")
	v.SetDefault("refdata.months_path", "")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-southeast-1")
	v.SetDefault("email.from_address", "noreply@permits.gov.ph")
	v.SetDefault("email.from_name", "Permit Portal")
	v.SetDefault("email.portal_url", "http://localhost:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "PLMS_SERVER_PORT",
		"server.read_timeout":         "PLMS_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "PLMS_SERVER_WRITE_TIMEOUT",
		"server.environment":          "PLMS_SERVER_ENVIRONMENT",
		"db.host":                     "PLMS_DB_HOST",
		"db.port":                     "PLMS_DB_PORT",
		"db.user":                     "PLMS_DB_USER",
		"db.password":                 "PLMS_DB_PASSWORD",
		"db.name":                     "PLMS_DB_NAME",
		"db.sslmode":                  "PLMS_DB_SSLMODE",
		"db.max_open":                 "PLMS_DB_MAX_OPEN",
		"db.max_idle":                 "PLMS_DB_MAX_IDLE",
		"jwt.secret":                  "PLMS_JWT_SECRET",
		"jwt.issuer":                  "PLMS_JWT_ISSUER",
		"s3.region":                   "PLMS_S3_REGION",
		"s3.bucket":                   "PLMS_S3_BUCKET",
		"s3.endpoint":                 "PLMS_S3_ENDPOINT",
		"s3.access_key":               "PLMS_S3_ACCESS_KEY",
		"s3.secret_key":               "PLMS_S3_SECRET_KEY",
		"s3.max_file_size_mb":         "PLMS_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":           "PLMS_S3_PRESIGN_EXPIRY",
		"ocr.endpoint":                "PLMS_OCR_ENDPOINT",
		"ocr.language":                "PLMS_OCR_LANGUAGE",
		"ocr.timeout_secs":            "PLMS_OCR_TIMEOUT_SECS",
		"verify.similarity_threshold": "PLMS_VERIFY_SIMILARITY_THRESHOLD",
		"verify.id_number_threshold":  "PLMS_VERIFY_ID_NUMBER_THRESHOLD",
		"refdata.categories_path":     "PLMS_REFDATA_CATEGORIES_PATH",
		"refdata.months_path":         "PLMS_REFDATA_MONTHS_PATH",
		"cors.allowed_origins":        "PLMS_CORS_ALLOWED_ORIGINS",
		"log.level":                   "PLMS_LOG_LEVEL",
		"log.format":                  "PLMS_LOG_FORMAT",
		"email.provider":              "PLMS_EMAIL_PROVIDER",
		"email.region":                "PLMS_EMAIL_REGION",
		"email.from_address":          "PLMS_EMAIL_FROM_ADDRESS",
		"email.from_name":             "PLMS_EMAIL_FROM_NAME",
		"email.portal_url":            "PLMS_EMAIL_PORTAL_URL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if PLMS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PLMS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.OCR = OCRConfig{
		Endpoint:    v.GetString("ocr.endpoint"),
		Language:    v.GetString("ocr.language"),
		TimeoutSecs: v.GetInt("ocr.timeout_secs"),
	}
	cfg.Verify = VerifyConfig{
		SimilarityThreshold: v.GetFloat64("verify.similarity_threshold"),
		IDNumberThreshold:   v.GetFloat64("verify.id_number_threshold"),
	}
	cfg.Refdata = RefdataConfig{
		CategoriesPath: v.GetString("refdata.categories_path"),
		MonthsPath:     v.GetString("refdata.months_path"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		PortalURL:   v.GetString("email.portal_url"),
	}

	return cfg, nil
}
