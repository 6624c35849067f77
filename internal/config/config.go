package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type DB struct {
	DbHOST          string        `env:"DB_HOST"              envDefault:"localhost"`
	DbPORT          string        `env:"DB_PORT"              envDefault:"5432"`
	DbUSER          string        `env:"DB_USER"              envDefault:"postgres"`
	DbPASSWORD      string        `env:"DB_PASSWORD"          envDefault:"password"`
	DbNAME          string        `env:"DB_NAME"              envDefault:"murmur"`
	DbSSLMODE       string        `env:"DB_SSLMODE"           envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS"    envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS"    envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// DSN builds a lib/pq connection string.
func (d DB) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST,
		d.DbPORT,
		d.DbUSER,
		d.DbPASSWORD,
		d.DbNAME,
		d.DbSSLMODE,
	)
}

type MinIO struct {
	Endpoint   string `env:"MINIO_ENDPOINT"    envDefault:"localhost:9000"`
	AccessKey  string `env:"MINIO_ACCESS_KEY"  envDefault:"minioadmin"`
	SecretKey  string `env:"MINIO_SECRET_KEY"  envDefault:"minioadmin"`
	BucketName string `env:"MINIO_BUCKET_NAME" envDefault:"avatars"`
	UseSSL     bool   `env:"MINIO_USE_SSL"     envDefault:"false"`
	Region     string `env:"MINIO_REGION"      envDefault:"us-east-1"`
	PublicURL  string `env:"MINIO_PUBLIC_URL"  envDefault:"http://localhost:9000"`
}

type Config struct {
	ServerPort           int           `env:"SERVER_PORT"            envDefault:"8080"`
	JWTSecretKey         string        `env:"JWT_SECRET_KEY,required,notEmpty"`
	AccessTokenDuration  time.Duration `env:"ACCESS_TOKEN_DURATION"  envDefault:"2h"`
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION" envDefault:"168h"`
	MaxUploadSize        int64         `env:"MAX_UPLOAD_SIZE"        envDefault:"5242880"`
	RequestTimeout       time.Duration `env:"REQUEST_TIMEOUT"        envDefault:"10s"`
	SlowRequestThreshold time.Duration `env:"SLOW_REQUEST_THRESHOLD" envDefault:"2s"`
	LogLevel             string        `env:"LOG_LEVEL"              envDefault:"info"`
	CORSAllowedOrigin    string        `env:"CORS_ALLOWED_ORIGIN"    envDefault:"*"`

	DB    DB
	MinIO MinIO
}

func LoadConfig(logger *logrus.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.WithError(err).Warn("файл .env не найден, используются переменные окружения")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}

	return &cfg, nil
}
