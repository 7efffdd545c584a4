package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Minio    MinioConfig
	Upload   UploadConfig
	NATS     NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host           string        `envconfig:"SERVER_HOST" default:"localhost"`
	Port           string        `envconfig:"SERVER_PORT" default:"8080"`
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// StorageConfig selects the chunk store backend and fixes the chunk size.
// The chunk size applies to blobs created from now on; already-stored blobs
// keep the chunk size recorded at their creation.
type StorageConfig struct {
	Driver    string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	ChunkSize int    `envconfig:"STORAGE_CHUNK_SIZE" default:"262144"` // 256KiB
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" default:"asset-chunks"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY" default:""`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY" default:""`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type UploadConfig struct {
	MaxRequestBytes int64         `envconfig:"UPLOAD_MAX_REQUEST_BYTES" default:"536870912"` // 512MB
	PendingTTL      time.Duration `envconfig:"UPLOAD_PENDING_TTL" default:"30m"`
	SweepEvery      time.Duration `envconfig:"UPLOAD_SWEEP_EVERY" default:"15m"`
	SweepEnabled    bool          `envconfig:"UPLOAD_SWEEP_ENABLED" default:"true"`
}

type NATSConfig struct {
	Enabled       bool   `envconfig:"NATS_ENABLED" default:"false"`
	URL           string `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	StreamName    string `envconfig:"NATS_STREAM_NAME" default:"ASSET_EVENTS"`
	SubjectPrefix string `envconfig:"NATS_SUBJECT_PREFIX" default:"assets"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
