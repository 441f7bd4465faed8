package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"

	// CacheBackendNone disables listing caches; every request hits MariaDB.
	CacheBackendNone = "none"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	RedisAddr     string
	RedisPassword string
	CacheBackend  string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	StagingBucket  string
	GalleryBucket  string

	JWTPublicKey string

	IndexConsoleURL   string
	VerifyIndexesCron string
}

// Buckets lists every bucket the service expects to exist.
func (s *Settings) Buckets() []string {
	return []string{s.StagingBucket, s.GalleryBucket}
}

// databaseKeys are required by every binary.
var databaseKeys = []string{
	"MARIADB_DSN",
	"MARIADB_MAX_OPEN_CONN",
	"MARIADB_MAX_IDLE_CONNS",
	"MARIADB_CONN_MAX_LIFETIME",
}

// serviceKeys are additionally required by the API and the worker.
var serviceKeys = []string{
	"SERVER_PORT",
	"MINIO_ENDPOINT",
	"MINIO_ACCESS_KEY",
	"MINIO_SECRET_KEY",
}

// Load reads the full service configuration used by the API and the worker.
func Load() (*Settings, error) {
	readEnv()

	if err := requireKeys(databaseKeys); err != nil {
		return nil, err
	}
	if err := requireKeys(serviceKeys); err != nil {
		return nil, err
	}

	cacheBackend := strings.ToLower(viper.GetString("CACHE_BACKEND"))
	switch cacheBackend {
	case CacheBackendMemory, CacheBackendNone:
	case CacheBackendRedis:
		if viper.GetString("REDIS_ADDR") == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND is %q", CacheBackendRedis)
		}
	default:
		return nil, fmt.Errorf("CACHE_BACKEND must be %q, %q or %q, got %q", CacheBackendMemory, CacheBackendRedis, CacheBackendNone, cacheBackend)
	}

	return settings(), nil
}

// LoadDatabase reads only what the database tools need (migrations and the
// index check). Storage, HTTP and cache settings are not validated.
func LoadDatabase() (*Settings, error) {
	readEnv()

	if err := requireKeys(databaseKeys); err != nil {
		return nil, err
	}
	return settings(), nil
}

func readEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("CACHE_BACKEND", CacheBackendMemory)
	viper.SetDefault("STAGING_BUCKET", "staging")
	viper.SetDefault("GALLERY_BUCKET", "gallery")
	viper.SetDefault("VERIFY_INDEXES_CRON", "@daily")
}

func requireKeys(keys []string) error {
	for _, key := range keys {
		if !viper.IsSet(key) {
			return fmt.Errorf("%s is required", key)
		}
	}
	return nil
}

func settings() *Settings {
	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),
		CacheBackend:  strings.ToLower(viper.GetString("CACHE_BACKEND")),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		StagingBucket:  viper.GetString("STAGING_BUCKET"),
		GalleryBucket:  viper.GetString("GALLERY_BUCKET"),

		JWTPublicKey: viper.GetString("JWT_PUBLIC_KEY"),

		IndexConsoleURL:   viper.GetString("INDEX_CONSOLE_URL"),
		VerifyIndexesCron: viper.GetString("VERIFY_INDEXES_CRON"),
	}
}
