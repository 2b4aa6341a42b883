package config

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Config struct {
	DB    DBConfig    `mapstructure:"db"`
	HTTP  HTTPConfig  `mapstructure:"http"`
	Log   LogConfig   `mapstructure:"log"`
	Redis RedisConfig `mapstructure:"redis"`
	Cache CacheConfig `mapstructure:"cache"`
	QR    QRConfig    `mapstructure:"qr"`
}

type DBConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type HTTPConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// RedisConfig is optional: an empty addr runs the service without a cache.
type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type QRConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// Load reads config.yaml from the working directory (if present) and lets
// environment variables override every key (db.uri -> DB_URI).
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("db.uri", "mongodb://localhost:27017")
	v.SetDefault("db.name", "restaurant_catalog")
	v.SetDefault("http.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("redis.addr", "")
	v.SetDefault("cache.ttl", 30*time.Second)
	v.SetDefault("qr.base_url", "http://localhost:8080")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	return cfg
}

func MustInitMongo(ctx context.Context, cfg *Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DB.URI))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	return client.Database(cfg.DB.Name)
}

// MustInitRedis returns nil when no address is configured; the cache is an
// optional collaborator.
func MustInitRedis(cfg *Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	return client
}
