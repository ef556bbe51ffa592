package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server  Server
	Storage Storage
	Log     Log
}

type Server struct {
	Host            string        `envconfig:"SERVER_HOST" default:""`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

type Storage struct {
	// Type selects the storage backend ("memory" or "redis")
	Type       string        `envconfig:"STORAGE_TYPE" default:"memory"`
	RedisURL   string        `envconfig:"REDIS_URL" default:"redis://localhost:6379"`
	RedisPool  int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	RedisIdle  int           `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"168h"`
}

type Log struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("matchday", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
