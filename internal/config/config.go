package config

import "github.com/joho/godotenv"

type Config interface {
	EnvConfig
	BackendConfig
	MetricsConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type BackendConfig interface {
	GetAPIBaseURL() string
}

type MetricsConfig interface {
	GetMetricsPrefix() string
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	// Optional .env file for local development; env vars win when both exist.
	_ = godotenv.Load()
	return mainConfig{}
}
