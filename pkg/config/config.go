package config

import "time"

// Market definition market_service YAML structure
type Market struct {
	Port       string        `mapstructure:"port"`
	IP         string        `mapstructure:"ip"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`

	PostgreSQL  DatabaseConfig    `mapstructure:"pg"`
	RedisMarket RedisConfig       `mapstructure:"redis"`
	MinIO       MinIOConfig       `mapstructure:"minio"`
	Maintenance MaintenanceConfig `mapstructure:"maintenance"`
}

// MaintenanceConfig definition maintenance gate setting
type MaintenanceConfig struct {
	// cache TTL in milliseconds, default 5000
	CacheTTL int `mapstructure:"cache_ttl_ms"`
	// upstream fetch timeout in milliseconds, default 2000
	FetchTimeout int `mapstructure:"fetch_timeout_ms"`
}

// RedisConfig definition redis setting
type RedisConfig struct {
	RedisDB int `mapstructure:"redis_db"`
}

// MinIOConfig definition minio setting
type MinIOConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	BucketName string `mapstructure:"bucket_name"`
	UseSSL     bool   `mapstructure:"use_ssl"`

	RetryInterval int `mapstructure:"retry_interval"`
	RetryCount    int `mapstructure:"retry_count"`
}

// DatabaseConfig definition db setting
type DatabaseConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Database      string `mapstructure:"database"`
	RetryInterval int    `mapstructure:"retry_interval"`
	RetryCount    int    `mapstructure:"retry_count"`
}
