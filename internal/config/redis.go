package config

import "time"

type RedisConfig struct {
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	Password string        `yaml:"password"`
	Database int           `yaml:"database"`
	PoolSize int           `yaml:"pool_size"`
	TTL      time.Duration `yaml:"ttl"`
}

func loadRedisConfig() *RedisConfig {
	return &RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnvAsInt("REDIS_PORT", 6379),
		Password: getEnv("REDIS_PASSWORD", ""),
		Database: getEnvAsInt("REDIS_DATABASE", 0),
		PoolSize: getEnvAsInt("REDIS_POOL_SIZE", 10),
		TTL:      getEnvAsDuration("REDIS_TTL", 15*time.Minute),
	}
}
