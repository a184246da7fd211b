package config

import "time"

type KhaltiConfig struct {
	BaseURL   string        `yaml:"base_url"`
	SecretKey string        `yaml:"secret_key"`
	Timeout   time.Duration `yaml:"timeout"`
}

func loadKhaltiConfig() *KhaltiConfig {
	return &KhaltiConfig{
		BaseURL:   getEnv("KHALTI_BASE_URL", "https://a.khalti.com/api/v2"),
		SecretKey: getEnv("KHALTI_SECRET_KEY", ""),
		Timeout:   getEnvAsDuration("KHALTI_TIMEOUT", 15*time.Second),
	}
}
