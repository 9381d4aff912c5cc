package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort            string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL         string `env:"DATABASE_URL,required"`
	DBMaxConns          int    `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns          int    `env:"DB_MIN_CONNS" envDefault:"1"`
	RedisAddr           string `env:"REDIS_ADDR"`
	RedisPassword       string `env:"REDIS_PASSWORD"`
	RedisDB             int    `env:"REDIS_DB" envDefault:"0"`
	SessionTTLHours     int    `env:"SESSION_TTL_HOURS" envDefault:"24"`
	SessionSweepMinutes int    `env:"SESSION_SWEEP_MINUTES" envDefault:"60"`
	ResultLimit         int    `env:"RESULT_LIMIT" envDefault:"12"`
	FuzzyThemes         bool   `env:"FUZZY_THEMES" envDefault:"false"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
