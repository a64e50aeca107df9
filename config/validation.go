package config

import (
	"fmt"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateModelConfig(&config.Model); err != nil {
		return fmt.Errorf("model config validation failed: %w", err)
	}

	if err := validateRankingConfig(&config.Ranking); err != nil {
		return fmt.Errorf("ranking config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(cfg *ServerConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive, got %v", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive, got %v", cfg.WriteTimeout)
	}
	return nil
}

func validateDatabaseConfig(cfg *DatabaseConfig) error {
	if cfg.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if cfg.MaxConns < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", cfg.MaxConns)
	}
	if cfg.MinConns < 0 || cfg.MinConns > cfg.MaxConns {
		return fmt.Errorf("min connections must be between 0 and max connections, got %d", cfg.MinConns)
	}
	return nil
}

func validateModelConfig(cfg *ModelConfig) error {
	if cfg.URL == "" {
		return fmt.Errorf("scorer URL must not be empty")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("scorer timeout must be positive, got %v", cfg.Timeout)
	}
	return nil
}

func validateRankingConfig(cfg *RankingConfig) error {
	if cfg.DefaultTopK < 1 {
		return fmt.Errorf("default top-k must be at least 1, got %d", cfg.DefaultTopK)
	}
	if cfg.MaxTopK < cfg.DefaultTopK {
		return fmt.Errorf("max top-k must be at least the default top-k, got %d", cfg.MaxTopK)
	}
	if cfg.CandidateMultiplier < 1 {
		return fmt.Errorf("candidate multiplier must be at least 1, got %d", cfg.CandidateMultiplier)
	}
	if cfg.CandidateWindowHours < 1 {
		return fmt.Errorf("candidate window must be at least 1 hour, got %d", cfg.CandidateWindowHours)
	}
	if cfg.InteractionLimit < 1 {
		return fmt.Errorf("interaction limit must be at least 1, got %d", cfg.InteractionLimit)
	}
	if cfg.LookbackDays < 1 {
		return fmt.Errorf("lookback days must be at least 1, got %d", cfg.LookbackDays)
	}
	return nil
}
