package config

import (
	"time"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Model    ModelConfig    `json:"model"`
	Ranking  RankingConfig  `json:"ranking"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9100"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	Host           string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port           string        `json:"port" env:"DB_PORT" default:"5432"`
	User           string        `json:"user" env:"DB_USER" default:"devuser"`
	Password       string        `json:"-" env:"DB_PASSWORD" default:"devpassword"`
	Name           string        `json:"name" env:"DB_NAME" default:"pressdb"`
	MaxConns       int           `json:"max_conns" env:"DB_MAX_CONNS" default:"20"`
	MinConns       int           `json:"min_conns" env:"DB_MIN_CONNS" default:"5"`
	ConnectTimeout time.Duration `json:"connect_timeout" env:"DB_CONNECT_TIMEOUT" default:"30s"`
}

// ModelConfig locates the relevance scorer sidecar. The model itself
// stays a black box; all the engine requires is a numeric score per
// article, deterministic for equal input.
type ModelConfig struct {
	URL     string        `json:"url" env:"SCORE_MODEL_URL" default:"http://score-model:9200"`
	Timeout time.Duration `json:"timeout" env:"SCORE_MODEL_TIMEOUT" default:"10s"`
}

// RankingConfig carries the tunable limits of the ranking pipeline.
type RankingConfig struct {
	DefaultTopK int `json:"default_top_k" env:"RANKING_DEFAULT_TOP_K" default:"20"`
	MaxTopK     int `json:"max_top_k" env:"RANKING_MAX_TOP_K" default:"100"`

	// CandidateMultiplier widens the candidate pool relative to the
	// requested result size so boosting and diversity have room to
	// reorder.
	CandidateMultiplier int `json:"candidate_multiplier" env:"RANKING_CANDIDATE_MULTIPLIER" default:"3"`

	// CandidateWindowHours bounds how old a candidate article may be.
	CandidateWindowHours int `json:"candidate_window_hours" env:"RANKING_CANDIDATE_WINDOW_HOURS" default:"24"`

	// InteractionLimit and LookbackDays bound the history window that
	// feeds preference profiles.
	InteractionLimit int `json:"interaction_limit" env:"RANKING_INTERACTION_LIMIT" default:"100"`
	LookbackDays     int `json:"lookback_days" env:"RANKING_LOOKBACK_DAYS" default:"30"`
}

// Load reads configuration from environment variables, applying struct
// tag defaults, then validates the result.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := loadFromEnvironment(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
