package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything tunable from the environment
type Config struct {
	Addr      string `env:"ADDR" envDefault:":8080"`
	PublicURL string `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`

	LLMBaseURL string `env:"LLM_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	LLMAPIKey  string `env:"LLM_API_KEY"`
	LLMModel   string `env:"LLM_MODEL" envDefault:"llama-3.3-70b-versatile"`

	// QuestionTimeout auto-resolves an unanswered question as wrong.
	// Zero disables the deadline.
	QuestionTimeout time.Duration `env:"QUESTION_TIMEOUT" envDefault:"30s"`
	// OracleTimeout bounds a single oracle call.
	OracleTimeout time.Duration `env:"ORACLE_TIMEOUT" envDefault:"60s"`
}

// Load reads .env (when present) and parses the environment
func Load() (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Printf("config: loaded .env")
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
