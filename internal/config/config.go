package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/kapu/vocab-sampler-go/pkg/errors"
)

type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Sampler SamplerConfig `yaml:"sampler"`
	Lexical LexicalConfig `yaml:"lexical"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type DatasetConfig struct {
	Path string `yaml:"path" env:"VOCAB_DATASET_PATH" env-default:"data/words.csv"`
}

type SamplerConfig struct {
	Count int    `yaml:"count" env:"VOCAB_SAMPLE_COUNT" env-default:"10"`
	Level string `yaml:"level" env:"VOCAB_LEVEL"`
	Seed  int64  `yaml:"seed"  env:"VOCAB_SEED"` // 0 selects a time-based seed
}

type LexicalConfig struct {
	APIKey       string        `yaml:"api_key"       env:"WORDS_API_KEY"`
	APIHost      string        `yaml:"api_host"      env:"WORDS_API_HOST" env-default:"wordsapiv1.p.rapidapi.com"`
	BaseURL      string        `yaml:"base_url"      env:"WORDS_API_BASE_URL" env-default:"https://wordsapiv1.p.rapidapi.com"`
	Timeout      time.Duration `yaml:"timeout"       env:"WORDS_API_TIMEOUT" env-default:"10s"`
	RequestDelay time.Duration `yaml:"request_delay" env:"WORDS_API_REQUEST_DELAY" env-default:"100ms"`
}

type OutputConfig struct {
	Path string `yaml:"path" env:"VOCAB_OUTPUT_PATH" env-default:"out/session.json"`
}

type LoggingConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file"  env:"LOG_FILE"`
}

// Load reads configuration with priority ENV > YAML > defaults. A .env file
// in the working directory is folded into the environment first. When path
// is empty only ENV and defaults apply; a non-empty path must exist.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file %s", path), err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, errors.NewConfigError("failed to read environment", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// HasAPIKey reports whether enrichment can run. A missing key is the
// degraded mode (selection and raw reporting still proceed), never a
// validation failure.
func (c *Config) HasAPIKey() bool {
	return c.Lexical.APIKey != ""
}

func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return errors.NewConfigError("VOCAB_DATASET_PATH is required", nil)
	}
	if c.Sampler.Count < 0 {
		return errors.NewConfigError("VOCAB_SAMPLE_COUNT must not be negative", nil)
	}
	if c.Lexical.BaseURL == "" {
		return errors.NewConfigError("WORDS_API_BASE_URL is required", nil)
	}
	if c.Lexical.APIHost == "" {
		return errors.NewConfigError("WORDS_API_HOST is required", nil)
	}
	if c.Lexical.Timeout <= 0 {
		return errors.NewConfigError("WORDS_API_TIMEOUT must be positive", nil)
	}
	if c.Lexical.RequestDelay < 0 {
		return errors.NewConfigError("WORDS_API_REQUEST_DELAY must not be negative", nil)
	}
	if c.Output.Path == "" {
		return errors.NewConfigError("VOCAB_OUTPUT_PATH is required", nil)
	}
	return nil
}
