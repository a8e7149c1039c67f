package llm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL  = "https://openrouter.ai/api/v1"
	defaultModel    = "openai/gpt-4o-mini"
	defaultTimeout  = 120 * time.Second
	defaultLogLevel = "info"

	envAPIKey       = "OPENROUTER_API_KEY"
	envBaseURL      = "OPENROUTER_BASE_URL"
	envDefaultModel = "OPENROUTER_MODEL"
	envTimeout      = "OPENROUTER_TIMEOUT"
)

// Config is the upstream completion endpoint as loaded from llm.yaml.
type Config struct {
	BaseURL      string                 `yaml:"base_url"`
	APIKey       string                 `yaml:"api_key"`
	DefaultModel string                 `yaml:"default_model"`
	Timeout      time.Duration          `yaml:"-"`
	LogLevel     string                 `yaml:"log_level"`
	Headers      map[string]string      `yaml:"headers"`
	Models       map[string]ModelConfig `yaml:"models"`
}

// ModelConfig is keyed by alias in llm.yaml. Nil sampling fields leave the
// provider default in place.
type ModelConfig struct {
	Provider    string   `yaml:"provider"`
	ModelName   string   `yaml:"model_name"`
	Temperature *float64 `yaml:"temperature,omitempty"`
	MaxTokens   *int     `yaml:"max_tokens,omitempty"`
	TopP        *float64 `yaml:"top_p,omitempty"`
}

// fileConfig mirrors llm.yaml; timeout stays a string until resolve.
type fileConfig struct {
	BaseURL      string                 `yaml:"base_url"`
	APIKey       string                 `yaml:"api_key"`
	DefaultModel string                 `yaml:"default_model"`
	Timeout      string                 `yaml:"timeout"`
	LogLevel     string                 `yaml:"log_level"`
	Headers      map[string]string      `yaml:"headers"`
	Models       map[string]ModelConfig `yaml:"models"`
}

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open llm config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// LoadConfigFromReader parses llm.yaml. ${VAR} references are expanded, a
// non-empty OPENROUTER_* variable replaces its field, and blank fields fall
// back to the OpenRouter defaults.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read llm config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("unmarshal llm config: %w", err)
	}

	cfg, err := fc.resolve()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (fc fileConfig) resolve() (*Config, error) {
	timeout, err := parseTimeout(fromEnv(fc.Timeout, envTimeout))
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(fc.Headers))
	for k, v := range fc.Headers {
		headers[k] = os.ExpandEnv(v)
	}

	return &Config{
		BaseURL:      orDefault(fromEnv(fc.BaseURL, envBaseURL), defaultBaseURL),
		APIKey:       fromEnv(fc.APIKey, envAPIKey),
		DefaultModel: orDefault(fromEnv(fc.DefaultModel, envDefaultModel), defaultModel),
		Timeout:      timeout,
		LogLevel:     orDefault(fc.LogLevel, defaultLogLevel),
		Headers:      headers,
		Models:       fc.Models,
	}, nil
}

func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.APIKey) == "":
		return fmt.Errorf("llm config: api_key is required (set %s)", envAPIKey)
	case strings.TrimSpace(c.BaseURL) == "":
		return errors.New("llm config: base_url is required")
	case strings.TrimSpace(c.DefaultModel) == "":
		return errors.New("llm config: default_model is required")
	case c.Timeout <= 0:
		return errors.New("llm config: timeout must be positive")
	}
	return nil
}

// Model looks up an alias from the models table.
func (c *Config) Model(alias string) (ModelConfig, bool) {
	m, ok := c.Models[alias]
	return m, ok
}

// Clone copies c. The maps are copied; sampling pointers inside
// ModelConfig are shared.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	cp := *c
	if c.Models != nil {
		cp.Models = make(map[string]ModelConfig, len(c.Models))
		for k, v := range c.Models {
			cp.Models[k] = v
		}
	}
	if c.Headers != nil {
		cp.Headers = make(map[string]string, len(c.Headers))
		for k, v := range c.Headers {
			cp.Headers[k] = v
		}
	}
	return &cp
}

func parseTimeout(raw string) (time.Duration, error) {
	if strings.TrimSpace(raw) == "" {
		return defaultTimeout, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("llm config: invalid timeout %q: %w", raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("llm config: timeout must be positive, got %s", d)
	}
	return d, nil
}

// fromEnv expands value and lets a non-empty envKey win.
func fromEnv(value, envKey string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return os.ExpandEnv(value)
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
