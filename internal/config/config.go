package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/rest"

	"mission-api/pkg/confkit"
	llmpkg "mission-api/pkg/llm"
)

// DefaultPort is used when neither the config file nor PORT sets one.
const DefaultPort = 3000

// PortEnv overrides the listen port.
const PortEnv = "PORT"

// CorsConf enables cross-origin access when Origins is non-empty. "*"
// allows any origin.
type CorsConf struct {
	Origins []string `json:",optional"`
}

// PromptConf customizes the instruction sent upstream.
type PromptConf struct {
	// System replaces the default system message.
	System string `json:",optional"`
	// Template is a text/template file for the user message, relative to
	// the main config file.
	Template string `json:",optional"`
	// Model is an alias from llm.yaml or a provider/model id; empty uses
	// the llm default model.
	Model string `json:",optional"`
}

type Config struct {
	rest.RestConf
	// Env indicates the running environment: test | dev | prod
	Env    string                         `json:",default=dev"`
	Cors   CorsConf                       `json:",optional"`
	LLM    confkit.Section[llmpkg.Config] `json:",optional"`
	Prompt PromptConf                     `json:",optional"`

	mainPath string
	baseDir  string
}

// CorsEnabled reports whether cross-origin headers should be served.
func (c *Config) CorsEnabled() bool {
	for _, o := range c.Cors.Origins {
		if strings.TrimSpace(o) != "" {
			return true
		}
	}
	return false
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	cfg, err := confkit.LoadFile[Config](absPath, true)
	if err != nil {
		return nil, err
	}

	cfg.mainPath = absPath
	cfg.baseDir = filepath.Dir(absPath)

	if err := cfg.applyPort(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.hydrateSections(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyPort() error {
	port, ok, err := confkit.EnvPort(PortEnv)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch {
	case ok:
		c.Port = port
	case c.Port == 0:
		c.Port = DefaultPort
	}
	return nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "":
		c.Env = "dev"
	case "test", "dev", "prod":
	default:
		return errors.New("config: env must be one of test|dev|prod")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if strings.TrimSpace(c.LLM.File) == "" && c.LLM.Value == nil {
		return errors.New("config: LLM.File is required")
	}
	return nil
}

func (c *Config) hydrateSections() error {
	base := c.baseDir

	if err := c.LLM.Hydrate(base, llmpkg.LoadConfig); err != nil {
		return fmt.Errorf("load llm config: %w", err)
	}
	if c.Prompt.Template != "" {
		c.Prompt.Template = confkit.ResolvePath(base, c.Prompt.Template)
	}
	return nil
}

func (c *Config) MainPath() string {
	return c.mainPath
}

func (c *Config) BaseDir() string {
	return c.baseDir
}
