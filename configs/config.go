package configs

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// AppConfig is the top-level coa_service.yaml configuration.
type AppConfig struct {
	Database  DatabaseConfig  `yaml:"database"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Engine    EngineConfig    `yaml:"engine"`
	CacheDir  string          `yaml:"cache_dir"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // "postgres" or "sqlite"
	DSN    string `yaml:"dsn"`
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// EngineConfig tunes the suggestion engine.
type EngineConfig struct {
	// ReviewConfidence is the manual-review floor. Zero means the engine
	// default.
	ReviewConfidence float64 `yaml:"review_confidence"`
	// CategoryRulesPath optionally overrides the built-in keyword tables.
	CategoryRulesPath string `yaml:"category_rules_path"`
}

// Load reads the yaml config and applies env overrides. ANTHROPIC_API_KEY
// beats the file so the key can stay out of it.
func Load(path string) (*AppConfig, error) {
	cfg := AppConfig{
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "coa_service.db",
		},
		CacheDir: "/tmp/coa_cache",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// missing file keeps defaults
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		cfg.Anthropic.APIKey = key
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if driver := os.Getenv("DATABASE_DRIVER"); driver != "" {
		cfg.Database.Driver = driver
	}

	return &cfg, nil
}

// NewProductionConfig loads config from CONFIG_PATH or the default location.
func NewProductionConfig() (*AppConfig, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "coa_service.yaml"
	}
	return Load(path)
}
