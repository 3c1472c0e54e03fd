package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Strategy names accepted by the run configuration.
const (
	StrategyBasic    = "basic"
	StrategyExtended = "extended"
)

// Config holds the run configuration for a scoring pass. It is resolved
// once and passed into the run explicitly; nothing reads it as global
// state.
type Config struct {
	PapersDir  string `json:"papers_dir"`
	PolicyPath string `json:"policy_path"`
	OutputDir  string `json:"output_dir"`
	TopK       int    `json:"top_k"`
	Strategy   string `json:"strategy"`
}

// Default returns the built-in run configuration.
func Default() (cfg Config) {
	cfg = Config{
		PapersDir:  "data/papers_json",
		PolicyPath: "policy/checklist.json",
		OutputDir:  "results",
		TopK:       5,
		Strategy:   StrategyBasic,
	}
	return cfg
}

// ReportsPath returns the directory per-paper reports are written to.
func (c *Config) ReportsPath() (path string) {
	path = filepath.Join(c.OutputDir, "reports")
	return path
}

// Load resolves configuration: built-in defaults, then an optional JSON
// config file, then PAPERSCORE_* environment variables. A .env file in
// the working directory is loaded first if present.
func Load(configPath string) (cfg Config, err error) {
	cfg = Default()

	// Best-effort; a missing .env is fine.
	_ = godotenv.Load()

	if configPath != "" {
		var data []byte
		data, err = os.ReadFile(configPath)
		if err != nil {
			err = errors.Wrapf(err, "failed to read config file: %s", configPath)
			return cfg, err
		}

		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", configPath)
			return cfg, err
		}
	}

	applyEnv(&cfg)

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// applyEnv overrides configuration fields from PAPERSCORE_* environment
// variables. A malformed PAPERSCORE_TOP_K is ignored rather than fatal.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PAPERSCORE_PAPERS_DIR"); v != "" {
		cfg.PapersDir = v
	}
	if v := os.Getenv("PAPERSCORE_POLICY"); v != "" {
		cfg.PolicyPath = v
	}
	if v := os.Getenv("PAPERSCORE_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("PAPERSCORE_STRATEGY"); v != "" {
		cfg.Strategy = v
	}
	if v := os.Getenv("PAPERSCORE_TOP_K"); v != "" {
		k, castErr := cast.ToIntE(v)
		if castErr == nil {
			cfg.TopK = k
		}
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() (err error) {
	if c.PapersDir == "" {
		err = errors.New("papers_dir is required")
		return err
	}

	if c.OutputDir == "" {
		err = errors.New("output_dir is required")
		return err
	}

	if c.TopK < 1 {
		err = errors.Errorf("top_k must be at least 1, got %d", c.TopK)
		return err
	}

	switch c.Strategy {
	case StrategyBasic, StrategyExtended:
	default:
		err = errors.Errorf("unknown strategy: %s (use %s or %s)", c.Strategy, StrategyBasic, StrategyExtended)
		return err
	}

	return err
}
