package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultConfigFileName is the configuration file looked up in the working directory.
	DefaultConfigFileName = "transfers.toml"

	// EnvConfigPath names a configuration file when no explicit path is given.
	EnvConfigPath = "TRANSFERS_CONFIG"

	// EnvLogLevel overrides logging.level.
	EnvLogLevel = "TRANSFERS_LOG_LEVEL"
)

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading config from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load resolves configuration in order of precedence:
// 1. Explicit path (if provided)
// 2. The file named by TRANSFERS_CONFIG
// 3. Current working directory (./transfers.toml)
// 4. Default configuration
//
// Environment overrides are applied last. Returns the configuration and the
// path it was loaded from, empty when defaults were used.
func Load(explicitPath string) (*Config, string, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path == "" {
		cwdPath := filepath.Join(".", DefaultConfigFileName)
		if fileExists(cwdPath) {
			path = cwdPath
		}
	}

	if path == "" {
		cfg := Default()
		if err := applyEnv(cfg); err != nil {
			return nil, "", &LoadError{Path: "environment", Err: err}
		}
		return cfg, "", nil
	}

	cfg, err := loadFromFile(path)
	if err != nil {
		return nil, "", &LoadError{Path: path, Err: err}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, "", &LoadError{Path: path, Err: err}
	}
	return cfg, path, nil
}

// loadFromFile reads and parses a TOML configuration file.
func loadFromFile(path string) (*Config, error) {
	// Missing keys keep their defaults
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	level := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel)))
	if level == "" {
		return nil
	}

	cfg.Logging.Level = LogLevel(level)
	if err := cfg.Logging.Validate(); err != nil {
		return fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	return nil
}

// Save writes a configuration to a TOML file.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	header := `# Inventory transfer planner configuration
#
# Column names must match the snapshot header exactly.

`
	if _, err := f.WriteString(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	return f.Close()
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
