// Package config loads environment configuration for screenmode.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultDataDir    = "./data"
	defaultConfigFile = "screenmode.yml"
	defaultDPIAware   = true
)

// Config holds runtime configuration values.
type Config struct {
	DataDir     string
	PresetsPath string
	DPIAware    bool
}

// fileConfig mirrors the optional YAML config file.
type fileConfig struct {
	DataDir     string `yaml:"data_dir"`
	PresetsPath string `yaml:"presets_path"`
	DPIAware    *bool  `yaml:"dpi_aware"`
}

// Load reads configuration from screenmode.yml, the data dir's .env file,
// and environment variables, in increasing order of precedence.
func Load() (Config, error) {
	cfg := Config{
		DataDir:  defaultDataDir,
		DPIAware: defaultDPIAware,
	}

	fc, err := loadFileConfig(defaultConfigFile)
	if err != nil {
		return Config{}, err
	}
	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
	if fc.PresetsPath != "" {
		cfg.PresetsPath = fc.PresetsPath
	}
	if fc.DPIAware != nil {
		cfg.DPIAware = *fc.DPIAware
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	if cfg.PresetsPath == "" {
		cfg.PresetsPath = filepath.Join(cfg.DataDir, "presets.json")
	}
	cfg.PresetsPath = envString("PRESETS_PATH", cfg.PresetsPath)
	cfg.DPIAware = envBool("DPI_AWARE", cfg.DPIAware)

	return cfg, nil
}

// loadFileConfig parses the optional YAML config file. Missing files
// return zero values.
func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fc, nil
		}
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
