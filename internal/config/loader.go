package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration and validates it. Each file is decoded
// over Default(), so it only needs the fields it changes.
// Search order: customPath -> ~/.pong/config.yaml -> ~/.pong/config.toml ->
// ./configs/pong.yaml -> embedded default.
// An explicit customPath must exist and parse; the other locations are
// skipped when missing or broken.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(ExpandHome(customPath))
		if err != nil {
			return Config{}, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			if err := cfg.Validate(); err == nil {
				return cfg, nil
			}
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// loadFile decodes one file, choosing the format by extension.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults. ext selects the format: ".toml"
// for TOML, anything else for YAML.
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := UserDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.toml"),
		)
	}
	return append(paths, filepath.Join("configs", "pong.yaml"))
}

// UserDir returns ~/.pong, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
