// pkg/core/config.go
package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// DefaultStoreDir is where Nix keeps realised store paths
const DefaultStoreDir = "/nix/store"

// Config holds shenv configuration
type Config struct {
	StoreDir    string `yaml:"store_dir"`     // Nix store directory to scan
	IndexPath   string `yaml:"index"`         // Optional attribute index (.json or .json.xz)
	Relocate    string `yaml:"relocate"`      // Directory index store paths were copied into
	RegistryDir string `yaml:"registry"`      // Optional deps/ alias registry
	Triple      string `yaml:"triple"`        // Host triple for toolchain paths
	Debug       bool   `yaml:"debug"`         // Enable debug logging
	NoStoreScan bool   `yaml:"no_store_scan"` // Resolve from static packages and index only

	Logger *log.Logger `yaml:"-"` // Custom logger (optional)
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		StoreDir: getDefaultStoreDir(),
	}
}

// DefaultConfigPath returns $HOME/.config/shenv/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "shenv", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	for _, p := range []*string{&cfg.StoreDir, &cfg.IndexPath, &cfg.Relocate, &cfg.RegistryDir} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		*p = expanded
	}
	if cfg.StoreDir == "" {
		cfg.StoreDir = getDefaultStoreDir()
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getDefaultStoreDir() string {
	if dir := os.Getenv("SHENV_STORE_DIR"); dir != "" {
		return dir
	}
	return DefaultStoreDir
}
