package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/mobile-manager/src/internal/log"
)

// LoadConfig reads the TOML file at configPath on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if configPath == "" {
		log.Debugf("No configuration file given, using defaults")
		return config, nil
	}

	configFile := filepath.Clean(configPath)
	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s", configFile)
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := toml.Unmarshal(content, config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	// Tables left out of the file decode to nil.
	defaults := DefaultConfig()
	if config.General == nil {
		config.General = defaults.General
	}
	if config.UI == nil {
		config.UI = defaults.UI
	}
	if config.Backend == nil {
		config.Backend = defaults.Backend
	}

	config._absConfigFilePath = configFile
	log.Debugf("Configuration file path: %s", configFile)

	return config, nil
}

// ApplyEnvironment overrides values from environment variables.
func (c *Config) ApplyEnvironment() {
	if url, ok := os.LookupEnv(EnvAPIURL); ok && strings.TrimSpace(url) != "" {
		log.Debugf("Using API URL from %s", EnvAPIURL)
		c.General.APIURL = strings.TrimSpace(url)
	}
}

// SerializeConfig renders the configuration back to TOML.
func (c *Config) SerializeConfig() ([]byte, error) {
	var sb strings.Builder
	enc := toml.NewEncoder(&sb)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
