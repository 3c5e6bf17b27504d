package config

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	// EnvAPIURL overrides general.api_url when set.
	EnvAPIURL = "MOBILE_API_URL"

	DefaultAPIURL             = "http://localhost:8080"
	DefaultUIBindAddress      = "127.0.0.1:3000"
	DefaultBackendBindAddress = "127.0.0.1:8080"
)

type Config struct {
	// General holds settings shared by every command.
	General *GeneralConfig `toml:"general"`
	// UI holds settings of the web UI server.
	UI *UIConfig `toml:"ui"`
	// Backend holds settings of the bundled in-memory inventory service.
	Backend *BackendConfig `toml:"backend"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// APIURL is the base URL of the mobiles REST API, without the /api/mobiles suffix.
	APIURL string `toml:"api_url" json:"api_url" validate:"required,api_url"`
	// RequestTimeoutSeconds limits each API request (0 = no timeout).
	RequestTimeoutSeconds int `toml:"request_timeout_seconds" json:"request_timeout_seconds" validate:"gte=0"`
}

type UIConfig struct {
	// BindAddress is the host:port the web UI listens on.
	BindAddress string `toml:"bind_address" json:"bind_address" validate:"required,bind_address"`
	// StaticDir serves stylesheets from this directory instead of the embedded copy.
	StaticDir string `toml:"static_dir" json:"static_dir,omitempty"`
	// PrivateSubnetOnly rejects requests coming from public addresses.
	PrivateSubnetOnly bool `toml:"private_subnet_only" json:"private_subnet_only"`
}

type BackendConfig struct {
	// BindAddress is the host:port the inventory backend listens on.
	BindAddress string `toml:"bind_address" json:"bind_address" validate:"required,bind_address"`
	// SeedFile is an optional TOML file with initial [[mobile]] records.
	SeedFile string `toml:"seed_file" json:"seed_file,omitempty"`
}

// DefaultConfig returns a configuration usable without any file.
func DefaultConfig() *Config {
	return &Config{
		General: &GeneralConfig{
			APIURL: DefaultAPIURL,
		},
		UI: &UIConfig{
			BindAddress:       DefaultUIBindAddress,
			PrivateSubnetOnly: true,
		},
		Backend: &BackendConfig{
			BindAddress: DefaultBackendBindAddress,
		},
	}
}

// GetConfigDir returns the directory of the loaded file, or "" for defaults.
func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsSeedFile resolves backend.seed_file relative to the config file.
func (c *Config) GetAbsSeedFile() string {
	return c.resolvePath(c.Backend.SeedFile)
}

// GetAbsStaticDir resolves ui.static_dir relative to the config file.
func (c *Config) GetAbsStaticDir() string {
	return c.resolvePath(c.UI.StaticDir)
}

// RequestTimeout returns general.request_timeout_seconds as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.General.RequestTimeoutSeconds) * time.Second
}

// NormalizedAPIURL returns general.api_url without trailing slashes.
func (c *Config) NormalizedAPIURL() string {
	return strings.TrimRight(c.General.APIURL, "/")
}

func (c *Config) resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if dir := c.GetConfigDir(); dir != "" {
		return filepath.Join(dir, path)
	}
	return path
}
