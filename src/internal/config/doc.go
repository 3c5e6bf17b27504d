// Package config handles configuration loading and validation for mobile-manager.
//
// Configuration is read from an optional TOML file and then overridden by the
// environment. The only value the UI strictly needs is the base URL of the
// mobiles REST API; everything else has defaults.
//
// # Configuration Structure
//
//	[general]
//	api_url = "http://localhost:8080"   # base URL, "/api/mobiles" is appended
//	request_timeout_seconds = 0         # 0 = transport default
//
//	[ui]
//	bind_address = "127.0.0.1:3000"
//	static_dir = ""                     # serve css from disk instead of the binary
//	private_subnet_only = true
//
//	[backend]
//	bind_address = "127.0.0.1:8080"
//	seed_file = ""                      # TOML file with [[mobile]] tables
//
// The MOBILE_API_URL environment variable takes precedence over general.api_url.
//
// # Example Usage
//
//	cfg, err := config.LoadConfig(path)
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	cfg.ApplyEnvironment()
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package config
