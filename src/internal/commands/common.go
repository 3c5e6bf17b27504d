package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/maksimkurb/mobile-manager/src/internal/components"
	"github.com/maksimkurb/mobile-manager/src/internal/config"
	"github.com/maksimkurb/mobile-manager/src/internal/domain"
	"github.com/maksimkurb/mobile-manager/src/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool

	// Stdout receives command output. Nil means os.Stdout.
	Stdout io.Writer
}

func (c *AppContext) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

// loadAndValidateConfigOrFail loads configuration, applies environment
// overrides and validates the result.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	cfg.ApplyEnvironment()

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// newDependencies builds the production dependency container from cfg.
func newDependencies(cfg *config.Config) *domain.AppDependencies {
	return domain.NewAppDependencies(domain.AppConfig{
		APIURL:         cfg.NormalizedAPIURL(),
		RequestTimeout: cfg.RequestTimeout(),
	})
}

// runUntilSignal starts servers in order and blocks until one of them fails
// or SIGINT/SIGTERM arrives. Servers are stopped in reverse order.
func runUntilSignal(servers ...*components.HTTPServer) error {
	var started []*components.HTTPServer
	defer func() {
		for i := len(started) - 1; i >= 0; i-- {
			if err := started[i].Stop(); err != nil {
				log.Errorf("Failed to stop %s: %v", started[i].Name(), err)
			}
		}
	}()

	serverErrors := make(chan error, len(servers))
	for _, server := range servers {
		if err := server.Start(); err != nil {
			return err
		}
		started = append(started, server)

		go func(s *components.HTTPServer) {
			if err, ok := <-s.Errors(); ok {
				serverErrors <- err
			}
		}(server)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down...", sig)
	}

	return nil
}
