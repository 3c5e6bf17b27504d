package commands

import (
	"flag"

	"github.com/maksimkurb/mobile-manager/src/internal/api"
	"github.com/maksimkurb/mobile-manager/src/internal/components"
	"github.com/maksimkurb/mobile-manager/src/internal/config"
	"github.com/maksimkurb/mobile-manager/src/internal/inventory"
	"github.com/maksimkurb/mobile-manager/src/internal/log"
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// BackendCommand runs the in-memory /api/mobiles service.
type BackendCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	store *inventory.Store

	bindAddr string
	seedFile string
}

// CreateBackendCommand creates a new backend command.
func CreateBackendCommand() Runner {
	return &BackendCommand{
		fs: flag.NewFlagSet("backend", flag.ExitOnError),
	}
}

// Name returns the command name.
func (c *BackendCommand) Name() string {
	return c.fs.Name()
}

// Init parses flags, loads configuration and seeds the store.
func (c *BackendCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs.StringVar(&c.bindAddr, "bind", "", "Address to bind the API (default from config, "+config.DefaultBackendBindAddress+")")
	c.fs.StringVar(&c.seedFile, "seed", "", "TOML file with initial [[mobile]] records")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}

	if c.bindAddr == "" {
		c.bindAddr = cfg.Backend.BindAddress
	}
	if c.seedFile == "" {
		c.seedFile = cfg.GetAbsSeedFile()
	}

	var seed []models.Mobile
	if c.seedFile != "" {
		if seed, err = inventory.LoadSeed(c.seedFile); err != nil {
			return err
		}
	}

	if c.store, err = inventory.NewStore(seed...); err != nil {
		return err
	}
	return nil
}

// Run serves the API until interrupted.
func (c *BackendCommand) Run() error {
	log.Infof("Starting mobiles API on %s with %d records", c.bindAddr, c.store.Len())

	return runUntilSignal(components.NewHTTPServer("Backend", c.bindAddr, api.NewBackendRouter(c.store)))
}
