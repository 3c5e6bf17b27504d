package commands

import (
	"flag"

	"github.com/maksimkurb/mobile-manager/src/internal/api"
	"github.com/maksimkurb/mobile-manager/src/internal/components"
	"github.com/maksimkurb/mobile-manager/src/internal/config"
	"github.com/maksimkurb/mobile-manager/src/internal/domain"
	"github.com/maksimkurb/mobile-manager/src/internal/inventory"
	"github.com/maksimkurb/mobile-manager/src/internal/log"
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// DevCommand runs the in-memory backend and the web UI in one process, with
// the UI talking to that backend regardless of general.api_url.
type DevCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	cfg   *config.Config
	store *inventory.Store

	uiBind  string
	apiBind string
	seed    string
}

// CreateDevCommand creates a new dev command.
func CreateDevCommand() Runner {
	return &DevCommand{
		fs: flag.NewFlagSet("dev", flag.ExitOnError),
	}
}

func (c *DevCommand) Name() string {
	return c.fs.Name()
}

func (c *DevCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs.StringVar(&c.uiBind, "ui-bind", "", "Address to bind the web UI (default from config)")
	c.fs.StringVar(&c.apiBind, "api-bind", "", "Address to bind the API (default from config)")
	c.fs.StringVar(&c.seed, "seed", "", "TOML file with initial [[mobile]] records")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.uiBind == "" {
		c.uiBind = cfg.UI.BindAddress
	}
	if c.apiBind == "" {
		c.apiBind = cfg.Backend.BindAddress
	}
	if c.seed == "" {
		c.seed = cfg.GetAbsSeedFile()
	}

	var records []models.Mobile
	if c.seed != "" {
		if records, err = inventory.LoadSeed(c.seed); err != nil {
			return err
		}
	}
	c.store, err = inventory.NewStore(records...)
	return err
}

func (c *DevCommand) Run() error {
	backend := components.NewHTTPServer("Backend", c.apiBind, api.NewBackendRouter(c.store))
	if err := backend.Start(); err != nil {
		return err
	}
	defer func() {
		if err := backend.Stop(); err != nil {
			log.Errorf("Failed to stop %s: %v", backend.Name(), err)
		}
	}()

	deps := domain.NewAppDependencies(domain.AppConfig{
		APIURL:         "http://" + backend.Addr(),
		RequestTimeout: c.cfg.RequestTimeout(),
	})
	router, err := api.NewRouter(deps, api.RouterOptions{
		PrivateSubnetOnly: c.cfg.UI.PrivateSubnetOnly,
		StaticDir:         c.cfg.GetAbsStaticDir(),
	})
	if err != nil {
		return err
	}

	return runUntilSignal(components.NewHTTPServer("UI", c.uiBind, router))
}
