package commands

import (
	"flag"

	"github.com/maksimkurb/mobile-manager/src/internal/api"
	"github.com/maksimkurb/mobile-manager/src/internal/components"
	"github.com/maksimkurb/mobile-manager/src/internal/config"
	"github.com/maksimkurb/mobile-manager/src/internal/domain"
	"github.com/maksimkurb/mobile-manager/src/internal/log"
)

// ServerCommand runs the web UI.
type ServerCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	cfg  *config.Config
	deps *domain.AppDependencies

	bindAddr string
}

// CreateServerCommand creates a new server command.
func CreateServerCommand() Runner {
	return &ServerCommand{
		fs: flag.NewFlagSet("server", flag.ExitOnError),
	}
}

// Name returns the command name.
func (c *ServerCommand) Name() string {
	return c.fs.Name()
}

// Init parses flags and loads configuration. -bind wins over ui.bind_address.
func (c *ServerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs.StringVar(&c.bindAddr, "bind", "", "Address to bind the web UI (default from config, "+config.DefaultUIBindAddress+")")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.bindAddr == "" {
		c.bindAddr = cfg.UI.BindAddress
	}

	c.deps = newDependencies(cfg)
	return nil
}

// Run serves the UI until interrupted.
func (c *ServerCommand) Run() error {
	router, err := api.NewRouter(c.deps, api.RouterOptions{
		PrivateSubnetOnly: c.cfg.UI.PrivateSubnetOnly,
		StaticDir:         c.cfg.GetAbsStaticDir(),
	})
	if err != nil {
		return err
	}

	log.Infof("Starting mobile-manager UI on %s", c.bindAddr)
	log.Infof("Mobiles API: %s", c.cfg.NormalizedAPIURL())
	if c.cfg.UI.PrivateSubnetOnly {
		log.Infof("Access restricted to private subnets only; public IPs get 403 Forbidden")
	}

	return runUntilSignal(components.NewHTTPServer("UI", c.bindAddr, router))
}
