package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/mobile-manager/src/internal/config"
)

// ShowConfigCommand prints the effective configuration as TOML.
type ShowConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

// CreateShowConfigCommand creates a new show-config command.
func CreateShowConfigCommand() Runner {
	return &ShowConfigCommand{
		fs: flag.NewFlagSet("show-config", flag.ExitOnError),
	}
}

func (c *ShowConfigCommand) Name() string {
	return c.fs.Name()
}

func (c *ShowConfigCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *ShowConfigCommand) Run() error {
	data, err := c.cfg.SerializeConfig()
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	_, err = c.ctx.stdout().Write(data)
	return err
}
