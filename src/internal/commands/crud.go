package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/maksimkurb/mobile-manager/src/internal/domain"
	"github.com/maksimkurb/mobile-manager/src/internal/manager"
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// clientCommand is the shared part of the commands that call the API.
type clientCommand struct {
	fs     *flag.FlagSet
	ctx    *AppContext
	client domain.MobileClient
}

func newClientCommand(name string) clientCommand {
	return clientCommand{fs: flag.NewFlagSet(name, flag.ExitOnError)}
}

// Name returns the command name.
func (c *clientCommand) Name() string {
	return c.fs.Name()
}

func (c *clientCommand) init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}

	c.client = newDependencies(cfg).MobileClient()
	return nil
}

// idArg returns the single positional id argument.
func (c *clientCommand) idArg() (string, error) {
	if c.fs.NArg() != 1 || c.fs.Arg(0) == "" {
		return "", fmt.Errorf("usage: %s <id>", c.fs.Name())
	}
	return c.fs.Arg(0), nil
}

// ListCommand prints every record as a table.
type ListCommand struct {
	clientCommand
}

// CreateListCommand creates a new list command.
func CreateListCommand() Runner {
	return &ListCommand{clientCommand: newClientCommand("list")}
}

func (c *ListCommand) Init(args []string, ctx *AppContext) error {
	return c.init(args, ctx)
}

func (c *ListCommand) Run() error {
	mobiles, err := c.client.ListAll(context.Background())
	if err != nil {
		return fmt.Errorf("%s: %w", manager.MsgFetchFailed, err)
	}

	out := c.ctx.stdout()
	if len(mobiles) == 0 {
		fmt.Fprintln(out, "No mobiles found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBRAND\tMODEL\tPRICE\tCOLOR")
	for _, m := range mobiles {
		form := manager.FormFromMobile(m)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", form.ID, form.Brand, form.Model, form.Price, form.Color)
	}
	return w.Flush()
}

// GetCommand prints one record as indented JSON.
type GetCommand struct {
	clientCommand
	id string
}

// CreateGetCommand creates a new get command.
func CreateGetCommand() Runner {
	return &GetCommand{clientCommand: newClientCommand("get")}
}

func (c *GetCommand) Init(args []string, ctx *AppContext) error {
	if err := c.init(args, ctx); err != nil {
		return err
	}

	id, err := c.idArg()
	if err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *GetCommand) Run() error {
	mobile, err := c.client.GetByID(context.Background(), c.id)
	if err != nil || mobile == nil {
		return fmt.Errorf("%s (id %s): %v", manager.MsgNotFound, c.id, err)
	}
	return printJSON(c.ctx, mobile)
}

// SaveCommand implements both add and update. The record is validated with
// the same rules as the web form before any request is sent.
type SaveCommand struct {
	clientCommand
	update bool
	form   manager.Form
}

// CreateAddCommand creates a new add command.
func CreateAddCommand() Runner {
	return &SaveCommand{clientCommand: newClientCommand("add")}
}

// CreateUpdateCommand creates a new update command.
func CreateUpdateCommand() Runner {
	return &SaveCommand{clientCommand: newClientCommand("update"), update: true}
}

func (c *SaveCommand) Init(args []string, ctx *AppContext) error {
	c.fs.StringVar(&c.form.ID, manager.FieldID, "", "Mobile id")
	c.fs.StringVar(&c.form.Brand, manager.FieldBrand, "", "Brand")
	c.fs.StringVar(&c.form.Model, manager.FieldModel, "", "Model")
	c.fs.StringVar(&c.form.Price, manager.FieldPrice, "", "Price, a positive number")
	c.fs.StringVar(&c.form.Color, manager.FieldColor, "", "Color")

	if err := c.init(args, ctx); err != nil {
		return err
	}

	if verr := manager.Validate(c.form); verr != nil {
		return fmt.Errorf("%s", verr.Message())
	}
	return nil
}

func (c *SaveCommand) Run() error {
	mobile, err := c.form.Mobile()
	if err != nil {
		return err
	}

	var saved *models.Mobile
	if c.update {
		saved, err = c.client.Update(context.Background(), mobile)
		if err != nil {
			return fmt.Errorf("%s: %w", manager.MsgUpdateFailed, err)
		}
		fmt.Fprintln(c.ctx.stdout(), manager.MsgUpdated)
	} else {
		saved, err = c.client.Add(context.Background(), mobile)
		if err != nil {
			return fmt.Errorf("%s: %w", manager.MsgAddFailed, err)
		}
		fmt.Fprintln(c.ctx.stdout(), manager.MsgAdded)
	}

	if saved != nil && c.ctx.Verbose {
		return printJSON(c.ctx, saved)
	}
	return nil
}

// DeleteCommand removes a record and prints the server's confirmation.
type DeleteCommand struct {
	clientCommand
	id string
}

// CreateDeleteCommand creates a new delete command.
func CreateDeleteCommand() Runner {
	return &DeleteCommand{clientCommand: newClientCommand("delete")}
}

func (c *DeleteCommand) Init(args []string, ctx *AppContext) error {
	if err := c.init(args, ctx); err != nil {
		return err
	}

	id, err := c.idArg()
	if err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *DeleteCommand) Run() error {
	message, err := c.client.DeleteByID(context.Background(), c.id)
	if err != nil {
		return fmt.Errorf("%s: %w", manager.MsgDeleteFailed, err)
	}
	fmt.Fprintln(c.ctx.stdout(), message)
	return nil
}

func printJSON(ctx *AppContext, v interface{}) error {
	enc := json.NewEncoder(ctx.stdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
