package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/mobile-manager/src/internal/commands"
	"github.com/maksimkurb/mobile-manager/src/internal/config"
	"github.com/maksimkurb/mobile-manager/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	flag.StringVar(&ctx.ConfigPath, "config", "", "Path to configuration file (optional)")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Mobile inventory manager\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [command options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  server                  Run the web UI\n")
		fmt.Fprintf(os.Stderr, "  backend                 Run the in-memory mobiles API\n")
		fmt.Fprintf(os.Stderr, "  dev                     Run the API and the web UI together\n")
		fmt.Fprintf(os.Stderr, "  list                    List all mobiles\n")
		fmt.Fprintf(os.Stderr, "  get <id>                Show one mobile\n")
		fmt.Fprintf(os.Stderr, "  add                     Add a mobile (-id -brand -model -price -color)\n")
		fmt.Fprintf(os.Stderr, "  update                  Update a mobile (-id -brand -model -price -color)\n")
		fmt.Fprintf(os.Stderr, "  delete <id>             Delete a mobile\n")
		fmt.Fprintf(os.Stderr, "  show-config             Print the effective configuration\n\n")
		fmt.Fprintf(os.Stderr, "The API base URL comes from $%s, then [general] api_url, then %s.\n\n", config.EnvAPIURL, config.DefaultAPIURL)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateServerCommand(),
		commands.CreateBackendCommand(),
		commands.CreateDevCommand(),
		commands.CreateListCommand(),
		commands.CreateGetCommand(),
		commands.CreateAddCommand(),
		commands.CreateUpdateCommand(),
		commands.CreateDeleteCommand(),
		commands.CreateShowConfigCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
