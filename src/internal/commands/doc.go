// Package commands implements the mobile-manager subcommands.
//
// Each command implements the Runner interface:
//   - Init(): parse arguments, load configuration, build dependencies
//   - Run(): execute the command
//   - Name(): return the command name used for dispatch
//
// # Available Commands
//
//   - server: run the web UI (Manager View)
//   - backend: run the in-memory /api/mobiles service
//   - dev: run backend and web UI in one process
//   - list, get, add, update, delete: call the API from the terminal
//   - show-config: print the effective configuration
//
// # Example Usage
//
//	cmd := commands.CreateListCommand()
//	ctx := &commands.AppContext{ConfigPath: "/etc/mobile-manager.toml"}
//	if err := cmd.Init(nil, ctx); err != nil {
//	    log.Fatalf("Failed to initialize command: %v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("Failed to run command: %v", err)
//	}
package commands
