package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"toytracker/internal/config"
)

var rootFlags struct {
	configPath string
	account    string
	input      string
	output     string
	verbose    bool
}

func main() {
	root := &cobra.Command{
		Use:           "toytracker",
		Short:         "Farming reports from the ATT toy tracker SavedVariables",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(os.Stderr)
			log.SetLevel(log.InfoLevel)
			if rootFlags.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&rootFlags.configPath, "config", config.DefaultConfigFile, "Config file (optional)")
	flags.StringVar(&rootFlags.account, "account", "", "WoW account folder name (overrides ACCOUNTNAME)")
	flags.StringVar(&rootFlags.input, "input", "", "SavedVariables file to read instead of the account path")
	flags.StringVar(&rootFlags.output, "output", "", "Directory for generated reports")
	flags.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Debug logging to stderr")

	root.AddCommand(exportCmd())
	root.AddCommand(zonesCmd())
	root.AddCommand(topCmd())
	root.AddCommand(reportCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(storeCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(initCmd())
	root.AddCommand(versionCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps a missing account to 2 so scripts can tell a setup problem
// from a failed run.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrMissingAccount):
		fmt.Fprintln(os.Stderr, err)
		return 2
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

// loadConfig layers command-line flags over the config file, .env and the
// environment.
func loadConfig() (*config.ProjectConfig, error) {
	cfg, err := loadConfigForStore()
	if err != nil {
		return nil, err
	}
	if _, err := cfg.SavedVariablesPath(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigForStore is loadConfig for commands that never read the
// SavedVariables file, so no account is needed.
func loadConfigForStore() (*config.ProjectConfig, error) {
	cfg, err := config.Load(rootFlags.configPath)
	if err != nil {
		return nil, err
	}
	if rootFlags.account != "" {
		cfg.Account = rootFlags.account
	}
	if rootFlags.input != "" {
		cfg.Input = rootFlags.input
	}
	if rootFlags.output != "" {
		cfg.OutputDir = rootFlags.output
	}
	if err := cfg.Validate(); err != nil && !errors.Is(err, config.ErrMissingAccount) {
		return nil, err
	}
	return cfg, nil
}
