package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/config"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
)

type rootFlags struct {
	configPath string
	envFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront serves a small shop built from configurable buttons",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a storefront YAML config (defaults to the built-in store)")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Dotenv file with STOREFRONT_* overrides")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newRoutesCmd())
	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadApp resolves configuration and builds the logger for a command.
func loadApp(cmd *cobra.Command, flags *rootFlags, operation string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigPath: flags.configPath,
		EnvFile:    flags.envFile,
	})
	if err != nil {
		return nil, nil, newCommandError(operation, "loading configuration", err, "Fix the configuration errors shown above and try again.")
	}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Logging.HumanReadable,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, newCommandError(operation, "creating logger", err, "Use one of trace, debug, info, warn or error for logging.level.")
	}

	return cfg, log.Component("command." + operation), nil
}
