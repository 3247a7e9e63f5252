// Command arcade runs the side-scrolling shooter.
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// options holds the command line flags
type options struct {
	configPath string
	assetsDir  string
	debug      bool
	logLevel   string
	recordPath string
	replayPath string
}

// app carries what PersistentPreRunE prepared for the subcommands
type app struct {
	opts   options
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "arcade",
		Short: "Side-scrolling space shooter",
		Long: `arcade opens a window with a main menu over a scrolling star field.

Pick "New game" to fly the ship with the arrow keys; Escape returns to the menu.
Images are read from the assets directory; missing ones are replaced by
generated placeholders unless assets.fallback is off.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, a.opts)
			if err != nil {
				return err
			}
			a.cfg = cfg

			a.logger, err = newLogger(cfg.Logging)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.opts.configPath, "config", "c", "", "Config file (default: built-in game.yaml)")
	flags.StringVar(&a.opts.assetsDir, "assets", "", "Assets directory (overrides assets.dir)")
	flags.BoolVar(&a.opts.debug, "debug", false, "Draw debug hit boxes")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.Flags().StringVar(&a.opts.recordPath, "record", "", "Record input to file (e.g., --record replay.json)")
	root.Flags().StringVar(&a.opts.replayPath, "replay", "", "Play input back from a recording")
	root.MarkFlagsMutuallyExclusive("record", "replay")

	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return root, a
}

// loadConfig reads the config file, or the embedded one, and applies flags
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		var fsys fs.FS
		fsys, err = fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		cfg, err = config.NewFSLoader(fsys, "configs").Load(config.DefaultFile)
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("assets") {
		cfg.Assets.Dir = opts.assetsDir
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

func main() {
	root, _ := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
