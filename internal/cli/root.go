// Package cli implements the blockfit command line.
//
// Commands:
//   - catalog: list every shape the game can deal
//   - place: check a placement against a board without opening a window
//
// The play command lives with the binary since it needs a display.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/plus3/blockfit/catalog"
	"github.com/plus3/blockfit/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ctxKey int

const configKey ctxKey = 0

// ConfigFrom returns the configuration loaded by the root command.
func ConfigFrom(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// LoadCatalog builds the catalog named by the configuration, falling back to
// the built-in patterns.
func LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cfg := ConfigFrom(ctx)
	logger := LoggerFrom(ctx)

	if cfg.Catalog == "" {
		c, err := catalog.Build(catalog.Defaults)
		if err != nil {
			return nil, err
		}
		logger.Debug().Int("shapes", c.Len()).Msg("built default catalog")
		return c, nil
	}

	c, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", cfg.Catalog).Int("shapes", c.Len()).Msg("loaded catalog")
	return c, nil
}

// NewRoot returns the root command with the headless subcommands attached.
// Extra commands are added as given.
func NewRoot(stderr io.Writer, extra ...*cobra.Command) *cobra.Command {
	var (
		verbose     bool
		configPath  string
		catalogPath string
	)

	root := &cobra.Command{
		Use:           "blockfit",
		Short:         "blockfit places polyomino pieces on a 20x20 board",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, !cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if catalogPath != "" {
				cfg.Catalog = catalogPath
			}

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if verbose {
				level = zerolog.DebugLevel
			}

			logger := newLogger(stderr, level)
			ctx := logger.WithContext(cmd.Context())
			ctx = context.WithValue(ctx, configKey, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "blockfit.toml", "configuration file")
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "TOML pattern file replacing the built-in shapes")

	root.AddCommand(newCatalogCmd())
	root.AddCommand(newPlaceCmd())
	for _, cmd := range extra {
		root.AddCommand(cmd)
	}
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute(extra ...*cobra.Command) {
	root := NewRoot(os.Stderr, extra...)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
