// Package cli implements the ggpd command.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Config  string
	Verbose bool

	cfg config.Config
}

// NewRootCommand creates the root command for the ggpd CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ggpd",
		Short: "ggpd - scripted patch objects",
		Long: `Run scripted patch objects outside a patching host.

Scripts are Go source files evaluated by an embedded interpreter. Objects
run on an in-memory canvas and draw through the Tk canvas backend or the
callback backend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "configuration file (YAML)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewTkCommand(opts))
	cmd.AddCommand(NewSendCommand(opts))

	return cmd
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.Config != "" {
		var err error
		if cfg, err = config.Load(o.Config); err != nil {
			return err
		}
	}
	level, err := cfg.Level()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if o.Verbose {
		level = slog.LevelDebug
	}
	ggpd.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	o.cfg = cfg
	return nil
}
