package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/patch"
)

// NewSendCommand creates the send command.
func NewSendCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <script> <inlet> <selector> [args...]",
		Short: "Deliver one message and print the outlet traffic",
		Long: `Deliver one message and print the outlet traffic.

Example:
  ggpd send counter.go 0 float 3`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			inlet, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("inlet %q: %w", args[1], err)
			}
			atoms := ggpd.ParseAtoms(strings.Join(args[3:], " "))
			return runSend(cmd, opts, args[0], inlet, ggpd.NewMessage(args[2], atoms...))
		},
	}
	return cmd
}

func runSend(cmd *cobra.Command, opts *RootOptions, path string, inlet int, msg ggpd.Message) error {
	rt, class, err := loadClass(cmd, opts, path)
	if err != nil {
		return err
	}
	s := &session{rt: rt, class: class, canvas: patch.New(patch.WithZoom(opts.cfg.Zoom))}
	defer s.Close()

	if err := s.open(opts, opts.cfg.Backend); err != nil {
		return err
	}
	err = s.obj.Deliver(inlet, msg)
	printSent(cmd, s.canvas)
	printReports(cmd, s.canvas)
	return err
}
