package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggpd/gfx/tkcanvas"
	"github.com/gogpu/ggpd/patch"
)

// TkOptions holds flags for the tk command.
type TkOptions struct {
	*RootOptions
	Messages  []string
	TagPrefix string
	X, Y      int
}

// NewTkCommand creates the tk command.
func NewTkCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TkOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tk <script>",
		Short: "Print the Tk canvas commands of a GUI object",
		Long: `Print the Tk canvas commands of a GUI object.

The object is created on an in-memory canvas, receives the messages given
with -m on inlet 0 and is drawn once more as a first pass. Every command
sent to the canvas is printed, one per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTk(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Messages, "message", "m", nil, "message for inlet 0 (repeatable)")
	cmd.Flags().StringVar(&opts.TagPrefix, "tag-prefix", "", "use numbered item tags with this prefix instead of random ones")
	cmd.Flags().IntVar(&opts.X, "x", 0, "object x position")
	cmd.Flags().IntVar(&opts.Y, "y", 0, "object y position")

	return cmd
}

func runTk(cmd *cobra.Command, opts *TkOptions, path string) error {
	rt, class, err := loadClass(cmd, opts.RootOptions, path)
	if err != nil {
		return err
	}

	copts := []patch.Option{
		patch.WithZoom(opts.cfg.Zoom),
		patch.WithFontSize(opts.cfg.FontSize),
	}
	if opts.TagPrefix != "" {
		copts = append(copts, patch.WithTags(opts.TagPrefix))
	}
	s := &session{rt: rt, class: class, canvas: patch.New(copts...)}
	defer s.Close()

	if err := s.open(opts.RootOptions, tkcanvas.Name); err != nil {
		return err
	}
	s.canvas.Place(s.obj, opts.X, opts.Y)
	if err := s.deliverAll(opts.Messages); err != nil {
		printReports(cmd, s.canvas)
		return err
	}
	if s.obj.Surface() != nil {
		if err := s.obj.Repaint(true); err != nil {
			return err
		}
	}

	for _, c := range s.canvas.Commands() {
		fmt.Fprintln(cmd.OutOrStdout(), c)
	}
	return nil
}
