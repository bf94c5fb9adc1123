package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggpd/gfx/callback"
	"github.com/gogpu/ggpd/patch"
	"github.com/gogpu/ggpd/preview"
	"github.com/gogpu/ggpd/script"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Output   string
	Messages []string
	Watch    bool
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <script>",
		Short: "Render a GUI object to PNG",
		Long: `Render a GUI object to PNG.

The object draws through the callback backend into a software rasteriser.
Messages given with -m are delivered to inlet 0 before the final pass.
With --watch the script and the configured scripts are reloaded when they
change on disk and the PNG is written again, until interrupted.

Example:
  ggpd render dial.go -m "float 0.7" -o dial.png
  ggpd render dial.go --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "out.png", "PNG file to write")
	cmd.Flags().StringArrayVarP(&opts.Messages, "message", "m", nil, "message for inlet 0 (repeatable)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "re-render when a script changes")

	return cmd
}

func runRender(cmd *cobra.Command, opts *RenderOptions, path string) error {
	rt, class, err := loadClass(cmd, opts.RootOptions, path)
	if err != nil {
		return err
	}
	spec := class.Spec()
	if !spec.GUI {
		rt.Close()
		return fmt.Errorf("%s: class %s has no GUI", path, class.Name())
	}

	w, h := objectSize(opts.RootOptions, spec)
	r, err := preview.New(w, h)
	if err != nil {
		rt.Close()
		return err
	}
	defer r.Close()

	s := &session{rt: rt, class: class, canvas: patch.New(patch.WithDrawCallback(r.Handle))}
	defer s.Close()
	if err := s.open(opts.RootOptions, callback.Name); err != nil {
		return err
	}
	if err := s.deliverAll(opts.Messages); err != nil {
		return err
	}
	if err := renderPNG(cmd, opts, s, r); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}
	return watch(cmd, opts, s, path, func() error {
		return renderPNG(cmd, opts, s, r)
	})
}

func renderPNG(cmd *cobra.Command, opts *RenderOptions, s *session, r *preview.Renderer) error {
	r.Reset()
	before := r.Commands()
	if err := s.obj.Repaint(true); err != nil {
		return err
	}
	if err := r.Err(); err != nil {
		return err
	}
	if err := r.SavePNG(opts.Output); err != nil {
		return err
	}
	w, h := r.Size()
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d commands)\n", opts.Output, w, h, r.Commands()-before)
	return nil
}

// watch reloads changed scripts and calls redraw after each reload until
// the command context is done. Failed reloads and redraws are printed and
// the previous class stays in use.
func watch(cmd *cobra.Command, opts *RenderOptions, s *session, path string, redraw func() error) error {
	w, err := script.NewWatcher(append([]string{path}, opts.cfg.Scripts...)...)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-w.Errors():
			fmt.Fprintf(cmd.ErrOrStderr(), "error: watch: %v\n", err)
		case changed, ok := <-w.Changes():
			if !ok {
				return nil
			}
			if _, err := s.rt.Reload(changed); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				continue
			}
			if _, err := w.ReloadChanged(s.rt); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			}
			if err := redraw(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			}
		}
	}
}
