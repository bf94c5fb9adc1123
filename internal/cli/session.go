package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/bridge"
	"github.com/gogpu/ggpd/patch"
	"github.com/gogpu/ggpd/script"
)

// session is one script object running on an in-memory canvas.
type session struct {
	rt     *script.Runtime
	class  *script.Class
	canvas *patch.Canvas
	obj    *bridge.Object
}

// loadClass starts a runtime with the configured scripts and the class
// in path.
func loadClass(cmd *cobra.Command, opts *RootOptions, path string) (*script.Runtime, *script.Class, error) {
	rt, err := script.New(script.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	if err != nil {
		return nil, nil, err
	}
	for _, p := range opts.cfg.Scripts {
		if _, err := rt.LoadFile(p); err != nil {
			rt.Close()
			return nil, nil, err
		}
	}
	class, err := rt.LoadFile(path)
	if err != nil {
		rt.Close()
		return nil, nil, err
	}
	return rt, class, nil
}

// objectSize returns the size a GUI class is created with.
func objectSize(opts *RootOptions, spec bridge.Spec) (w, h int) {
	if spec.GUI && spec.Width == 0 && spec.Height == 0 {
		return opts.cfg.Width, opts.cfg.Height
	}
	return spec.Width, spec.Height
}

func (s *session) open(opts *RootOptions, backend string) error {
	spec := s.class.Spec()
	w, h := objectSize(opts, spec)
	obj, err := bridge.New(s.canvas, spec, s.class.NewBinding(),
		bridge.WithBackend(backend),
		bridge.WithBlockSize(opts.cfg.BlockSize),
		bridge.WithSize(w, h),
	)
	if err != nil {
		return err
	}
	s.obj = obj
	return nil
}

func (s *session) Close() error {
	var err error
	if s.obj != nil {
		err = s.obj.Close()
	}
	if cerr := s.rt.Close(); err == nil {
		err = cerr
	}
	return err
}

// deliverAll sends every "selector args..." message to inlet 0. A bare
// number is a float message and an empty string a bang.
func (s *session) deliverAll(msgs []string) error {
	for _, m := range msgs {
		msg := ggpd.MessageFromAtoms(ggpd.ParseAtoms(m))
		if err := s.obj.Deliver(0, msg); err != nil {
			return err
		}
	}
	return nil
}

func printSent(cmd *cobra.Command, c *patch.Canvas) {
	for _, sent := range c.Sent() {
		fmt.Fprintf(cmd.OutOrStdout(), "outlet %d: %s\n", sent.Outlet, sent.Message)
	}
}

func printReports(cmd *cobra.Command, c *patch.Canvas) {
	for _, r := range c.Reports() {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", strings.TrimSpace(r.Err.Error()))
	}
}
