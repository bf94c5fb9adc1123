package box

import (
	"fmt"

	"ggpd/pd"
)

var (
	Inlets  = 1
	Outlets = 1
	GUI     = true
	Width   = 20
	Height  = 10
)

func Message(o *pd.Object, inlet int, msg pd.Message) error {
	switch msg.Selector {
	case "float":
		v, _ := msg.Args[0].AsFloat()
		o.Vars()["filled"] = v != 0
		return o.Outlet(0, pd.NewMessage("float", pd.Float(v+1)))
	}
	return fmt.Errorf("no method for %s", msg.Selector)
}

func Paint(o *pd.Object, p *pd.Painter) error {
	p.SetColor(0, 0, 255)
	if filled, _ := o.Vars()["filled"].(bool); filled {
		p.FillAll()
		return nil
	}
	p.StrokeRect(0, 0, 20, 10, 1)
	return nil
}
