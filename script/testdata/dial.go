package dial

import (
	"fmt"

	"ggpd/pd"
)

var (
	Inlets  = 1
	Outlets = 1
	GUI     = true
	Width   = 40
	Height  = 20
)

func Init(o *pd.Object) error {
	o.Vars()["value"] = 0.0
	return nil
}

func Message(o *pd.Object, inlet int, msg pd.Message) error {
	switch msg.Selector {
	case "float":
		v, _ := msg.Args[0].AsFloat()
		o.Vars()["value"] = v
		if err := o.Outlet(0, pd.NewMessage("float", pd.Float(v*2))); err != nil {
			return err
		}
		return o.Repaint(false)
	case "bang":
		v := o.Vars()["value"].(float64)
		return o.Outlet(0, pd.NewMessage("float", pd.Float(v)))
	case "crash":
		var m map[string]int
		m["x"] = 1
	}
	return fmt.Errorf("no method for %s", msg.Selector)
}

func Paint(o *pd.Object, p *pd.Painter) error {
	w, h := p.Size()
	p.SetColor(255, 255, 255)
	p.FillAll()
	p.SetColor(0, 0, 0)
	v := o.Vars()["value"].(float64)
	p.FillRect(0, 0, float64(w)*v, float64(h))
	return nil
}

func Mouse(o *pd.Object, ev pd.Event) error {
	if ev.Kind == pd.Down {
		n, _ := o.Vars()["downs"].(int)
		o.Vars()["downs"] = n + 1
	}
	return nil
}
