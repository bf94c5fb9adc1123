package gain

import "ggpd/pd"

var (
	Inlets        = 2
	Outlets       = 1
	SignalInlets  = 1
	SignalOutlets = 1
)

func Init(o *pd.Object) error {
	o.Vars()["gain"] = 0.5
	return nil
}

func Message(o *pd.Object, inlet int, msg pd.Message) error {
	if inlet == 1 && msg.Selector == "float" {
		g, _ := msg.Args[0].AsFloat()
		o.Vars()["gain"] = g
	}
	return nil
}

func Perform(o *pd.Object, in, out [][]float64) error {
	copy(out[0], in[0])
	pd.Gain(out[0], o.Vars()["gain"].(float64))
	return nil
}
