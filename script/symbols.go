package script

import (
	"reflect"

	"github.com/cogentcore/yaegi/interp"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/bridge"
	"github.com/gogpu/ggpd/gfx"
	"github.com/gogpu/ggpd/interaction"
	"github.com/gogpu/ggpd/signal"
)

// ImportPath is the import path scripts use for the object API.
const ImportPath = "ggpd/pd"

// Symbols are the exports of the "ggpd/pd" package.
var Symbols = interp.Exports{
	ImportPath + "/pd": {
		// objects and messages
		"Object":     reflect.ValueOf((*bridge.Object)(nil)),
		"Atom":       reflect.ValueOf((*ggpd.Atom)(nil)),
		"Message":    reflect.ValueOf((*ggpd.Message)(nil)),
		"Float":      reflect.ValueOf(ggpd.Float),
		"Symbol":     reflect.ValueOf(ggpd.Symbol),
		"Floats":     reflect.ValueOf(ggpd.Floats),
		"NewMessage": reflect.ValueOf(ggpd.NewMessage),
		"ParseAtoms": reflect.ValueOf(ggpd.ParseAtoms),

		// drawing
		"Painter":  reflect.ValueOf((*gfx.Painter)(nil)),
		"Path":     reflect.ValueOf((*gfx.Path)(nil)),
		"NewPath":  reflect.ValueOf(gfx.NewPath),
		"Color":    reflect.ValueOf((*gfx.Color)(nil)),
		"RGB":      reflect.ValueOf(gfx.RGB),
		"RGBA":     reflect.ValueOf(gfx.RGBA),
		"ColorID":  reflect.ValueOf(gfx.ColorID),
		"ParseHex": reflect.ValueOf(gfx.ParseHex),

		// pointer
		"Event":     reflect.ValueOf((*interaction.Event)(nil)),
		"EventKind": reflect.ValueOf((*interaction.EventKind)(nil)),
		"State":     reflect.ValueOf((*interaction.State)(nil)),
		"Down":      reflect.ValueOf(interaction.Down),
		"Up":        reflect.ValueOf(interaction.Up),
		"Move":      reflect.ValueOf(interaction.Move),
		"Drag":      reflect.ValueOf(interaction.Drag),

		// signal blocks
		"Mix":      reflect.ValueOf(signal.Mix),
		"Gain":     reflect.ValueOf(signal.Gain),
		"Multiply": reflect.ValueOf(signal.Multiply),
	},
}
