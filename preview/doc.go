// Package preview rasterises callback backend commands with gg.
//
// A Renderer stands in for a host that paints objects itself: plug its
// Handle method in as the draw callback and every primitive the object
// emits is drawn into an in-memory image, which can be saved as PNG.
//
//	r, _ := preview.New(120, 60)
//	defer r.Close()
//	canvas.SetDrawCallback(r.Handle)
//	...
//	r.SavePNG("object.png")
//
// Coordinates are object-local; the image is exactly the object's size.
package preview
