package signal

import "github.com/cwbudde/algo-vecmath"

// Mix adds src to dst sample by sample over their common length.
func Mix(dst, src []float64) {
	n := min(len(dst), len(src))
	vecmath.AddBlockInPlace(dst[:n], src[:n])
}

// Gain multiplies dst by g.
func Gain(dst []float64, g float64) {
	vecmath.ScaleBlock(dst, dst, g)
}

// Multiply multiplies dst by src sample by sample over their common length.
func Multiply(dst, src []float64) {
	n := min(len(dst), len(src))
	vecmath.MulBlockInPlace(dst[:n], src[:n])
}
