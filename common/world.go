package common

// World holds the logical playfield size. All scaling and coordinate
// mapping is done against these values, never against the live window.
type World struct {
	GameWidth  float64
	GameHeight float64
}

// Valid reports whether both dimensions are positive.
func (w World) Valid() bool {
	return w.GameWidth > 0 && w.GameHeight > 0
}
