package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// DebugDraw outlines the screen rect of every object. Light platforms,
// dark platforms and the star each get their own color.
func DebugDraw(screen *ebiten.Image, objects ...Object) {
	if screen == nil {
		return
	}
	s := screen.Bounds().Size()
	for _, o := range objects {
		if o == nil {
			continue
		}
		r := o.ScreenRect(s.X, s.Y)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, debugColor(o), false)
	}
}

func debugColor(o Object) color.Color {
	switch v := o.(type) {
	case *Star:
		return colornames.Red
	case *Platform:
		if v.Dark() {
			return colornames.Slategray
		}
		return colornames.Lime
	default:
		return colornames.White
	}
}
