package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starjump/common"
)

// ScreenRectMargin is added to every screen rect, split evenly per side.
const ScreenRectMargin = 30.0

// Object is implemented by everything the world updates and draws.
type Object interface {
	// Resize rebuilds cached geometry for a new viewport. It must run
	// whenever the viewport changes, before the next draw or query.
	Resize(viewportW, viewportH int) error
	// Update advances the object by dtMs and draws it onto target.
	Update(target *ebiten.Image, displacement, dtMs float64) error
	Pos(screenW, screenH int) cp.Vector
	ScreenRect(screenW, screenH int) common.Rect
	Dead() bool
}

var (
	_ Object = (*Star)(nil)
	_ Object = (*Platform)(nil)
)

// Entity is the spatial state shared by every object. Positions are in
// world units with y growing upward.
type Entity struct {
	Position         cp.Vector
	Rotation         float64
	RotationVelocity float64
	Speed            float64
	Displacement     float64

	ViewportW int
	ViewportH int

	World common.World

	dead bool
}

func newEntity(pos cp.Vector, displacement float64, world common.World) Entity {
	return Entity{
		Position:     pos,
		Displacement: displacement,
		World:        world,
	}
}

func (e *Entity) Dead() bool {
	return e.dead
}

// viewport records the viewport size and returns the ratios used to scale
// native images. The axes are crossed: the width ratio comes from the
// viewport height and the height ratio from the viewport width.
func (e *Entity) viewport(viewportW, viewportH int) (widthRatio, heightRatio float64) {
	e.ViewportW = viewportW
	e.ViewportH = viewportH
	heightRatio = float64(viewportW) / e.World.GameHeight
	widthRatio = float64(viewportH) / e.World.GameWidth
	return widthRatio, heightRatio
}

func (e *Entity) screenPos(screenW, screenH int) cp.Vector {
	return common.WorldToScreen(e.Position, screenW, screenH, e.Displacement, e.World)
}

func targetSize(target *ebiten.Image, fallbackW, fallbackH int) (int, int) {
	if target == nil {
		return fallbackW, fallbackH
	}
	s := target.Bounds().Size()
	return s.X, s.Y
}
