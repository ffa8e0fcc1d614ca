package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starjump/obj"
)

// spawn fills the world with platforms up to half a screen above the view.
func (w *World) spawn() error {
	view := w.Scroller.View(w.cfg.World)
	limit := view.T + w.cfg.World.GameHeight/2
	ps := w.cfg.Platform
	if w.nextY < view.B {
		// the view jumped past the spawn line; nothing below it is visible
		w.nextY = view.B
	}
	for w.nextY <= limit {
		units := ps.MinUnits
		if ps.MaxUnits > ps.MinUnits {
			units += w.rng.Intn(ps.MaxUnits - ps.MinUnits + 1)
		}
		width := float64(units * ps.TileWidth)
		x := w.rng.Float64() * max(0, w.cfg.World.GameWidth-width)
		dark := w.rng.Float64() < ps.DarkChance

		if _, err := w.addPlatform(dark, cp.Vector{X: x, Y: w.nextY}, units); err != nil {
			return err
		}
		w.nextY += w.gap()
	}
	return nil
}

func (w *World) gap() float64 {
	ps := w.cfg.Platform
	return ps.MinGap + w.rng.Float64()*(ps.MaxGap-ps.MinGap)
}

func (w *World) addPlatform(dark bool, pos cp.Vector, units int) (*obj.Platform, error) {
	p, err := obj.NewPlatform(w.images, dark, pos, float64(units), w.viewW, w.viewH, w.Scroller.Displacement, w.cfg.World)
	if err != nil {
		return nil, err
	}
	w.Platforms = append(w.Platforms, p)
	return p, nil
}
