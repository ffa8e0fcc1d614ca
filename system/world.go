package system

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starjump/common"
	"github.com/milk9111/starjump/obj"
	"github.com/milk9111/starjump/prefabs"
)

// Config is everything a World needs that does not change between runs.
type Config struct {
	World    common.World
	Star     prefabs.StarSpec
	Platform prefabs.PlatformSpec
	Tuning   prefabs.TuningSpec
	Seed     int64
}

// World owns the star and the platforms, and resolves landing, scrolling,
// spawning and removal between frames.
type World struct {
	Star      *obj.Star
	Platforms []*obj.Platform
	Scroller  *obj.Scroller

	GameOver bool
	// Best is the highest world y the star has reached.
	Best    float64
	Bounces int

	cfg    Config
	images obj.PlatformImageProvider
	rng    *rand.Rand

	velY  float64
	nextY float64
	viewW int
	viewH int
}

// NewWorld places the star above a light starting platform and fills the
// view with platforms.
func NewWorld(cfg Config, frames []*ebiten.Image, images obj.PlatformImageProvider, viewW, viewH int) (*World, error) {
	if images == nil {
		return nil, errors.New("world: nil platform images")
	}
	if !cfg.World.Valid() {
		return nil, fmt.Errorf("world: game size %gx%g: %w", cfg.World.GameWidth, cfg.World.GameHeight, common.ErrInvalidGeometry)
	}

	w := &World{
		Scroller: obj.NewScroller(cfg.Tuning.ScrollLead, cfg.Tuning.ScrollSmooth),
		cfg:      cfg,
		images:   images,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		viewW:    viewW,
		viewH:    viewH,
	}

	start := cp.Vector{X: cfg.Star.Transform.X, Y: cfg.Star.Transform.Y}
	star, err := obj.NewStar(frames, start, viewW, viewH, 0, cfg.World, obj.WithFrameInterval(cfg.Star.FrameMs))
	if err != nil {
		return nil, err
	}
	w.Star = star
	w.Best = start.Y

	units := cfg.Platform.MaxUnits
	width := float64(units * cfg.Platform.TileWidth)
	x := common.Clamp(start.X-width/2, 0, cfg.World.GameWidth-width)
	if _, err := w.addPlatform(false, cp.Vector{X: x, Y: start.Y - LandingOffset}, units); err != nil {
		return nil, err
	}
	w.nextY = start.Y - LandingOffset + w.gap()

	if err := w.spawn(); err != nil {
		return nil, err
	}
	return w, nil
}

// LandingOffset is how far below the star the starting platform sits.
const LandingOffset = 10.0

// Objects returns everything the world draws, platforms first.
func (w *World) Objects() []obj.Object {
	out := make([]obj.Object, 0, len(w.Platforms)+1)
	for _, p := range w.Platforms {
		out = append(out, p)
	}
	if w.Star != nil {
		out = append(out, w.Star)
	}
	return out
}

// SetTuning swaps in new tuning values, e.g. after a hot reload.
func (w *World) SetTuning(t prefabs.TuningSpec) {
	w.cfg.Tuning = t
	w.Scroller.SetLead(t.ScrollLead)
	w.Scroller.SetSmooth(t.ScrollSmooth)
}

func (w *World) Tuning() prefabs.TuningSpec {
	return w.cfg.Tuning
}

// Update runs one simulation step of dtMs milliseconds.
func (w *World) Update(in *obj.Input, dtMs float64) error {
	if w.GameOver {
		return nil
	}

	var moveX float64
	if in != nil {
		moveX = in.MoveX
		if in.TogglePressed {
			if err := w.ToggleAll(); err != nil {
				return err
			}
		}
	}

	t := w.cfg.Tuning
	w.velY -= t.Gravity * dtMs
	w.Star.Displacement = w.Scroller.Displacement
	w.Star.Move(w.Star.Position.Add(cp.Vector{X: moveX * t.MoveSpeed * dtMs, Y: w.velY * dtMs}), dtMs)

	if w.velY <= 0 {
		bl, br := w.Star.BottomLeft(), w.Star.BottomRight()
		for _, p := range w.Platforms {
			if p.IsStarColliding(bl, br) {
				w.velY = t.BounceSpeed
				w.Bounces++
				break
			}
		}
	}

	w.Best = max(w.Best, w.Star.Position.Y)
	w.Scroller.Follow(w.Star.Position.Y)

	w.cull()
	if err := w.spawn(); err != nil {
		return err
	}

	if w.Star.Dead() {
		w.GameOver = true
		log.Printf("star fell: best height %.0f, %d bounces", w.Best, w.Bounces)
	}
	return nil
}

// ToggleAll flips every platform between light and dark.
func (w *World) ToggleAll() error {
	for _, p := range w.Platforms {
		if err := p.ToggleDark(); err != nil {
			return err
		}
	}
	return nil
}

// Resize rebuilds every object's cached geometry for a new viewport.
func (w *World) Resize(viewW, viewH int) error {
	w.viewW, w.viewH = viewW, viewH
	for _, o := range w.Objects() {
		if err := o.Resize(viewW, viewH); err != nil {
			return err
		}
	}
	return nil
}

// Draw advances animation by dtMs and draws every visible object onto
// screen. The viewport is resized first if screen changed size.
func (w *World) Draw(screen *ebiten.Image, dtMs float64) error {
	s := screen.Bounds().Size()
	if s.X != w.viewW || s.Y != w.viewH {
		if err := w.Resize(s.X, s.Y); err != nil {
			return err
		}
	}

	disp := w.Scroller.Displacement
	view := w.Scroller.View(w.cfg.World)
	for _, p := range w.Platforms {
		if !view.Intersects(p.WorldBounds()) {
			p.Displacement = disp
			continue
		}
		if err := p.Update(screen, disp, dtMs); err != nil {
			return err
		}
	}
	return w.Star.Update(screen, disp, dtMs)
}

// cull drops dead platforms and those that scrolled out below the view.
func (w *World) cull() {
	view := w.Scroller.View(w.cfg.World)
	kept := w.Platforms[:0]
	for _, p := range w.Platforms {
		if p.Dead() || p.WorldBounds().T < view.B {
			continue
		}
		kept = append(kept, p)
	}
	clear(w.Platforms[len(kept):])
	w.Platforms = kept
}
