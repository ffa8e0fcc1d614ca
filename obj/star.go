package obj

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starjump/common"
	"github.com/milk9111/starjump/component"
)

// ErrNoFrames is returned when a star is built without animation frames.
var ErrNoFrames = errors.New("star: no animation frames")

const (
	// rotation velocity change per ms while moving sideways
	rotationAccel = 0.01
	// rotation velocity decay per ms while holding still
	rotationDecay = 0.05
	// Rotation advances by RotationVelocity every rotationStepMs
	rotationStepMs = 5.0
)

// Star is the animated avatar. It cycles through its frames on a fixed
// interval and leans into sideways movement.
type Star struct {
	Entity

	frames []*ebiten.Image
	clock  *component.FrameClock

	nativeW float64
	nativeH float64

	scaled common.Scaled
	// size of scaled after rotation
	rotatedW float64
	rotatedH float64
}

type StarOption func(*Star)

// WithFrameInterval overrides the default 80ms frame interval.
func WithFrameInterval(ms float64) StarOption {
	return func(s *Star) {
		if ms > 0 {
			s.clock.IntervalMs = ms
		}
	}
}

// NewStar creates a star whose bottom center sits at pos. All frames are
// scaled using the size of the first frame.
func NewStar(frames []*ebiten.Image, pos cp.Vector, viewportW, viewportH int, displacement float64, world common.World, opts ...StarOption) (*Star, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	for i, f := range frames {
		if f == nil {
			return nil, fmt.Errorf("star: frame %d is nil: %w", i, ErrNoFrames)
		}
	}

	b := frames[0].Bounds()
	s := &Star{
		Entity:  newEntity(pos, displacement, world),
		frames:  frames,
		clock:   component.NewFrameClock(len(frames), component.DefaultFrameIntervalMs),
		nativeW: float64(b.Dx()),
		nativeH: float64(b.Dy()),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Resize(viewportW, viewportH); err != nil {
		return nil, err
	}
	return s, nil
}

// Resize rescales the current frame for the viewport.
func (s *Star) Resize(viewportW, viewportH int) error {
	widthRatio, heightRatio := s.viewport(viewportW, viewportH)
	scaled, err := common.AspectScale(s.frames[s.clock.Frame()], s.nativeW*widthRatio, s.nativeH*heightRatio)
	if err != nil {
		return fmt.Errorf("star: resize to %dx%d: %w", viewportW, viewportH, err)
	}
	s.scaled = scaled
	s.rotate()
	return nil
}

// rotate recomputes the bounding box of the scaled image turned by
// Rotation degrees about its center.
func (s *Star) rotate() {
	w, h := s.scaled.Size()
	rad := s.Rotation * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	s.rotatedW = w*cos + h*sin
	s.rotatedH = w*sin + h*cos
}

// Move places the star at newPos and returns where it actually ended up.
// X is kept inside the playfield. Falling below the bottom of the view
// kills the star.
func (s *Star) Move(newPos cp.Vector, dtMs float64) cp.Vector {
	half := s.nativeW / 2
	x := newPos.X
	if x < half {
		x = half
	}
	if x > s.World.GameWidth-half {
		x = s.World.GameWidth - half
	}
	y := newPos.Y
	if y < s.Displacement-s.nativeH {
		s.dead = true
	}

	switch {
	case s.Position.X < x:
		s.RotationVelocity -= rotationAccel * dtMs
	case s.Position.X > x:
		s.RotationVelocity += rotationAccel * dtMs
	default:
		s.RotationVelocity = common.Approach(s.RotationVelocity, rotationDecay*dtMs)
	}

	s.Position = cp.Vector{X: x, Y: y}
	return s.Position
}

// Update spins and animates the star, then draws it onto target.
func (s *Star) Update(target *ebiten.Image, displacement, dtMs float64) error {
	s.Rotation += dtMs / rotationStepMs * s.RotationVelocity

	w, h := targetSize(target, s.ViewportW, s.ViewportH)
	if s.clock.Advance(dtMs) > 0 {
		if err := s.Resize(w, h); err != nil {
			return err
		}
	}

	s.Displacement = displacement
	s.rotate()

	if target == nil {
		return nil
	}
	sw, sh := s.scaled.Size()
	op := &ebiten.DrawImageOptions{}
	s.scaled.Apply(&op.GeoM)
	op.GeoM.Translate(-sw/2, -sh/2)
	// screen y points down, so a positive angle turns counterclockwise
	op.GeoM.Rotate(-s.Rotation * math.Pi / 180)
	pos := s.Pos(w, h)
	op.GeoM.Translate(pos.X+s.rotatedW/2, pos.Y+s.rotatedH/2)
	op.Filter = ebiten.FilterLinear
	target.DrawImage(s.scaled.Image, op)
	return nil
}

// Frame returns the index of the frame currently shown.
func (s *Star) Frame() int {
	return s.clock.Frame()
}

// NativeSize returns the size of the first frame.
func (s *Star) NativeSize() (float64, float64) {
	return s.nativeW, s.nativeH
}

// Scaled returns the cached scaled frame.
func (s *Star) Scaled() common.Scaled {
	return s.scaled
}

func (s *Star) BottomLeft() cp.Vector {
	return cp.Vector{X: s.Position.X - s.nativeW/2, Y: s.Position.Y}
}

func (s *Star) BottomRight() cp.Vector {
	return cp.Vector{X: s.Position.X + s.nativeW/2, Y: s.Position.Y}
}

// Pos returns the top-left draw position. The bottom center of the rotated
// image sits on the star's world position.
func (s *Star) Pos(screenW, screenH int) cp.Vector {
	p := s.screenPos(screenW, screenH)
	return cp.Vector{X: p.X - s.rotatedW/2, Y: p.Y - s.rotatedH}
}

func (s *Star) ScreenRect(screenW, screenH int) common.Rect {
	p := s.Pos(screenW, screenH)
	return common.Rect{X: p.X, Y: p.Y, W: s.rotatedW, H: s.rotatedH}.Inflate(ScreenRectMargin, ScreenRectMargin)
}
