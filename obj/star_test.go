package obj

import (
	"errors"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starjump/common"
)

var testWorld = common.World{GameWidth: 800, GameHeight: 800}

func testFrames(n, w, h int) []*ebiten.Image {
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		frames[i] = ebiten.NewImage(w, h)
	}
	return frames
}

func newTestStar(t *testing.T, pos cp.Vector, displacement float64) *Star {
	t.Helper()
	s, err := NewStar(testFrames(5, 48, 48), pos, 800, 800, displacement, testWorld)
	if err != nil {
		t.Fatalf("NewStar: %v", err)
	}
	return s
}

func TestNewStarRequiresFrames(t *testing.T) {
	if _, err := NewStar(nil, cp.Vector{}, 800, 800, 0, testWorld); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
	frames := []*ebiten.Image{ebiten.NewImage(4, 4), nil}
	if _, err := NewStar(frames, cp.Vector{}, 800, 800, 0, testWorld); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames for nil frame, got %v", err)
	}
	if _, err := NewStar(testFrames(1, 4, 4), cp.Vector{}, 0, 800, 0, testWorld); !errors.Is(err, common.ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry for empty viewport, got %v", err)
	}
}

func TestNewStarInitialState(t *testing.T) {
	s := newTestStar(t, cp.Vector{X: 400, Y: 300}, 12)
	if s.Rotation != 0 || s.RotationVelocity != 0 || s.Speed != 0 || s.Dead() {
		t.Fatalf("unexpected initial state: %+v", s.Entity)
	}
	if s.Displacement != 12 || s.ViewportW != 800 || s.ViewportH != 800 {
		t.Fatalf("expected displacement and viewport to be stored, got %+v", s.Entity)
	}
	if w, h := s.NativeSize(); w != 48 || h != 48 {
		t.Fatalf("expected native 48x48, got %gx%g", w, h)
	}
}

func TestStarAnimationCycling(t *testing.T) {
	cases := []struct {
		name      string
		frames    int
		dt        float64
		wantFrame int
		wantCarry float64
	}{
		{"three_steps", 5, 250, 3, 10},
		{"wraps_two_frames", 2, 250, 1, 10},
		{"no_step", 5, 80, 0, 80},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := NewStar(testFrames(c.frames, 48, 48), cp.Vector{X: 400, Y: 300}, 800, 800, 0, testWorld)
			if err != nil {
				t.Fatalf("NewStar: %v", err)
			}
			if err := s.Update(nil, 0, c.dt); err != nil {
				t.Fatalf("Update: %v", err)
			}
			if s.Frame() != c.wantFrame {
				t.Fatalf("expected frame %d, got %d", c.wantFrame, s.Frame())
			}
			if math.Abs(s.clock.Accumulated()-c.wantCarry) > 1e-9 {
				t.Fatalf("expected carry %g, got %g", c.wantCarry, s.clock.Accumulated())
			}
			if s.Scaled().Image != s.frames[c.wantFrame] {
				t.Fatalf("expected scaled image to follow the current frame")
			}
		})
	}
}

func TestStarFrameIntervalOption(t *testing.T) {
	s, err := NewStar(testFrames(4, 8, 8), cp.Vector{X: 400}, 800, 800, 0, testWorld, WithFrameInterval(20))
	if err != nil {
		t.Fatalf("NewStar: %v", err)
	}
	_ = s.Update(nil, 0, 50)
	if s.Frame() != 2 {
		t.Fatalf("expected frame 2 with 20ms interval, got %d", s.Frame())
	}
}

func TestStarDeathThreshold(t *testing.T) {
	const disp = 100.0
	cases := []struct {
		name     string
		y        float64
		wantDead bool
	}{
		{"below_view", disp - 48 - 1, true},
		{"at_edge", disp - 48, false},
		{"just_above", disp - 48 + 1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestStar(t, cp.Vector{X: 400, Y: 300}, disp)
			s.Move(cp.Vector{X: 400, Y: c.y}, 16)
			if s.Dead() != c.wantDead {
				t.Fatalf("expected dead=%v at y=%g", c.wantDead, c.y)
			}
		})
	}
}

func TestStarMoveClampsX(t *testing.T) {
	cases := []struct {
		name  string
		x     float64
		wantX float64
	}{
		{"left_wall", 0, 24},
		{"right_wall", 1000, 776},
		{"inside", 300, 300},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestStar(t, cp.Vector{X: 400, Y: 300}, 0)
			got := s.Move(cp.Vector{X: c.x, Y: 310}, 16)
			if got.X != c.wantX || got.Y != 310 {
				t.Fatalf("expected (%g,310), got (%g,%g)", c.wantX, got.X, got.Y)
			}
			if s.Position != got {
				t.Fatalf("expected position to be stored")
			}
		})
	}
}

func TestStarRotationFollowsMovement(t *testing.T) {
	s := newTestStar(t, cp.Vector{X: 400, Y: 300}, 0)
	s.Move(cp.Vector{X: 410, Y: 300}, 10)
	if math.Abs(s.RotationVelocity-(-0.1)) > 1e-12 {
		t.Fatalf("moving right should lean by -0.1, got %g", s.RotationVelocity)
	}
	s.Move(cp.Vector{X: 390, Y: 300}, 20)
	if math.Abs(s.RotationVelocity-0.1) > 1e-12 {
		t.Fatalf("moving left should add 0.2, got %g", s.RotationVelocity)
	}

	// clamped target equals current x, so it counts as holding still
	s.Position.X = 24
	s.RotationVelocity = 1
	s.Move(cp.Vector{X: -50, Y: 300}, 10)
	if math.Abs(s.RotationVelocity-0.5) > 1e-12 {
		t.Fatalf("expected decay to 0.5, got %g", s.RotationVelocity)
	}
}

func TestStarRotationEasesToZero(t *testing.T) {
	for _, start := range []float64{3.7, -3.7} {
		s := newTestStar(t, cp.Vector{X: 400, Y: 300}, 0)
		s.RotationVelocity = start
		prev := math.Abs(start)
		for i := 0; i < 100; i++ {
			s.Move(cp.Vector{X: 400, Y: 300}, 16)
			if s.RotationVelocity*start < 0 {
				t.Fatalf("start %g: velocity overshot to %g", start, s.RotationVelocity)
			}
			if math.Abs(s.RotationVelocity) > prev {
				t.Fatalf("start %g: velocity grew to %g", start, s.RotationVelocity)
			}
			prev = math.Abs(s.RotationVelocity)
		}
		if s.RotationVelocity != 0 {
			t.Fatalf("start %g: expected velocity to settle at 0, got %g", start, s.RotationVelocity)
		}
	}
}

func TestStarBottomEdgeSymmetric(t *testing.T) {
	s := newTestStar(t, cp.Vector{X: 400, Y: 300}, 0)
	bl, br := s.BottomLeft(), s.BottomRight()
	if bl.X != 376 || br.X != 424 || bl.Y != 300 || br.Y != 300 {
		t.Fatalf("unexpected bottom edge %v %v", bl, br)
	}
	if s.Position.X-bl.X != br.X-s.Position.X {
		t.Fatalf("bottom edge is not symmetric")
	}
}

func TestStarResizeIdempotent(t *testing.T) {
	once := newTestStar(t, cp.Vector{X: 400, Y: 300}, 0)
	twice := newTestStar(t, cp.Vector{X: 400, Y: 300}, 0)
	twice.frames = once.frames

	if err := once.Resize(1024, 768); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := twice.Resize(1024, 768); err != nil {
			t.Fatalf("Resize: %v", err)
		}
	}
	if once.Scaled() != twice.Scaled() || once.rotatedW != twice.rotatedW || once.rotatedH != twice.rotatedH {
		t.Fatalf("resize is not idempotent: %+v vs %+v", once.Scaled(), twice.Scaled())
	}
	// crossed ratios: box is 48*768/800 wide and 48*1024/800 tall
	if s := once.Scaled(); s.W != 46 || s.H != 46 {
		t.Fatalf("expected 46x46, got %dx%d", s.W, s.H)
	}
}

func TestStarScreenGeometry(t *testing.T) {
	s := newTestStar(t, cp.Vector{X: 400, Y: 100}, 0)

	pos := s.Pos(800, 800)
	if pos.X != 376 || pos.Y != 652 {
		t.Fatalf("expected draw pos (376,652), got (%g,%g)", pos.X, pos.Y)
	}
	r := s.ScreenRect(800, 800)
	want := common.Rect{X: 361, Y: 637, W: 78, H: 78}
	if r != want {
		t.Fatalf("expected %+v, got %+v", want, r)
	}
}

func TestStarRotatedBoundsGrowAroundCenter(t *testing.T) {
	s := newTestStar(t, cp.Vector{X: 400, Y: 100}, 0)
	before := s.Pos(800, 800)

	s.Rotation = 45
	s.rotate()
	after := s.Pos(800, 800)

	diag := 48 * math.Sqrt2
	if math.Abs(s.rotatedW-diag) > 1e-9 || math.Abs(s.rotatedH-diag) > 1e-9 {
		t.Fatalf("expected rotated size %g, got %gx%g", diag, s.rotatedW, s.rotatedH)
	}
	// bottom center stays on the world position
	if math.Abs((after.X+s.rotatedW/2)-(before.X+24)) > 1e-9 {
		t.Fatalf("horizontal center moved: %g vs %g", after.X+s.rotatedW/2, before.X+24)
	}
	if math.Abs((after.Y+s.rotatedH)-(before.Y+48)) > 1e-9 {
		t.Fatalf("bottom moved: %g vs %g", after.Y+s.rotatedH, before.Y+48)
	}
}

func TestStarUpdateDrawsAndIntegratesRotation(t *testing.T) {
	s := newTestStar(t, cp.Vector{X: 400, Y: 300}, 0)
	s.RotationVelocity = -0.5
	target := ebiten.NewImage(640, 480)

	if err := s.Update(target, 40, 10); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.Rotation != -1 {
		t.Fatalf("expected rotation -1, got %g", s.Rotation)
	}
	if s.Displacement != 40 {
		t.Fatalf("expected displacement 40, got %g", s.Displacement)
	}

	// a frame change picks up the render target size
	if err := s.Update(target, 40, 100); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.ViewportW != 640 || s.ViewportH != 480 {
		t.Fatalf("expected viewport 640x480, got %dx%d", s.ViewportW, s.ViewportH)
	}
}
