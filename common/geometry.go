package common

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// ErrInvalidGeometry is returned when a scaling input has a zero, negative or
// non-finite dimension.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Scaled is an image paired with the pixel size it should be drawn at.
// The source texture is never resampled; the scale is applied at draw time.
type Scaled struct {
	Image *ebiten.Image
	W, H  int
}

// Size returns the drawn size as floats.
func (s Scaled) Size() (float64, float64) {
	return float64(s.W), float64(s.H)
}

// Apply scales geo so that the source image covers W x H pixels.
func (s Scaled) Apply(geo *ebiten.GeoM) {
	if s.Image == nil {
		return
	}
	b := s.Image.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	geo.Scale(float64(s.W)/float64(b.Dx()), float64(s.H)/float64(b.Dy()))
}

func positive(vs ...float64) bool {
	for _, v := range vs {
		if !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// AspectFit computes the largest size with the aspect ratio of ix/iy that
// fits inside the bx/by box. Wide images are fitted to the box width first,
// tall and square images to the box height; if the other axis then
// overflows, the size is derived from that axis instead. Sizes are
// truncated to whole pixels and never drop below 1.
func AspectFit(ix, iy, bx, by float64) (int, int, error) {
	if !positive(ix, iy, bx, by) {
		return 0, 0, fmt.Errorf("common: aspect fit %gx%g into %gx%g: %w", ix, iy, bx, by, ErrInvalidGeometry)
	}

	var sx, sy float64
	if ix > iy {
		// fit to width
		scale := bx / ix
		sy = scale * iy
		if sy > by {
			scale = by / iy
			sx = scale * ix
			sy = by
		} else {
			sx = bx
		}
	} else {
		// fit to height
		scale := by / iy
		sx = scale * ix
		if sx > bx {
			scale = bx / ix
			sx = bx
			sy = scale * iy
		} else {
			sy = by
		}
	}

	return max(1, int(sx)), max(1, int(sy)), nil
}

// AspectScale fits img into the bx/by box while keeping its aspect ratio.
func AspectScale(img *ebiten.Image, bx, by float64) (Scaled, error) {
	if img == nil {
		return Scaled{}, fmt.Errorf("common: aspect scale nil image: %w", ErrInvalidGeometry)
	}
	b := img.Bounds()
	w, h, err := AspectFit(float64(b.Dx()), float64(b.Dy()), bx, by)
	if err != nil {
		return Scaled{}, err
	}
	return Scaled{Image: img, W: w, H: h}, nil
}

// WorldToScreen maps a world position to pixel coordinates on a screen of
// the given size. World y grows upward and the bottom of the screen sits at
// the current displacement; screen y grows downward.
func WorldToScreen(pos cp.Vector, screenW, screenH int, displacement float64, w World) cp.Vector {
	sw, sh := float64(screenW), float64(screenH)
	return cp.Vector{
		X: pos.X * sw / w.GameWidth,
		Y: sh - (pos.Y-displacement)*sh/w.GameHeight,
	}
}

// ScaleRect returns a rect at the origin that is widthPct of the screen
// width, keeping the source rect's proportions. Height is scaled by the same
// factor times heightPct; it is not corrected to fit the screen height.
func ScaleRect(screen, source Rect, widthPct, heightPct float64) (Rect, error) {
	if !positive(source.W) {
		return Rect{}, fmt.Errorf("common: scale rect from width %g: %w", source.W, ErrInvalidGeometry)
	}
	f := screen.W / source.W
	return Rect{W: source.W * f * widthPct, H: source.H * f * heightPct}, nil
}
