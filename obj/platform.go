package obj

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starjump/common"
)

// LandingBand is how far above or below a platform's top the star's
// bottom edge may be and still count as touching it.
const LandingBand = 30.0

// PlatformImageProvider builds platform images. It must return the same
// image for the same arguments; platforms query it on every toggle.
type PlatformImageProvider interface {
	PlatformImage(unitWidth float64, dark bool) (*ebiten.Image, error)
}

// Platform is a ledge the star can land on while it is light.
// Position is the top-left corner of the platform in world units.
type Platform struct {
	Entity

	dark      bool
	unitWidth float64
	provider  PlatformImageProvider

	image  *ebiten.Image
	width  float64
	height float64
	scaled common.Scaled
}

func NewPlatform(provider PlatformImageProvider, dark bool, pos cp.Vector, unitWidth float64, viewportW, viewportH int, displacement float64, world common.World) (*Platform, error) {
	if provider == nil {
		return nil, errors.New("platform: nil image provider")
	}
	p := &Platform{
		Entity:    newEntity(pos, displacement, world),
		dark:      dark,
		unitWidth: unitWidth,
		provider:  provider,
	}
	if err := p.loadImage(); err != nil {
		return nil, err
	}
	if err := p.Resize(viewportW, viewportH); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Platform) loadImage() error {
	img, err := p.provider.PlatformImage(p.unitWidth, p.dark)
	if err != nil {
		return fmt.Errorf("platform: image for width %g dark=%v: %w", p.unitWidth, p.dark, err)
	}
	if img == nil {
		return fmt.Errorf("platform: provider returned no image for width %g: %w", p.unitWidth, common.ErrInvalidGeometry)
	}
	b := img.Bounds()
	p.image = img
	p.width = float64(b.Dx())
	p.height = float64(b.Dy())
	return nil
}

func (p *Platform) Resize(viewportW, viewportH int) error {
	widthRatio, heightRatio := p.viewport(viewportW, viewportH)
	scaled, err := common.AspectScale(p.image, p.width*widthRatio, p.height*heightRatio)
	if err != nil {
		return fmt.Errorf("platform: resize to %dx%d: %w", viewportW, viewportH, err)
	}
	p.scaled = scaled
	return nil
}

// IsStarColliding reports whether the star's bottom edge rests on the
// platform. Dark platforms never collide. The test is a vertical band
// around the top plus a horizontal overlap, not a full rect intersection.
func (p *Platform) IsStarColliding(bottomLeft, bottomRight cp.Vector) bool {
	if p.dark {
		return false
	}
	top := p.Position.Y
	return top-LandingBand < bottomLeft.Y && bottomLeft.Y < top+LandingBand &&
		bottomRight.X >= p.Position.X &&
		bottomLeft.X <= p.Position.X+p.width
}

// ToggleDark flips the platform between light and dark and reloads its
// image. On failure the platform keeps its previous state.
func (p *Platform) ToggleDark() error {
	p.dark = !p.dark
	if err := p.loadImage(); err != nil {
		p.dark = !p.dark
		return err
	}
	return p.Resize(p.ViewportW, p.ViewportH)
}

func (p *Platform) Update(target *ebiten.Image, displacement, dtMs float64) error {
	p.Displacement = displacement
	if target == nil {
		return nil
	}
	w, h := targetSize(target, p.ViewportW, p.ViewportH)
	pos := p.Pos(w, h)
	op := &ebiten.DrawImageOptions{}
	p.scaled.Apply(&op.GeoM)
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterNearest
	target.DrawImage(p.scaled.Image, op)
	return nil
}

func (p *Platform) Dark() bool         { return p.dark }
func (p *Platform) UnitWidth() float64 { return p.unitWidth }

// Top is the y coordinate of the landing surface.
func (p *Platform) Top() float64 {
	return p.Position.Y
}

// Size returns the native image size in world units.
func (p *Platform) Size() (float64, float64) {
	return p.width, p.height
}

// Scaled returns the cached scaled image.
func (p *Platform) Scaled() common.Scaled {
	return p.scaled
}

// Pos returns the top-left draw position.
func (p *Platform) Pos(screenW, screenH int) cp.Vector {
	return p.screenPos(screenW, screenH)
}

func (p *Platform) ScreenRect(screenW, screenH int) common.Rect {
	pos := p.Pos(screenW, screenH)
	w, h := p.scaled.Size()
	return common.Rect{X: pos.X, Y: pos.Y, W: w, H: h}.Inflate(ScreenRectMargin, ScreenRectMargin)
}

// IsOnscreen always reports true. Visibility culling is done by the owner
// using WorldBounds.
func (p *Platform) IsOnscreen(displacement float64) bool {
	return true
}

// WorldBounds returns the platform's box in world space.
func (p *Platform) WorldBounds() cp.BB {
	return cp.BB{
		L: p.Position.X,
		B: p.Position.Y - p.height,
		R: p.Position.X + p.width,
		T: p.Position.Y,
	}
}
