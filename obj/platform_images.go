package obj

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starjump/assets"
	"github.com/milk9111/starjump/common"
)

type platformKey struct {
	units int
	dark  bool
}

// PlatformImages builds platform strips out of repeated tiles and caches
// them by width and darkness.
type PlatformImages struct {
	TileW int
	TileH int

	light *ebiten.Image
	dark  *ebiten.Image
	cache map[platformKey]*ebiten.Image
}

func NewPlatformImages(tileW, tileH int, light, dark, edge color.Color) *PlatformImages {
	return &PlatformImages{
		TileW: tileW,
		TileH: tileH,
		light: assets.PlatformTile(tileW, tileH, light, edge),
		dark:  assets.PlatformTile(tileW, tileH, dark, edge),
		cache: map[platformKey]*ebiten.Image{},
	}
}

// PlatformImage returns a strip unitWidth tiles wide. Fractional widths
// are rounded to the nearest whole tile.
func (pi *PlatformImages) PlatformImage(unitWidth float64, dark bool) (*ebiten.Image, error) {
	units := int(math.Round(unitWidth))
	if units <= 0 || pi.TileW <= 0 || pi.TileH <= 0 {
		return nil, fmt.Errorf("platform images: %g units of %dx%d tiles: %w", unitWidth, pi.TileW, pi.TileH, common.ErrInvalidGeometry)
	}

	key := platformKey{units: units, dark: dark}
	if img, ok := pi.cache[key]; ok {
		return img, nil
	}

	tile := pi.light
	if dark {
		tile = pi.dark
	}
	img := ebiten.NewImage(units*pi.TileW, pi.TileH)
	for i := 0; i < units; i++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(i*pi.TileW), 0)
		img.DrawImage(tile, op)
	}
	pi.cache[key] = img
	return img, nil
}

// Len returns the number of cached strips.
func (pi *PlatformImages) Len() int {
	return len(pi.cache)
}
