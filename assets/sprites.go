// Package assets builds the game's sprites at startup. Nothing is decoded
// from disk; every image is drawn with ebiten's vector helpers.
package assets

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// StarFrames draws count frames of a twinkling star on size x size images.
// The rays grow and shrink over one full cycle. Nil colors fall back to gold.
func StarFrames(size, count int, body, glow color.Color) []*ebiten.Image {
	if size <= 0 || count <= 0 {
		return nil
	}
	if body == nil {
		body = colornames.Gold
	}
	if glow == nil {
		glow = colornames.Lemonchiffon
	}

	frames := make([]*ebiten.Image, count)
	c := float32(size) / 2
	for i := range frames {
		img := ebiten.NewImage(size, size)
		phase := 2 * math.Pi * float64(i) / float64(count)
		ray := c * float32(0.65+0.35*math.Sin(phase))
		thick := max(2, float32(size)/10)

		vector.FillRect(img, c-ray, c-thick/2, 2*ray, thick, glow, true)
		vector.FillRect(img, c-thick/2, c-ray, thick, 2*ray, glow, true)
		vector.DrawFilledCircle(img, c, c, c*0.45, body, true)
		vector.DrawFilledCircle(img, c-c*0.12, c-c*0.12, c*0.12, colornames.White, true)
		frames[i] = img
	}
	return frames
}

// PlatformTile draws one platform segment: a filled body with an edge
// stripe along the top where the star lands.
func PlatformTile(w, h int, fill, edge color.Color) *ebiten.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	if fill == nil {
		fill = colornames.Beige
	}
	if edge == nil {
		edge = colornames.Goldenrod
	}
	img := ebiten.NewImage(w, h)
	img.Fill(fill)
	stripe := max(1, float32(h)/4)
	vector.FillRect(img, 0, 0, float32(w), stripe, edge, false)
	vector.StrokeRect(img, 0, 0, float32(w), float32(h), 1, colornames.Black, false)
	return img
}
