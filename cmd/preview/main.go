// Command preview shows the star animation and a platform strip in a
// resizable window, so sprites and scaling can be checked without playing.
//
// Left/right lean the star, space toggles the platform, F3 outlines rects.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starjump/assets"
	"github.com/milk9111/starjump/common"
	"github.com/milk9111/starjump/obj"
	"github.com/milk9111/starjump/prefabs"
	"golang.org/x/image/colornames"
)

type previewGame struct {
	star     *obj.Star
	platform *obj.Platform
	input    *obj.Input
	debug    bool
	w, h     int
}

func (g *previewGame) Update() error {
	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}
	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	if g.input.TogglePressed {
		if err := g.platform.ToggleDark(); err != nil {
			return err
		}
	}

	dt := 1000 / float64(ebiten.TPS())
	target := g.star.Position.Add(cp.Vector{X: g.input.MoveX * 0.3 * dt})
	g.star.Move(target, dt)
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	dt := 1000 / float64(ebiten.TPS())
	if err := g.platform.Update(screen, 0, dt); err != nil {
		log.Printf("platform: %v", err)
	}
	if err := g.star.Update(screen, 0, dt); err != nil {
		log.Printf("star: %v", err)
	}
	if g.debug {
		obj.DebugDraw(screen, g.platform, g.star)
	}
	s := g.star.Scaled()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("viewport %dx%d  star %dx%d frame %d  rot %.1f  dark %v",
		g.w, g.h, s.W, s.H, g.star.Frame(), g.star.Rotation, g.platform.Dark()))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(1, outsideWidth), max(1, outsideHeight)
	if w != g.w || h != g.h {
		g.w, g.h = w, h
		if err := g.star.Resize(w, h); err != nil {
			log.Printf("resize star: %v", err)
		}
		if err := g.platform.Resize(w, h); err != nil {
			log.Printf("resize platform: %v", err)
		}
	}
	return w, h
}

// loadFrames slices a sprite sheet into frameW x frameH frames, left to
// right and top to bottom.
func loadFrames(path string, frameW, frameH, count int) ([]*ebiten.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	sheet := ebiten.NewImageFromImage(img)
	cols := sheet.Bounds().Dx() / frameW
	rows := sheet.Bounds().Dy() / frameH
	maxFrames := cols * rows
	if count <= 0 || count > maxFrames {
		count = maxFrames
	}
	frames := make([]*ebiten.Image, count)
	for i := 0; i < count; i++ {
		col := i % cols
		row := i / cols
		r := image.Rect(col*frameW, row*frameH, col*frameW+frameW, row*frameH+frameH)
		frames[i] = ebiten.NewImageFromImage(sheet.SubImage(r))
	}
	return frames, nil
}

func main() {
	sheet := flag.String("sheet", "", "optional star sprite sheet (png); procedural frames when empty")
	frameSize := flag.Int("frame", 48, "frame width and height in the sprite sheet")
	units := flag.Float64("units", 4, "platform width in tiles")
	flag.Parse()

	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Fatal(err)
	}
	starSpec, err := prefabs.LoadStarSpec()
	if err != nil {
		log.Fatal(err)
	}
	platformSpec, err := prefabs.LoadPlatformSpec()
	if err != nil {
		log.Fatal(err)
	}
	world := common.World{GameWidth: worldSpec.GameWidth, GameHeight: worldSpec.GameHeight}

	frames := assets.StarFrames(starSpec.Size, starSpec.Frames, starSpec.Color.Color, starSpec.GlowColor.Color)
	if *sheet != "" {
		frames, err = loadFrames(*sheet, *frameSize, *frameSize, 0)
		if err != nil {
			log.Fatal(err)
		}
	}

	const w, h = 512, 512
	star, err := obj.NewStar(frames, cp.Vector{X: world.GameWidth / 2, Y: world.GameHeight / 2}, w, h, 0, world, obj.WithFrameInterval(starSpec.FrameMs))
	if err != nil {
		log.Fatal(err)
	}

	images := obj.NewPlatformImages(platformSpec.TileWidth, platformSpec.TileHeight, platformSpec.Light.Color, platformSpec.Dark.Color, platformSpec.Edge.Color)
	platformW := *units * float64(platformSpec.TileWidth)
	platform, err := obj.NewPlatform(images, false, cp.Vector{X: (world.GameWidth - platformW) / 2, Y: world.GameHeight/2 - obj.LandingBand}, *units, w, h, 0, world)
	if err != nil {
		log.Fatal(err)
	}

	g := &previewGame{star: star, platform: platform, input: obj.NewInput(), w: w, h: h}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("starjump sprite preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
