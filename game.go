package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/starjump/assets"
	"github.com/milk9111/starjump/common"
	"github.com/milk9111/starjump/obj"
	"github.com/milk9111/starjump/prefabs"
	"github.com/milk9111/starjump/system"
	"golang.org/x/image/colornames"
)

// longest step fed to the simulation, so a stalled window does not
// teleport the star through platforms
const maxStepMs = 50.0

type Game struct {
	cfg    system.Config
	frames []*ebiten.Image
	images *obj.PlatformImages

	world   *system.World
	input   *obj.Input
	watcher *prefabs.Watcher

	pauseUI *ebitenui.UI
	overUI  *ebitenui.UI

	debug     bool
	paused    bool
	quit      bool
	pendingMs float64
	viewW     int
	viewH     int
}

// NewGame loads the prefabs, builds the sprites and starts the first run.
// With watch set, edits to tuning.yaml are applied while the game runs.
func NewGame(viewW, viewH int, seed int64, debug, watch bool) (*Game, error) {
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, err
	}
	starSpec, err := prefabs.LoadStarSpec()
	if err != nil {
		return nil, err
	}
	platformSpec, err := prefabs.LoadPlatformSpec()
	if err != nil {
		return nil, err
	}
	tuning, err := prefabs.LoadTuningSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg: system.Config{
			World:    common.World{GameWidth: worldSpec.GameWidth, GameHeight: worldSpec.GameHeight},
			Star:     *starSpec,
			Platform: *platformSpec,
			Tuning:   *tuning,
			Seed:     seed,
		},
		frames: assets.StarFrames(starSpec.Size, starSpec.Frames, starSpec.Color.Or(colornames.Gold), starSpec.GlowColor.Or(colornames.Lemonchiffon)),
		images: obj.NewPlatformImages(
			platformSpec.TileWidth,
			platformSpec.TileHeight,
			platformSpec.Light.Or(colornames.Beige),
			platformSpec.Dark.Or(colornames.Darkslategray),
			platformSpec.Edge.Or(colornames.Goldenrod),
		),
		input: obj.NewInput(),
		debug: debug,
		viewW: viewW,
		viewH: viewH,
	}

	if watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = newMenuUI("Paused",
		menuButton{label: "Resume", onClick: func() { g.paused = false }},
		menuButton{label: "Restart", onClick: func() { g.restartLater() }},
		menuButton{label: "Quit", onClick: func() { g.quit = true }},
	)
	g.overUI = newMenuUI("The star fell",
		menuButton{label: "Try again", onClick: func() { g.restartLater() }},
		menuButton{label: "Quit", onClick: func() { g.quit = true }},
	)

	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) restart() error {
	w, err := system.NewWorld(g.cfg, g.frames, g.images, g.viewW, g.viewH)
	if err != nil {
		return fmt.Errorf("game: new world: %w", err)
	}
	g.world = w
	g.cfg.Seed++
	g.paused = false
	g.pendingMs = 0
	return nil
}

// restartLater defers the restart to the next Update so menu handlers do
// not swap the world out mid-frame.
func (g *Game) restartLater() {
	g.world = nil
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}
	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	g.reloadPrefabs()

	if g.world == nil || (g.input.RestartPressed && (g.paused || g.world.GameOver)) {
		if err := g.restart(); err != nil {
			return err
		}
	}

	if g.world.GameOver {
		g.overUI.Update()
		return nil
	}
	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	dt := min(1000/float64(ebiten.TPS()), maxStepMs)
	if err := g.world.Update(g.input, dt); err != nil {
		return err
	}
	g.pendingMs += dt
	return nil
}

// reloadPrefabs applies tuning edits picked up by the watcher. Other files
// only take effect on the next launch.
func (g *Game) reloadPrefabs() {
	names, err := g.watcher.Poll()
	if err != nil {
		log.Printf("prefab watcher: %v", err)
	}
	for _, name := range names {
		if name != "tuning.yaml" {
			log.Printf("prefab %s changed; restart the game to apply it", name)
			continue
		}
		tuning, err := prefabs.LoadTuningSpec()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			continue
		}
		g.cfg.Tuning = *tuning
		if g.world != nil {
			g.world.SetTuning(*tuning)
		}
		log.Printf("reloaded %s", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	if g.world == nil {
		return
	}

	if err := g.world.Draw(screen, g.pendingMs); err != nil {
		log.Printf("draw: %v", err)
	}
	g.pendingMs = 0

	if g.debug {
		obj.DebugDraw(screen, g.world.Objects()...)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Height: %.0f  Bounces: %d  FPS: %.1f", g.world.Best, g.world.Bounces, ebiten.ActualFPS()))

	switch {
	case g.world.GameOver:
		g.overUI.Draw(screen)
	case g.paused:
		g.pauseUI.Draw(screen)
	}
}

// Layout uses the window size as the viewport so entities rescale with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewW = max(1, outsideWidth)
	g.viewH = max(1, outsideHeight)
	return g.viewW, g.viewH
}
