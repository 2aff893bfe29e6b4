// Package ebitenloop steps an xtween.Scheduler from an Ebitengine game loop.
//
// Wrap your game and run it:
//
//	g := &myGame{}
//	if err := ebitenloop.Run(xtween.Default, g, ebitenloop.RunConfig{
//		Title:  "demo",
//		Width:  640,
//		Height: 480,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// Tweens advance by one tick (1/TPS seconds) before the wrapped game's
// Update, so the game always sees this frame's values.
package ebitenloop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/xtween"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size in device-independent pixels.
	Width, Height int
	// ShowFPS draws an FPS/TPS and active-tween counter in the top-left corner.
	ShowFPS bool
}

// Game wraps an ebiten.Game and steps Scheduler on every tick.
type Game struct {
	ebiten.Game
	Scheduler *xtween.Scheduler
	ShowFPS   bool
}

// New wraps g so that s is stepped once per tick.
func New(s *xtween.Scheduler, g ebiten.Game) *Game {
	return &Game{Game: g, Scheduler: s}
}

// TickDelta returns the duration of one tick in seconds. When ticks are
// synchronised with frames it falls back to the default rate.
func TickDelta() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1.0 / float64(tps)
}

// Update steps the scheduler, then the wrapped game.
func (g *Game) Update() error {
	g.Scheduler.Step(TickDelta())
	return g.Game.Update()
}

// Draw draws the wrapped game and the optional counter overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Game.Draw(screen)
	if g.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f  tweens: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.Scheduler.Len()), 4, 4)
	}
}

// Run opens a window configured by cfg and runs g with s stepped every tick.
// It blocks until the game exits.
func Run(s *xtween.Scheduler, g ebiten.Game, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	game := New(s, g)
	game.ShowFPS = cfg.ShowFPS
	return ebiten.RunGame(game)
}
