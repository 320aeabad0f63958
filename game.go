package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"tilecaster/config"
	"tilecaster/engine"
	"tilecaster/loader"
)

// Game adapts the loader to ebiten's update/draw loop.
type Game struct {
	loader  *loader.Loader
	input   engine.Input
	surface *ebitenSurface
	tick    uint32

	screenWidth  int
	screenHeight int

	log *zap.Logger
}

func NewGame(cfg *config.Config, l *loader.Loader, log *zap.Logger) *Game {
	g := &Game{
		loader:       l,
		input:        newEbitenInput(),
		surface:      newEbitenSurface(),
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
		log:          log,
	}

	l.FPS = ebiten.ActualFPS

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)

	return g
}

// Run is the Ebiten Run loop caller
func (g *Game) Run() error {
	return ebiten.RunGame(g)
}

// Layout keeps the logical screen fixed; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	// X in the menu quits; while an app runs it only returns to the menu
	inMenu := !g.loader.Running()

	g.loader.Update(g.tick, g.input)
	g.tick++

	if inMenu && !g.loader.Running() && g.input.Pressed(engine.ButtonX) {
		g.log.Info("exit requested", zap.Uint32("tick", g.tick))
		return ebiten.Termination
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.bind(screen)
	g.loader.Draw(g.tick, g.surface)
}
