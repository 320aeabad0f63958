package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tilecaster/engine"
)

// keymap binds each handheld button to the keyboard keys that drive it.
var keymap = map[engine.Button][]ebiten.Key{
	engine.ButtonUp:    {ebiten.KeyW, ebiten.KeyUp},
	engine.ButtonDown:  {ebiten.KeyS, ebiten.KeyDown},
	engine.ButtonLeft:  {ebiten.KeyA, ebiten.KeyLeft},
	engine.ButtonRight: {ebiten.KeyD, ebiten.KeyRight},
	engine.ButtonA:     {ebiten.KeySpace},
	engine.ButtonB:     {ebiten.KeyEnter},
	engine.ButtonX:     {ebiten.KeyEscape, ebiten.KeyBackspace},
	engine.ButtonY:     {ebiten.KeyTab},
}

type ebitenInput struct {
	keys map[engine.Button][]ebiten.Key
}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{keys: keymap}
}

func (in *ebitenInput) Held(b engine.Button) bool {
	for _, k := range in.keys[b] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (in *ebitenInput) Pressed(b engine.Button) bool {
	for _, k := range in.keys[b] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
