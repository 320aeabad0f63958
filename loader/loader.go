// Package loader is the start-up menu that lists the available apps and hands
// the frame loop to the one the user picks.
package loader

import (
	"fmt"
	"image/color"

	"github.com/harbdog/raycaster-go/geom"
	"go.uber.org/zap"

	"tilecaster/config"
	"tilecaster/engine"
)

const Version = "0.1"

var startupMessage = "Loader " + Version

var (
	black    = color.RGBA{0, 0, 0, 0xff}
	white    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	heading  = color.RGBA{0, 0, 0xff, 0xff}
	selected = color.RGBA{0x88, 0xff, 0x88, 0xff}
)

// App is anything the loader can run.
type App interface {
	Init()
	Update(tick uint32, in engine.Input)
	Draw(tick uint32, s engine.Surface)
}

type Entry struct {
	Name string
	App  App
}

type Flags struct {
	Running  bool
	ShowInfo bool
}

type Loader struct {
	apps     []Entry
	selected int
	flags    Flags
	startup  int
	ticks    int
	log      *zap.Logger

	// FPS feeds the info overlay. Nil hides the frame rate.
	FPS func() float64
}

func New(entries []Entry, cfg config.LoaderConfig, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		apps:    entries,
		flags:   Flags{ShowInfo: cfg.ShowInfo},
		startup: cfg.StartupTicks,
		log:     log,
	}
}

func (l *Loader) Selected() int  { return l.selected }
func (l *Loader) Running() bool  { return l.flags.Running }
func (l *Loader) Flags() Flags   { return l.flags }
func (l *Loader) Starting() bool { return l.ticks < l.startup }

func (l *Loader) Update(tick uint32, in engine.Input) {
	if l.ticks < l.startup {
		l.ticks++
	}

	if l.flags.Running && in.Pressed(engine.ButtonX) {
		l.flags.Running = false
		l.log.Info("app stopped", zap.String("app", l.apps[l.selected].Name), zap.Uint32("tick", tick))
	}

	if l.flags.Running {
		l.apps[l.selected].App.Update(tick, in)
		return
	}

	if in.Pressed(engine.ButtonY) {
		l.flags.ShowInfo = !l.flags.ShowInfo
	}
	if len(l.apps) == 0 {
		return
	}

	last := float64(len(l.apps) - 1)
	if in.Pressed(engine.ButtonUp) {
		l.selected = int(geom.Clamp(float64(l.selected-1), 0, last))
	}
	if in.Pressed(engine.ButtonDown) {
		l.selected = int(geom.Clamp(float64(l.selected+1), 0, last))
	}

	if in.Pressed(engine.ButtonB) {
		entry := l.apps[l.selected]
		entry.App.Init()
		l.flags.Running = true
		l.log.Info("app started", zap.String("app", entry.Name), zap.Uint32("tick", tick))
	}
}

func (l *Loader) Draw(tick uint32, s engine.Surface) {
	s.SetColor(black)
	s.Clear()

	if l.Starting() {
		l.drawStartup(s)
		return
	}

	if l.flags.Running {
		l.apps[l.selected].App.Draw(tick, s)
	} else {
		l.drawMenu(s)
	}

	if l.flags.ShowInfo {
		l.drawInfo(tick, s)
	}
}

func (l *Loader) drawStartup(s engine.Surface) {
	w, h := s.Size()
	mw, mh := s.Measure(startupMessage)

	s.SetColor(white)
	s.Text(startupMessage, (w-mw)/2, (h-mh)/2)
}

func (l *Loader) drawMenu(s engine.Surface) {
	title := "Apps (press B to run):"
	_, lh := s.Measure(title)

	s.SetColor(heading)
	s.Text(title, 0, 0)

	for i, e := range l.apps {
		if i == l.selected {
			s.SetColor(selected)
		} else {
			s.SetColor(white)
		}
		s.Text(e.Name, 0, (i+1)*lh)
	}
}

func (l *Loader) drawInfo(tick uint32, s engine.Surface) {
	w, h := s.Size()
	s.SetColor(white)

	ticks := fmt.Sprintf("t%d", tick)
	tw, th := s.Measure(ticks)
	s.Text(ticks, w-tw-1, h-th-1)

	if l.FPS == nil {
		return
	}
	fps := fmt.Sprintf("%.0f", l.FPS())
	_, fh := s.Measure(fps)
	s.Text(fps, 1, h-fh-1)
}
