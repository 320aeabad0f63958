package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"tilecaster/caster"
	"tilecaster/config"
	"tilecaster/engine"
	"tilecaster/loader"
	"tilecaster/logger"
	"tilecaster/model"
)

func main() {
	fs := config.Flags(os.Args[0])
	snapshot := fs.String("snapshot", "", "render one frame to this PNG file and exit")
	writeConfig := fs.String("write-config", "", "write the resolved config to this YAML file and exit")
	saveConfig := fs.Bool("save-config", false, "save the resolved config to the user config directory and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	path, _ := fs.GetString("config")
	cfg, err := config.Load(path, fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *writeConfig != "" {
		if err := cfg.SaveTo(*writeConfig); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *saveConfig {
		if err := cfg.Save(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(filepath.Join(config.Dir(), "tilecaster.yaml"))
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	rc := caster.NewRaycaster(model.SampleMap(), cfg.Raycaster, logger.Named("raycaster"))

	if *snapshot != "" {
		if err := writeSnapshot(*snapshot, rc, cfg.Window); err != nil {
			logger.Fatal("snapshot failed", zap.Error(err))
		}
		logger.Info("snapshot written", zap.String("path", *snapshot))
		return
	}

	l := loader.New([]loader.Entry{
		{Name: "raycaster", App: rc},
	}, cfg.Loader, logger.Named("loader"))

	logger.Info("starting",
		zap.String("version", loader.Version),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	if err := NewGame(cfg, l, logger.Named("game")).Run(); err != nil {
		logger.Fatal("game loop", zap.Error(err))
	}
}

// writeSnapshot renders the raycaster's first frame in software.
func writeSnapshot(path string, rc *caster.Raycaster, win config.WindowConfig) error {
	rc.Init()

	img := engine.NewImage(win.Width, win.Height)
	img.SetColor(color.Black)
	img.Clear()
	rc.Draw(0, img)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := img.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
