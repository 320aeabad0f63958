package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"width":     "window.width",
	"height":    "window.height",
	"scale":     "window.scale",
	"fov":       "raycaster.fov_degrees",
	"minimap":   "raycaster.show_minimap",
	"info":      "loader.show_info",
	"log-level": "logging.level",
	"log-file":  "logging.file",
}

// Flags returns the command-line flag set. The "config" flag names the file to
// pass to Load; the others override config keys.
func Flags(name string) *pflag.FlagSet {
	d := Default()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.String("config", "", "path to a config file")
	fs.Int("width", d.Window.Width, "logical screen width")
	fs.Int("height", d.Window.Height, "logical screen height")
	fs.Int("scale", d.Window.Scale, "window scale factor")
	fs.Float64("fov", d.Raycaster.FOVDegrees, "field of view in degrees")
	fs.Bool("minimap", d.Raycaster.ShowMinimap, "draw the top-down minimap")
	fs.Bool("info", d.Loader.ShowInfo, "show the frame rate overlay")
	fs.String("log-level", d.Logging.Level, "debug, info, warn or error")
	fs.String("log-file", d.Logging.File, "rotate logs into this file")

	return fs
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}
