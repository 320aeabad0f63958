package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "TILECASTER"
	fileName  = "tilecaster"
)

// Load resolves configuration with priority defaults < file < env < flags. An
// empty path searches the working directory and Dir() for tilecaster.yaml; a
// missing file is only an error when the path was given explicitly.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := Dir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Dir returns the per-user config directory, or "" when it cannot be resolved.
func Dir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, fileName)
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.scale", d.Window.Scale)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.vsync", d.Window.VSync)

	v.SetDefault("raycaster.fov_degrees", d.Raycaster.FOVDegrees)
	v.SetDefault("raycaster.max_distance", d.Raycaster.MaxDistance)
	v.SetDefault("raycaster.ray_step", d.Raycaster.RayStep)
	v.SetDefault("raycaster.movement_speed", d.Raycaster.MovementSpeed)
	v.SetDefault("raycaster.rotation_speed", d.Raycaster.RotationSpeed)
	v.SetDefault("raycaster.shade_min", d.Raycaster.ShadeMin)
	v.SetDefault("raycaster.shade_max", d.Raycaster.ShadeMax)
	v.SetDefault("raycaster.show_minimap", d.Raycaster.ShowMinimap)
	v.SetDefault("raycaster.minimap_scale", d.Raycaster.MinimapScale)

	v.SetDefault("loader.startup_ticks", d.Loader.StartupTicks)
	v.SetDefault("loader.show_info", d.Loader.ShowInfo)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
}
