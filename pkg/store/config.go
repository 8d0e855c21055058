package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/saga/pkg/nav"
	"tableflip.dev/saga/pkg/timeutil"
)

// Config carries everything read from the .saga config file: the library
// base path, the controller tuning, and the frame rate.
type Config interface {
	BasePath() string
	Nav() nav.Config
	FPS() int
}

// LoadConfig reads the .saga config (cwd or SAGA_CONFIG_PATH), with SAGA_*
// environment overrides. Every key has a default, so a missing file is fine.
func LoadConfig() (Config, error) {
	ref := nav.DefaultConfig()
	viper.SetDefault("library", "~/.saga.db")
	viper.SetDefault("wheel_threshold", ref.WheelThreshold)
	viper.SetDefault("wheel_delta", ref.WheelDelta)
	viper.SetDefault("debounce_window", "200ms")
	viper.SetDefault("swipe_min", ref.SwipeMin)
	viper.SetDefault("transition", "600ms")
	viper.SetDefault("gallery_slide", "350ms")
	viper.SetDefault("fps", 30)

	viper.SetConfigName(".saga") // .yaml is implicit
	viper.SetEnvPrefix("SAGA")
	viper.AutomaticEnv()

	if override := os.Getenv("SAGA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{
		path: viper.GetString("library"),
		nav: nav.Config{
			WheelThreshold: viper.GetFloat64("wheel_threshold"),
			WheelDelta:     viper.GetFloat64("wheel_delta"),
			DebounceWindow: timeutil.ParseOrDefault(viper.GetString("debounce_window"), ref.DebounceWindow),
			SwipeMin:       viper.GetInt("swipe_min"),
			Transition:     timeutil.ParseOrDefault(viper.GetString("transition"), ref.Transition),
			GallerySlide:   timeutil.ParseOrDefault(viper.GetString("gallery_slide"), ref.GallerySlide),
		},
		fps: viper.GetInt("fps"),
	}, nil
}

type fileConfig struct {
	path string
	nav  nav.Config
	fps  int
}

func (f *fileConfig) BasePath() string {
	if expanded, err := homedir.Expand(f.path); err == nil {
		return expanded
	}
	return f.path
}

func (f *fileConfig) Nav() nav.Config { return f.nav }

func (f *fileConfig) FPS() int { return f.fps }
