package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/milk9111/flappyshooter/common"
)

const (
	envPrefix  = "FLAPPY"
	configName = ".flappyshooter"
)

// Settings are the player-facing knobs. Game tuning lives in prefabs.
type Settings struct {
	Debug       bool
	Seed        uint64
	Volume      float64
	Mute        bool
	WindowScale float64
	Fullscreen  bool
}

// EffectiveVolume folds Mute into Volume and clamps to [0, 1].
func (s Settings) EffectiveVolume() float64 {
	if s.Mute {
		return 0
	}
	return common.Clamp(s.Volume, 0, 1)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("seed", 0)
	v.SetDefault("volume", 1.0)
	v.SetDefault("mute", false)
	v.SetDefault("window_scale", 1.0)
	v.SetDefault("fullscreen", false)
}

// InitSettings reads the config file and FLAPPY_* environment variables.
// With cfgFile empty it searches the home directory and then the working
// directory for .flappyshooter.yaml; a missing file is not an error.
func InitSettings(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("error getting home directory: %w", err)
		}

		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			name := v.ConfigFileUsed()
			if name == "" {
				name = cfgFile
			}
			return nil, fmt.Errorf("config: read %s: %w", name, err)
		}
	} else if v.GetBool("debug") {
		log.Printf("config: using %s", v.ConfigFileUsed())
	}

	return v, nil
}

// Load resolves Settings from a prepared viper instance.
func Load(v *viper.Viper) Settings {
	s := Settings{
		Debug:       v.GetBool("debug"),
		Seed:        v.GetUint64("seed"),
		Volume:      v.GetFloat64("volume"),
		Mute:        v.GetBool("mute"),
		WindowScale: v.GetFloat64("window_scale"),
		Fullscreen:  v.GetBool("fullscreen"),
	}
	if s.WindowScale <= 0 {
		s.WindowScale = 1
	}
	return s
}
