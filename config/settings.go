// Package config loads application settings and gameplay tuning
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings are the application-level options: logging, audio, telemetry and session seed
type Settings struct {
	Log       LogSettings       `mapstructure:"log"`
	Audio     AudioSettings     `mapstructure:"audio"`
	Telemetry TelemetrySettings `mapstructure:"telemetry"`
	Game      GameSettings      `mapstructure:"game"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

type AudioSettings struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type TelemetrySettings struct {
	Enabled  bool          `mapstructure:"enabled"`
	Dir      string        `mapstructure:"dir"`
	Interval time.Duration `mapstructure:"interval"`
}

// GameSettings selects the session seed and an optional tuning override file
// Seed 0 picks a random seed per session
type GameSettings struct {
	Seed   uint64 `mapstructure:"seed"`
	Tuning string `mapstructure:"tuning"`
}

// EnvPrefix prefixes every environment override, e.g. MANTOU_LOG_LEVEL
const EnvPrefix = "MANTOU"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.7)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.dir", "telemetry")
	v.SetDefault("telemetry.interval", 5*time.Second)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.tuning", "")
}

// LoadSettings reads settings from defaults, the optional file at path, then the environment
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return nil, fmt.Errorf("audio volume %v outside [0, 1]", s.Audio.Volume)
	}
	if s.Telemetry.Enabled && s.Telemetry.Interval <= 0 {
		return nil, fmt.Errorf("telemetry interval %v must be positive", s.Telemetry.Interval)
	}
	return &s, nil
}
