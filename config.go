package fixture

import (
	"strings"
	"sync/atomic"

	"dario.cat/mergo"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Config holds the process-wide settings of the library.
type Config struct {
	Array ArrayConfig `mapstructure:"array"`
}

// ArrayConfig bounds the length of batches created by CreateMany when no
// length is given. Both bounds are inclusive.
type ArrayConfig struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

// DefaultConfig returns the settings in effect before any Configure call.
func DefaultConfig() Config {
	return Config{
		Array: ArrayConfig{
			Min: 2,
			Max: 10,
		},
	}
}

var currentConfig atomic.Value

func init() {
	currentConfig.Store(DefaultConfig())
}

// CurrentConfig returns a copy of the settings in effect.
func CurrentConfig() Config {
	return currentConfig.Load().(Config)
}

// ConfigUpdate is a partial change of the settings. Nil fields keep their
// current value, so zero can be set explicitly.
type ConfigUpdate struct {
	Array ArrayUpdate `mapstructure:"array"`
}

// ArrayUpdate is the partial form of ArrayConfig.
type ArrayUpdate struct {
	Min *int `mapstructure:"min"`
	Max *int `mapstructure:"max"`
}

// Configure applies update onto the current settings. The update is
// rejected, and the current settings kept, if the resulting array range is
// invalid.
func Configure(update ConfigUpdate) error {
	current := CurrentConfig()
	merged := ConfigUpdate{
		Array: ArrayUpdate{
			Min: lo.ToPtr(current.Array.Min),
			Max: lo.ToPtr(current.Array.Max),
		},
	}
	if err := mergo.Merge(&merged, update, mergo.WithOverride, mergo.WithoutDereference); err != nil {
		return errors.Wrap(err, "merging configuration")
	}

	next := Config{
		Array: ArrayConfig{
			Min: *merged.Array.Min,
			Max: *merged.Array.Max,
		},
	}
	if next.Array.Min < 0 || next.Array.Min > next.Array.Max {
		return errors.Wrapf(ErrInvalidRange, "min=%d max=%d", next.Array.Min, next.Array.Max)
	}

	currentConfig.Store(next)
	return nil
}

// ResetConfig restores DefaultConfig.
func ResetConfig() {
	currentConfig.Store(DefaultConfig())
}

// LoadConfig applies the settings found in v. Environment variables prefixed
// with FIXTURE_ (FIXTURE_ARRAY_MIN, FIXTURE_ARRAY_MAX) take precedence over
// values read from a config file.
func LoadConfig(v *viper.Viper) error {
	v.SetEnvPrefix("FIXTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{"array.min", "array.max"} {
		if err := v.BindEnv(key); err != nil {
			return errors.Mark(errors.Wrapf(err, "binding %s", key), ErrConfigLoad)
		}
	}

	var update ConfigUpdate
	if err := v.Unmarshal(&update); err != nil {
		return errors.Mark(errors.Wrap(err, "decoding configuration"), ErrConfigLoad)
	}

	return Configure(update)
}

// LoadConfigFile reads settings from a YAML, JSON or TOML file and applies
// them with LoadConfig.
func LoadConfigFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Mark(errors.Wrapf(err, "reading %s", path), ErrConfigLoad)
	}
	return LoadConfig(v)
}
