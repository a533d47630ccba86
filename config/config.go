// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ik5/audvox/bus"
)

const envPrefix = "AUDVOX"

type Config struct {
	SampleRate int           `mapstructure:"sample_rate"`
	Tick       time.Duration `mapstructure:"tick"`
	Log        Log           `mapstructure:"log"`
	Buses      []Bus         `mapstructure:"buses"`
	Groups     []Group       `mapstructure:"groups"`
}

type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type Bus struct {
	ID         string  `mapstructure:"id" yaml:"id"`
	VoiceLimit int     `mapstructure:"voice_limit" yaml:"voice_limit"`
	Volume     float64 `mapstructure:"volume" yaml:"volume"`
}

// Group lists one clip path per voice.
type Group struct {
	Name   string   `mapstructure:"name" yaml:"name"`
	Bus    string   `mapstructure:"bus" yaml:"bus"`
	Voices []string `mapstructure:"voices" yaml:"voices"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sample_rate", 48000)
	v.SetDefault("tick", 20*time.Millisecond)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Default returns the configuration used when no file sets a key. It has no
// buses, so it does not validate on its own.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	cfg := &Config{}
	// defaults only, cannot fail
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load reads path, applies AUDVOX_ environment overrides and validates the
// result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) resolvePaths(dir string) {
	for gi := range c.Groups {
		for vi, p := range c.Groups[gi].Voices {
			if p != "" && !filepath.IsAbs(p) {
				c.Groups[gi].Voices[vi] = filepath.Join(dir, p)
			}
		}
	}
}

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	var err error

	if c.SampleRate <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d", ErrInvalidSampleRate, c.SampleRate))
	}
	if c.Tick <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %s", ErrInvalidTick, c.Tick))
	}
	err = multierr.Append(err, c.Log.validate())

	declared := make(map[bus.ID]bool, len(c.Buses))
	if len(c.Buses) == 0 {
		err = multierr.Append(err, ErrNoBuses)
	}
	for i, b := range c.Buses {
		id, idErr := bus.ParseID(b.ID)
		if idErr != nil {
			err = multierr.Append(err, fmt.Errorf("buses[%d]: %w", i, idErr))
			continue
		}
		if declared[id] {
			err = multierr.Append(err, fmt.Errorf("buses[%d]: %w: %s", i, bus.ErrDuplicateBus, id))
		}
		declared[id] = true

		if b.VoiceLimit < 0 {
			err = multierr.Append(err, fmt.Errorf("buses[%d] %s: %w: %d", i, id, bus.ErrInvalidVoiceLimit, b.VoiceLimit))
		}
		if _, gainErr := bus.GainDB(b.Volume); gainErr != nil {
			err = multierr.Append(err, fmt.Errorf("buses[%d] %s: %w", i, id, gainErr))
		}
	}

	for i, g := range c.Groups {
		if g.Name == "" {
			err = multierr.Append(err, fmt.Errorf("groups[%d]: %w", i, ErrUnnamedGroup))
		}
		if len(g.Voices) == 0 {
			err = multierr.Append(err, fmt.Errorf("groups[%d] %q: %w", i, g.Name, ErrNoVoices))
		}

		id, idErr := bus.ParseID(g.Bus)
		switch {
		case idErr != nil:
			err = multierr.Append(err, fmt.Errorf("groups[%d] %q: %w", i, g.Name, idErr))
		case !declared[id]:
			err = multierr.Append(err, fmt.Errorf("groups[%d] %q: %w: %s", i, g.Name, ErrUndeclaredBus, id))
		}
	}

	return err
}

func (l Log) validate() error {
	var err error
	if _, lvlErr := zapcore.ParseLevel(l.Level); lvlErr != nil {
		err = multierr.Append(err, fmt.Errorf("log level: %w", lvlErr))
	}
	switch l.Format {
	case "json", "console":
	default:
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrInvalidLogFormat, l.Format))
	}
	return err
}

// BusConfigs converts the bus section. Mixers are left for the caller.
func (c *Config) BusConfigs() ([]bus.Config, error) {
	out := make([]bus.Config, 0, len(c.Buses))
	for _, b := range c.Buses {
		id, err := bus.ParseID(b.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, bus.Config{ID: id, VoiceLimit: b.VoiceLimit, Volume: b.Volume})
	}
	return out, nil
}

// Logger builds a zap logger: json gives the production setup, console the
// development one.
func (l Log) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var zc zap.Config
	switch l.Format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, l.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

type document struct {
	SampleRate int     `yaml:"sample_rate"`
	Tick       string  `yaml:"tick"`
	Log        Log     `yaml:"log"`
	Buses      []Bus   `yaml:"buses"`
	Groups     []Group `yaml:"groups"`
}

// Dump writes c as YAML.
func (c *Config) Dump(w io.Writer) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() {
		err = multierr.Append(err, enc.Close())
	}()

	return enc.Encode(document{
		SampleRate: c.SampleRate,
		Tick:       c.Tick.String(),
		Log:        c.Log,
		Buses:      c.Buses,
		Groups:     c.Groups,
	})
}

// FramesPerTick is the number of output frames one tick covers.
func (c *Config) FramesPerTick() int {
	return int(math.Round(c.Tick.Seconds() * float64(c.SampleRate)))
}
