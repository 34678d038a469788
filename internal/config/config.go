// Package config is for run-wide settings unmarshalled from Viper: defaults,
// an optional config file, RNAPAIRS_* environment variables and command
// line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"rnapairs-core/candidate"
	"rnapairs-core/classify"
	"rnapairs-core/engine"
)

// EnvPrefix is the prefix of every environment override,
// e.g. RNAPAIRS_PROFILE_JSON or RNAPAIRS_CRITERIA_MAX_ORIGIN.
const EnvPrefix = "RNAPAIRS"

// Criteria are the pair filter limits.
type Criteria struct {
	// shortest ring N/O contact that proves two bases touch
	ShortContact float64 `mapstructure:"short-contact"`
	// largest origin separation of a pair
	MaxOrigin float64 `mapstructure:"max-origin"`
	// largest vertical offset between the base planes
	MaxVertical float64 `mapstructure:"max-vertical"`
	// largest angle between the base planes, degrees
	MaxPlaneAngle float64 `mapstructure:"max-plane-angle"`
	// smallest distance between glycosidic atoms
	MinGlyDist float64 `mapstructure:"min-gly-dist"`
	// largest plane separation still counted as a stack
	StackConst float64 `mapstructure:"stack-const"`
}

// Candidates tune the spatial pair search.
type Candidates struct {
	Cutoff   float64 `mapstructure:"cutoff"`
	DVMax    float64 `mapstructure:"dv-max"`
	Legacy   bool    `mapstructure:"legacy"`
	MaxCells int     `mapstructure:"max-cells"`
}

// HBond settings.
type HBond struct {
	Change   float64 `mapstructure:"change"`
	LWDist   float64 `mapstructure:"lw-dist"`
	Carbon   bool    `mapstructure:"carbon"`
	Backbone bool    `mapstructure:"backbone"`
}

// Config is the root-level settings struct.
type Config struct {
	Criteria   Criteria   `mapstructure:"criteria"`
	Candidates Candidates `mapstructure:"candidates"`
	HBond      HBond      `mapstructure:"hbond"`

	Network bool     `mapstructure:"network"`
	Stacked bool     `mapstructure:"stacked"`
	Chains  []string `mapstructure:"chains"`

	Threads         int    `mapstructure:"threads"`
	Output          string `mapstructure:"output"`
	Sort            string `mapstructure:"sort"`
	Header          bool   `mapstructure:"header"`
	Pretty          bool   `mapstructure:"pretty"`
	Quiet           bool   `mapstructure:"quiet"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`
	ProfileJSON     string `mapstructure:"profile-json"`
}

// SetDefaults registers every key with its default so that environment
// overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	t := classify.DefaultThresholds()
	e := engine.DefaultConfig()
	v.SetDefault("criteria.short-contact", t.ShortContact)
	v.SetDefault("criteria.max-origin", t.MaxOrigin)
	v.SetDefault("criteria.max-vertical", t.MaxVertical)
	v.SetDefault("criteria.max-plane-angle", t.MaxPlaneAngle)
	v.SetDefault("criteria.min-gly-dist", t.MinGlyDist)
	v.SetDefault("criteria.stack-const", t.StackConst)

	v.SetDefault("candidates.cutoff", e.Cutoff)
	v.SetDefault("candidates.dv-max", e.DVMax)
	v.SetDefault("candidates.legacy", false)
	v.SetDefault("candidates.max-cells", candidate.DefaultMaxCells)

	v.SetDefault("hbond.change", e.Change)
	v.SetDefault("hbond.lw-dist", e.LWDist)
	v.SetDefault("hbond.carbon", e.Carbon)
	v.SetDefault("hbond.backbone", e.Backbone)

	v.SetDefault("network", false)
	v.SetDefault("stacked", true)
	v.SetDefault("chains", []string{})
	v.SetDefault("threads", 0)
	v.SetDefault("output", "text")
	v.SetDefault("sort", "index")
	v.SetDefault("header", false)
	v.SetDefault("pretty", false)
	v.SetDefault("quiet", false)
	v.SetDefault("no-match-exit-code", 1)
	v.SetDefault("profile-json", "")
}

// NewViper returns a Viper with defaults and the environment overlay set.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// NewConfig reads the optional config file into v, unmarshals and validates.
func NewConfig(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", file, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ErrInvalid marks a rejected setting.
var ErrInvalid = errors.New("invalid setting")

func invalid(key string, val any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalid, key, val)
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	cr := c.Criteria
	for _, kv := range []struct {
		key string
		v   float64
	}{
		{"criteria.short-contact", cr.ShortContact},
		{"criteria.max-origin", cr.MaxOrigin},
		{"criteria.max-vertical", cr.MaxVertical},
		{"criteria.max-plane-angle", cr.MaxPlaneAngle},
		{"criteria.stack-const", cr.StackConst},
		{"candidates.cutoff", c.Candidates.Cutoff},
		{"hbond.lw-dist", c.HBond.LWDist},
	} {
		if !(kv.v > 0) {
			return invalid(kv.key, kv.v)
		}
	}
	if cr.MinGlyDist < 0 {
		return invalid("criteria.min-gly-dist", cr.MinGlyDist)
	}
	if !(c.Candidates.DVMax >= 0) {
		return invalid("candidates.dv-max", c.Candidates.DVMax)
	}
	if c.Candidates.MaxCells < 0 {
		return invalid("candidates.max-cells", c.Candidates.MaxCells)
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return invalid("no-match-exit-code", c.NoMatchExitCode)
	}
	if c.Threads < 0 {
		return invalid("threads", c.Threads)
	}
	switch c.Output {
	case "text", "tsv", "json", "jsonl":
	default:
		return invalid("output", c.Output)
	}
	switch c.Sort {
	case "", "index", "score":
	default:
		return invalid("sort", c.Sort)
	}
	return nil
}

// Engine maps the settings onto the engine parameters.
func (c Config) Engine() engine.Config {
	return engine.Config{
		Cutoff:         c.Candidates.Cutoff,
		DVMax:          c.Candidates.DVMax,
		MaxCells:       c.Candidates.MaxCells,
		KeepMisaligned: c.Candidates.Legacy,
		Thresholds: classify.Thresholds{
			ShortContact:  c.Criteria.ShortContact,
			MaxOrigin:     c.Criteria.MaxOrigin,
			MaxVertical:   c.Criteria.MaxVertical,
			MaxPlaneAngle: c.Criteria.MaxPlaneAngle,
			MinGlyDist:    c.Criteria.MinGlyDist,
			StackConst:    c.Criteria.StackConst,
		},
		Change:   c.HBond.Change,
		LWDist:   c.HBond.LWDist,
		Carbon:   c.HBond.Carbon,
		Backbone: c.HBond.Backbone,
		Network:  c.Network,
	}
}

// Defaults returns the built-in settings with no file or environment
// applied. Flag defaults are taken from here.
func Defaults() Config {
	v := viper.New()
	SetDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}
