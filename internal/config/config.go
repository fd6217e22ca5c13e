// Package config loads render settings from defaults, a config file and
// FIXRAY_ environment variables, in increasing priority. Command line flags
// bound by the caller take priority over all of them.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixray/scene"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

// Config is the render configuration.
type Config struct {
	// SceneFile is a TOML scene file. Empty renders the default scene.
	SceneFile string `mapstructure:"scene"`

	// Width and Height override the scene size when non-zero.
	Width  int16 `mapstructure:"width"`
	Height int16 `mapstructure:"height"`

	// Output is the PNG to write. Empty skips it.
	Output string `mapstructure:"output"`

	// Frame is where the linear frame stream is written. Empty skips it.
	Frame string `mapstructure:"frame"`

	Dither  bool `mapstructure:"dither"`
	Workers int  `mapstructure:"workers"`

	// View opens a preview window scaled by Scale.
	View  bool `mapstructure:"view"`
	Scale int  `mapstructure:"scale"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scene", "")
	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	v.SetDefault("output", "render.png")
	v.SetDefault("frame", "")
	v.SetDefault("dither", true)
	v.SetDefault("workers", 0)
	v.SetDefault("view", false)
	v.SetDefault("scale", 2)
}

// New returns a viper instance with the defaults set and environment
// variables enabled.
func New() *viper.Viper {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("FIXRAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file at path, if any, into v and returns the
// validated configuration.
func Load(v *viper.Viper, path string) (c *Config, err error) {
	defer Error.WrapP(&err)

	if path != "" {
		v.SetConfigFile(path)

		err = v.ReadInConfig()
		if err != nil {
			return nil, err
		}
	}

	c = &Config{}

	err = v.Unmarshal(c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the settings that do not depend on the scene.
func (c *Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return Error.New("invalid size: %dx%d", c.Width, c.Height)
	case c.Workers < 0:
		return Error.New("invalid workers: %d", c.Workers)
	case c.Scale < 1:
		return Error.New("invalid scale: %d", c.Scale)
	case c.Output == "" && c.Frame == "" && !c.View:
		return Error.New("nothing to do: no output, frame or view")
	}

	return nil
}

// Scene loads the configured scene and applies the size overrides.
func (c *Config) Scene() (s *scene.Scene, err error) {
	if c.SceneFile == "" {
		s = scene.Default()
	} else {
		s, err = scene.Load(c.SceneFile)
		if err != nil {
			return nil, err
		}
	}

	if c.Width != 0 {
		s.Width = c.Width
	}

	if c.Height != 0 {
		s.Height = c.Height
	}

	return s, s.Validate()
}
