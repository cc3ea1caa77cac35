package main

import (
	"github.com/BurntSushi/toml"

	"github.com/plexsim/plexus"
)

// Config holds the viewer parameters plus the simulation tunables.
type Config struct {
	// Window size in logical pixels. Also the initial simulation domain.
	Width  int
	Height int

	Sim plexus.Config
}

// DefaultConf are the parameters used when no config file is given.
var DefaultConf = &Config{
	Width:  1024,
	Height: 768,
	Sim:    plexus.DefaultConfig,
}

// ParseConfig overlays the TOML config file at path onto the defaults.
func ParseConfig(path string) (*Config, error) {
	conf := DefaultConf
	_, err := toml.DecodeFile(path, conf)
	return conf, err
}
