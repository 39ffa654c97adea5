package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mflett/calc"
)

// config is the optional ~/.calcrc file.
type config struct {
	Engine engineConf `toml:"engine"`
	Repl   replConf   `toml:"repl"`
	Plot   plotConf   `toml:"plot"`
}

type engineConf struct {
	Angle     string `toml:"angle"`
	Variables int    `toml:"variables"`
}

type replConf struct {
	History int `toml:"history"`
}

type plotConf struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

func defaultConfig() config {
	return config{
		Engine: engineConf{Angle: "rad", Variables: calc.DefaultCapacity},
		Repl:   replConf{History: 50},
		Plot:   plotConf{Width: 60, Height: 20},
	}
}

// loadConfig reads ~/.calcrc when it exists. A missing file just yields
// the defaults.
func loadConfig() (config, error) {
	conf := defaultConfig()
	home, err := os.UserHomeDir()
	if err != nil {
		return conf, nil
	}
	file := filepath.Join(home, ".calcrc")
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, nil
		}
		return conf, err
	}
	if err := toml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("%s: %w", file, err)
	}
	return conf, nil
}
