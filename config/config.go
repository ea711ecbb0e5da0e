// Package config loads and writes golox.yaml.
package config

import (
	"io/ioutil"
	"os"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

// FileName is the config file `golox init` creates and the CLI reads by
// default.
const FileName = "golox.yaml"

type Config struct {
	Prompt      string `yaml:"Prompt"`
	HistoryFile string `yaml:"HistoryFile"`
	LogLevel    string `yaml:"LogLevel"`
	Color       bool   `yaml:"Color"`
}

func Default() Config {
	return Config{
		Prompt:      "> ",
		HistoryFile: ".golox_history",
		LogLevel:    "INFO",
		Color:       true,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, tracerr.Wrap(err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, tracerr.Wrap(err)
	}
	return cfg, nil
}

func (c Config) Save(path string) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return tracerr.Wrap(err)
	}

	fi, err := os.Create(path)
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer fi.Close()

	if _, err := fi.Write(out); err != nil {
		return tracerr.Wrap(err)
	}
	return nil
}
