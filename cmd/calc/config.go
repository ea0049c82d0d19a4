package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calc"
)

// config is the contents of a config file. Flags given on the command line
// override it.
type config struct {
	Engine   string   `toml:"engine" yaml:"engine"`
	MaxDepth int      `toml:"max_depth" yaml:"max_depth"`
	Format   string   `toml:"format" yaml:"format"`
	Echo     bool     `toml:"echo" yaml:"echo"`
	Disable  []string `toml:"disable" yaml:"disable"`
}

func defaultConfig() config {
	return config{
		Engine:   calc.EngineTree.String(),
		MaxDepth: calc.DefaultMaxDepth,
		Format:   "%g",
	}
}

// loadConfig reads a config file. The format follows the extension: .yaml
// and .yml are YAML, anything else is TOML. Unset fields keep their defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		err = toml.Unmarshal(b, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// options converts the config to evaluator options.
func (c config) options() ([]calc.Option, error) {
	e, err := calc.ParseEngine(c.Engine)
	if err != nil {
		return nil, err
	}
	if c.MaxDepth <= 0 {
		return nil, fmt.Errorf("max depth (%d) must be positive", c.MaxDepth)
	}
	opts := []calc.Option{calc.WithEngine(e), calc.MaxDepth(c.MaxDepth)}
	for _, name := range c.Disable {
		if !known(name) {
			return nil, fmt.Errorf("cannot disable unknown function %q", name)
		}
		opts = append(opts, calc.WithFunc(name, nil))
	}
	return opts, nil
}

func known(name string) bool {
	for _, f := range calc.DefaultFuncs() {
		if f == name {
			return true
		}
	}
	return false
}
