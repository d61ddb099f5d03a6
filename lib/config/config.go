package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gfx.cafe/gfx/rbtree/lib/workload"
)

type Global struct {
	Log       Log               `yaml:"log" json:"log"`
	Metrics   Metrics           `yaml:"metrics" json:"metrics"`
	Workloads []workload.Config `yaml:"workloads" json:"workloads"`
}

type Log struct {
	// Level is any zap level name, defaults to info
	Level       string `yaml:"level" json:"level"`
	Development bool   `yaml:"development" json:"development"`
}

type Metrics struct {
	// Listen is the address /metrics is served on. Empty disables the listener.
	Listen string `yaml:"listen" json:"listen"`
}

// Load reads a YAML (or JSON) config file. String settings of the form
// ENV$NAME are replaced with the value of the environment variable NAME.
func Load(path string) (*Global, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(file)
}

func Parse(file []byte) (*Global, error) {
	var g Global
	if err := yaml.Unmarshal(file, &g); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	g.Log.Level = expand(g.Log.Level)
	g.Metrics.Listen = expand(g.Metrics.Listen)
	for i := range g.Workloads {
		g.Workloads[i].Name = expand(g.Workloads[i].Name)
	}

	for i := range g.Workloads {
		if err := g.Workloads[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &g, nil
}

func expand(v string) string {
	if strings.HasPrefix(v, "ENV$") {
		return os.Getenv(strings.TrimPrefix(v, "ENV$"))
	}
	return v
}
