package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig is the shape of a calc.yaml run configuration: how far past a
// syntax error the driver must parse cleanly before declaring recovery
// successful, a trace on/off flag, and a prompt string. Only ErrorSyncSize
// is consulted by the run and trace subcommands; Trace and Prompt are read
// from the file but not used by either.
type runConfig struct {
	ErrorSyncSize int    `yaml:"errorSyncSize"`
	Trace         bool   `yaml:"trace"`
	Prompt        string `yaml:"prompt"`
}

func defaultRunConfig() runConfig {
	return runConfig{ErrorSyncSize: 3, Prompt: "calc> "}
}

// loadRunConfig reads path if non-empty, overlaying it onto the defaults.
// A missing path is not an error: the defaults apply as-is.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return runConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return runConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
