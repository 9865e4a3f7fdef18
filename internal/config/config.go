// Package config loads the shell's optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds front end settings; zero values mean "use the default".
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	RCFile      string `yaml:"rc_file"`
	TraceLevel  int    `yaml:"trace_level"`
	MaxDepth    int    `yaml:"max_depth"`
}

// Default returns the built in configuration, rooted at the user's home
// directory when one is known.
func Default() Config {
	cfg := Config{Prompt: "forsh"}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".forsh_history")
		cfg.RCFile = filepath.Join(home, ".forshrc")
	}
	return cfg
}

// Path returns the default config file location.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "forsh", "config.yaml")
}

// Load reads the config file at path over the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}
	defer f.Close()

	var file Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%v: %w", path, err)
	}
	cfg.merge(file)
	return cfg, nil
}

func (cfg *Config) merge(over Config) {
	if over.Prompt != "" {
		cfg.Prompt = over.Prompt
	}
	if over.HistoryFile != "" {
		cfg.HistoryFile = expandHome(over.HistoryFile)
	}
	if over.RCFile != "" {
		cfg.RCFile = expandHome(over.RCFile)
	}
	if over.TraceLevel != 0 {
		cfg.TraceLevel = over.TraceLevel
	}
	if over.MaxDepth != 0 {
		cfg.MaxDepth = over.MaxDepth
	}
}

func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}
