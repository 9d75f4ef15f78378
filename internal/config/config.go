package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for logscrub. All
// fields are pointers so an absent key can be told apart from a zero value
// when merging with CLI flags.
type FileConfig struct {
	Source         *string `yaml:"source"`
	Output         *string `yaml:"output"`
	Rules          *string `yaml:"rules"`
	Ignore         *string `yaml:"ignore"`
	Placeholder    *string `yaml:"placeholder"`
	MaintainLength *bool   `yaml:"maintain_length"`
	Threads        *int    `yaml:"threads"`
	NoCache        *bool   `yaml:"no_cache"`
	NoColor        *bool   `yaml:"no_color"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given directory.
// It supports .logscrub.yml/.yaml and logscrub.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".logscrub.yml", ".logscrub.yaml", "logscrub.yml", "logscrub.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "logscrub", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
