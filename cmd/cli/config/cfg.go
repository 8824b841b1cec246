package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucax88x/wslock/cmd/cli/config/settings"
	"github.com/lucax88x/wslock/internal/homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Cfg holds the file defaults. Flags and WSLOCK_* env vars override them
// through viper.
type Cfg struct {
	LogLevel        string `yaml:"log_level"`
	SocketPath      string `yaml:"socket_path"`
	UseNumbers      bool   `yaml:"use_numbers"`
	Invert          bool   `yaml:"invert"`
	Delay           string `yaml:"delay"`
	PidFile         string `yaml:"pid_file"`
	NotifyTimeoutMs int    `yaml:"notify_timeout_ms"`
}

func Default() *Cfg {
	return &Cfg{
		LogLevel:        settings.DefaultLogLevel,
		PidFile:         settings.DefaultPidFilePath(),
		NotifyTimeoutMs: 2000,
	}
}

// ReadYaml loads $XDG_CONFIG_HOME/wslock/config.yaml. A missing file yields
// the defaults.
func ReadYaml() (*Cfg, error) {
	dir, err := homedir.Get()

	if err != nil {
		return nil, fmt.Errorf("config: error getting home dir: %w", err)
	}

	return ReadYamlFile(filepath.Join(dir, settings.ConfigFileName))
}

func ReadYamlFile(path string) (*Cfg, error) {
	cfg := Default()

	yamlData, err := os.ReadFile(path)

	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return nil, fmt.Errorf("config: could not read file: %w", err)
	}

	err = yaml.UnmarshalStrict(yamlData, cfg)

	if err != nil {
		return nil, fmt.Errorf("config: could not unmarshal cfg: %w", err)
	}

	return cfg, nil
}

// Apply registers the file values as viper defaults.
func (c *Cfg) Apply(v *viper.Viper) {
	v.SetDefault(settings.KeyLogLevel, c.LogLevel)
	v.SetDefault(settings.KeySocketPath, c.SocketPath)
	v.SetDefault(settings.KeyUseNumbers, c.UseNumbers)
	v.SetDefault(settings.KeyInvert, c.Invert)
	v.SetDefault(settings.KeyDelay, c.Delay)
	v.SetDefault(settings.KeyPidFile, c.PidFile)
	v.SetDefault(settings.KeyNotifyTimeout, c.NotifyTimeoutMs)
}
