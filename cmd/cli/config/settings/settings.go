package settings

import (
	"path/filepath"

	"github.com/lucax88x/wslock/internal/homedir"
)

const (
	AppName        = "wslock"
	EnvPrefix      = "WSLOCK"
	ConfigFileName = "config.yaml"
	PidFileName    = "wslock.pid"
)

// Keys shared by cobra flags, viper and the config file.
const (
	KeyDelay         = "delay"
	KeyInvert        = "invert"
	KeyUseNumbers    = "use-numbers"
	KeyLogLevel      = "log-level"
	KeySocketPath    = "socket-path"
	KeyPidFile       = "pid-file"
	KeyNotifyTimeout = "notify-timeout"
)

const DefaultLogLevel = "info"

func DefaultPidFilePath() string {
	return filepath.Join(homedir.Runtime(), PidFileName)
}
