package homedir

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "wslock"

// Get returns the wslock configuration directory, $XDG_CONFIG_HOME/wslock.
func Get() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("homedir: could not get config dir: %w", err)
	}

	return filepath.Join(dir, appDir), nil
}

// Runtime returns the directory for runtime files such as the pid file,
// $XDG_RUNTIME_DIR when set, the temp dir otherwise.
func Runtime() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir
	}
	return os.TempDir()
}
