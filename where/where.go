// Package where resolves the per-user directories and files the application reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/kaltdl/kaltdl/constant"
	"github.com/kaltdl/kaltdl/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "KALTDL_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// XDG_CONFIG_HOME is honoured on Linux through os.UserConfigDir; KALTDL_CONFIG_PATH wins over both.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Kaltdl))
}

// Cache resolves the cache directory, falling back to ./cache when the platform has none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Kaltdl))
}

// Logs resolves the directory daily log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// State resolves the directory holding the bridge token fallback.
func State() string {
	return ensureDir(filepath.Join(Config(), "state"))
}

// Runtime resolves the directory for the bridge lock and port files.
// XDG_RUNTIME_DIR is used when set, the state directory otherwise.
func Runtime() string {
	if dir, ok := os.LookupEnv("XDG_RUNTIME_DIR"); ok && dir != "" {
		return ensureDir(filepath.Join(dir, constant.Kaltdl))
	}
	return State()
}

// History resolves the file generated commands are remembered in.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// PortFile is where a running bridge advertises its port.
func PortFile() string {
	return filepath.Join(Runtime(), "port")
}

// LockFile guards against two bridges running at once.
func LockFile() string {
	return filepath.Join(Runtime(), "serve.lock")
}

// TokenFile stores the bridge token when no system keyring is available.
func TokenFile() string {
	return filepath.Join(State(), "token")
}
