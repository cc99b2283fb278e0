package app

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvStaticDir = "PWAICONS_STATIC_DIR"
	EnvDebug     = "PWAICONS_DEBUG"
	EnvStdioLog  = "PWAICONS_STDIO_LOG"
)

// DefaultStaticDir is relative to the working directory the generator runs in.
const DefaultStaticDir = "static"

// DebugLogPath is where the debug file logger writes.
const DebugLogPath = "./pwaicons-debug.log"

// Config contains settings for a generator run. Flags override these.
type Config struct {
	StaticDir string
	Debug     bool
	StdioLog  string
	Favicon   bool
}

func DefaultConfigFromEnv() (Config, error) {
	staticDir := os.Getenv(EnvStaticDir)
	if staticDir == "" {
		staticDir = DefaultStaticDir
	}

	debug := false
	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		debug = parsed
	}

	return Config{StaticDir: staticDir, Debug: debug, StdioLog: os.Getenv(EnvStdioLog)}, nil
}
