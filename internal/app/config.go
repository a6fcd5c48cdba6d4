package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/slidey/slidey-icons/internal/iconset"
)

const (
	EnvOutputDir = "SLIDEY_ICONS_OUT"
	EnvJobs      = "SLIDEY_ICONS_JOBS"
	EnvStdioLog  = "SLIDEY_ICONS_STDIO_LOG"
)

// Config controls one generation run. The zero value of every optional
// field disables the matching feature.
type Config struct {
	OutputDir string
	Jobs      int

	// PreviewPath, when set, receives a PNG contact sheet of the icons.
	PreviewPath string

	// FramebufferPath, when set, shows the contact sheet on that device.
	FramebufferPath string

	StdioLog string
}

// DefaultConfigFromEnv returns the defaults, overridden by environment
// variables where present.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{OutputDir: iconset.DefaultOutputDir}
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		cfg.OutputDir = dir
	}
	if raw := os.Getenv(EnvJobs); raw != "" {
		jobs, err := strconv.Atoi(raw)
		if err != nil || jobs < 0 {
			return Config{}, fmt.Errorf("%s must be a non-negative integer (got %q)", EnvJobs, raw)
		}
		cfg.Jobs = jobs
	}
	cfg.StdioLog = os.Getenv(EnvStdioLog)
	return cfg, nil
}
