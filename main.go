package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/slidey/slidey-icons/internal/app"
)

const debugLogPath = "./slidey-icons-debug.log"

func main() {
	defaults, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	outDir := flag.String("out", defaults.OutputDir, "icon set output directory; also configurable via "+app.EnvOutputDir)
	jobs := flag.Int("jobs", defaults.Jobs, "icons rendered in parallel, 0 for one per CPU; also configurable via "+app.EnvJobs)
	previewPath := flag.String("preview", "", "write a labelled contact sheet of all icons to this PNG file")
	fbPath := flag.String("fb", "", "show the contact sheet on this framebuffer device, e.g. /dev/fb0")
	debug := flag.Bool("debug", false, "enable debug logging to "+debugLogPath)
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+app.EnvStdioLog)
	flag.Parse()

	if *stdioLog != "" {
		if f, err := openLogFile(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		} else {
			if err := redirectStdIO(f); err != nil {
				fmt.Println("stdio log redirect error:", err)
			}
			if !stdioStaysOpen {
				f.Close()
			}
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := openLogFile(debugLogPath)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(app.Config{
		OutputDir:       *outDir,
		Jobs:            *jobs,
		PreviewPath:     *previewPath,
		FramebufferPath: *fbPath,
		StdioLog:        *stdioLog,
	})
	a.Logger = logger

	if err := a.Run(ctx); err != nil {
		fmt.Println("icon generation error:", err)
		stop()
		os.Exit(1)
	}
}

// openLogFile opens path for appending, creating it and its directory.
func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return f, nil
}
