package app

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger is shared by the generator's render goroutines, so
// implementations must be safe for concurrent use.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes one timestamped line per call. Lines from concurrent
// callers never interleave.
type FileLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func NewFileLogger(w io.Writer) *FileLogger { return &FileLogger{w: w} }

func (l *FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}

func (l *FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l *FileLogger) write(level, component, format string, args ...interface{}) {
	line := time.Now().Format(time.RFC3339) + " [" + level + "] " + component + ": " + fmt.Sprintf(format, args...) + "\n"
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, line)
}
