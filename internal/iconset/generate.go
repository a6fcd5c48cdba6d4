package iconset

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/slidey/slidey-icons/internal/render"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Result describes one written icon file.
type Result struct {
	Entry Entry
	Path  string
	Image image.Image
}

// Generator renders and writes an icon set.
type Generator struct {
	// Dir receives the PNG files and Contents.json. It is created if missing.
	Dir string

	// Entries defaults to DefaultEntries.
	Entries []Entry

	// Render draws one size×size icon; defaults to render.Icon.
	Render func(size int) *image.RGBA

	// Jobs bounds how many entries are rendered at once; <= 0 means NumCPU.
	Jobs int

	Logger Logger

	// OnWritten, if set, is called once per written file in entry order,
	// as soon as that file and every file before it are on disk. Calls
	// are serialised.
	OnWritten func(Result)
}

func NewGenerator(dir string) *Generator {
	return &Generator{Dir: dir}
}

// Generate renders every entry and writes it to Dir, followed by the
// asset catalog manifest. The first failure stops the run and is returned;
// files written before it are left in place. Results follow entry order.
func (g *Generator) Generate(ctx context.Context) ([]Result, error) {
	entries := g.Entries
	if len(entries) == 0 {
		entries = DefaultEntries()
	}
	renderFn := g.Render
	if renderFn == nil {
		renderFn = render.Icon
	}
	jobs := g.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", g.Dir, err)
	}

	results := make([]Result, len(entries))
	report := newOrderedReporter(results, g.OnWritten)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	for i, entry := range entries {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			img := renderFn(entry.Size())
			path := filepath.Join(g.Dir, entry.Filename)
			if err := WritePNG(path, img); err != nil {
				g.logError("write %s failed: %v", entry.Filename, err)
				return fmt.Errorf("write %s: %w", entry.Filename, err)
			}
			g.logInfo("wrote %s (%dpx)", path, entry.Size())
			report.done(i, Result{Entry: entry, Path: path, Image: img})
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := WriteContents(g.Dir, entries); err != nil {
		return nil, fmt.Errorf("write %s: %w", ContentsFile, err)
	}
	g.logInfo("wrote %s with %d images", ContentsFile, len(entries))
	return results, nil
}

func (g *Generator) logInfo(format string, args ...interface{}) {
	if g.Logger != nil {
		g.Logger.Infof("iconset", format, args...)
	}
}

func (g *Generator) logError(format string, args ...interface{}) {
	if g.Logger != nil {
		g.Logger.Errorf("iconset", format, args...)
	}
}

// orderedReporter stores results and releases the longest finished
// prefix to its callback.
type orderedReporter struct {
	mu       sync.Mutex
	results  []Result
	finished []bool
	next     int
	fn       func(Result)
}

func newOrderedReporter(results []Result, fn func(Result)) *orderedReporter {
	return &orderedReporter{results: results, finished: make([]bool, len(results)), fn: fn}
}

func (r *orderedReporter) done(i int, res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[i] = res
	r.finished[i] = true
	for r.next < len(r.results) && r.finished[r.next] {
		if r.fn != nil {
			r.fn(r.results[r.next])
		}
		r.next++
	}
}
