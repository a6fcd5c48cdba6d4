// Package iconset writes the rendered icon sizes of a macOS
// AppIcon.appiconset together with its asset catalog manifest.
package iconset

import "fmt"

// DefaultOutputDir is where the app's asset catalog keeps its icon set.
const DefaultOutputDir = "slidey/Assets.xcassets/AppIcon.appiconset"

// Entry is one file of the icon set.
type Entry struct {
	Filename string
	Points   int
	Scale    int
}

// Size is the pixel dimension of the entry.
func (e Entry) Size() int { return e.Points * e.Scale }

// DefaultEntries returns the sizes a macOS app icon set requires.
func DefaultEntries() []Entry {
	var entries []Entry
	for _, points := range []int{16, 32, 128, 256, 512} {
		for _, scale := range []int{1, 2} {
			entries = append(entries, newEntry(points, scale))
		}
	}
	return entries
}

func newEntry(points, scale int) Entry {
	name := fmt.Sprintf("icon_%dx%d.png", points, points)
	if scale > 1 {
		name = fmt.Sprintf("icon_%dx%d@%dx.png", points, points, scale)
	}
	return Entry{Filename: name, Points: points, Scale: scale}
}
