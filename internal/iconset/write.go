package iconset

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNG encodes img to path, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// ContentsFile is the asset catalog manifest name inside an icon set.
const ContentsFile = "Contents.json"

type contentsImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

type contentsInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Contents mirrors the Contents.json layout Xcode writes for an icon set.
type Contents struct {
	Images []contentsImage `json:"images"`
	Info   contentsInfo    `json:"info"`
}

// NewContents describes entries as mac idiom images.
func NewContents(entries []Entry) Contents {
	c := Contents{Info: contentsInfo{Author: "xcode", Version: 1}}
	for _, e := range entries {
		c.Images = append(c.Images, contentsImage{
			Filename: e.Filename,
			Idiom:    "mac",
			Scale:    fmt.Sprintf("%dx", e.Scale),
			Size:     fmt.Sprintf("%dx%d", e.Points, e.Points),
		})
	}
	return c
}

// WriteContents writes Contents.json for entries into dir.
func WriteContents(dir string, entries []Entry) error {
	data, err := json.MarshalIndent(NewContents(entries), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(filepath.Join(dir, ContentsFile), data, 0o644)
}
