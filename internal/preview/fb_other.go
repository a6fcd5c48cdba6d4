//go:build !linux || !cgo

package preview

import (
	"errors"
	"image"
)

func ShowOnFramebuffer(path string, img image.Image, logger Logger) error {
	return errors.New("framebuffer preview is only supported on linux")
}
