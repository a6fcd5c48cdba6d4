//go:build linux && cgo

package preview

import (
	"fmt"
	"image"

	fb "github.com/gonutz/framebuffer"
)

// ShowOnFramebuffer draws img onto the framebuffer device at path, for
// example /dev/fb0.
func ShowOnFramebuffer(path string, img image.Image, logger Logger) error {
	dev, err := fb.Open(path)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	defer dev.Close()

	bounds := dev.Bounds()
	logInfo(logger, "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	Blit(dev, img)
	return nil
}
