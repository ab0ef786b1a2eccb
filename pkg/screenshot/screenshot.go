// Package screenshot captures displays or screen regions as images and
// writes them to disk, choosing the encoder from the filename extension.
// Capture is delegated to the platform layer; on headless systems every
// capture call fails with the platform's error.
package screenshot

import (
	"context"
	"fmt"
	"image"

	kb "github.com/kbinani/screenshot"
	"golang.org/x/sync/errgroup"
)

// Displays returns the number of active displays. Zero means capture is
// unavailable (headless session or unsupported platform).
func Displays() int {
	return kb.NumActiveDisplays()
}

// DisplayBounds returns the bounds of display n in the virtual screen
// coordinate space.
func DisplayBounds(n int) (image.Rectangle, error) {
	if err := checkDisplay(n); err != nil {
		return image.Rectangle{}, err
	}
	return kb.GetDisplayBounds(n), nil
}

// CaptureDisplay captures the whole of display n. The capture itself is
// synchronous; ctx is honored only before it starts.
func CaptureDisplay(ctx context.Context, n int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkDisplay(n); err != nil {
		return nil, err
	}
	img, err := kb.CaptureDisplay(n)
	if err != nil {
		return nil, fmt.Errorf("capturing display %d: %w", n, err)
	}
	return img, nil
}

// CaptureRect captures a region of the virtual screen.
func CaptureRect(ctx context.Context, r image.Rectangle) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.Empty() {
		return nil, fmt.Errorf("capture region %v is empty", r)
	}
	img, err := kb.CaptureRect(r)
	if err != nil {
		return nil, fmt.Errorf("capturing region %v: %w", r, err)
	}
	return img, nil
}

// CaptureAll captures every active display concurrently, returning one
// image per display in display order.
func CaptureAll(ctx context.Context) ([]image.Image, error) {
	n := Displays()
	if n == 0 {
		return nil, fmt.Errorf("no active displays")
	}
	images := make([]image.Image, n)
	g, ctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			img, err := CaptureDisplay(ctx, i)
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

func checkDisplay(n int) error {
	count := kb.NumActiveDisplays()
	if count == 0 {
		return fmt.Errorf("no active displays")
	}
	if n < 0 || n >= count {
		return fmt.Errorf("display %d out of range [0,%d)", n, count)
	}
	return nil
}
