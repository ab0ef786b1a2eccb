package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoExtension is returned when a filename carries no extension to infer
// an image format from.
var ErrNoExtension = errors.New("screenshot: filename has no extension")

type encoder func(io.Writer, image.Image) error

var encoders = map[string]encoder{
	"png":  func(w io.Writer, img image.Image) error { return png.Encode(w, img) },
	"jpg":  encodeJPEG,
	"jpeg": encodeJPEG,
	"gif":  func(w io.Writer, img image.Image) error { return gif.Encode(w, img, nil) },
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, nil)
}

// Ext returns the lower-cased filename extension without its dot, or
// ErrNoExtension when the filename has none. Only the final path element is
// examined, so a dot in a directory name is not an extension.
func Ext(filename string) (string, error) {
	base := filepath.Base(filename)
	dot := strings.LastIndexByte(base, '.')
	if dot < 0 || dot == len(base)-1 {
		return "", fmt.Errorf("%w: %q", ErrNoExtension, filename)
	}
	return strings.ToLower(base[dot+1:]), nil
}

// Formats returns the supported filename suffixes.
func Formats() []string {
	return []string{"gif", "jpeg", "jpg", "png"}
}

// Save writes img to path, picking the encoder from the filename suffix.
// An unknown suffix is an error naming the supported formats.
func Save(img image.Image, path string) error {
	ext, err := Ext(path)
	if err != nil {
		return err
	}
	enc, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("unsupported image format %q (supported: %s)",
			ext, strings.Join(Formats(), ", "))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := enc(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
