// Package encode writes rendered pixel buffers to image files.
//
// Buffers hold straight (non-premultiplied) RGBA pixels, so they are
// exposed as [image.NRGBA] values.
package encode

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrFormat is returned for unsupported image formats.
var ErrFormat = errors.New("unsupported image format")

// Image wraps a width×height RGBA pixel buffer as an image.
// The pixel data is shared, not copied.
func Image(pix []byte, width, height int) (*image.NRGBA, error) {
	if width < 0 || height < 0 || len(pix) != width*height*4 {
		return nil, fmt.Errorf("%dx%d image needs %d bytes, got %d",
			width, height, width*height*4, len(pix))
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// FormatFromName returns the image format implied by the file name
// extension: "png", "bmp" or "tiff".
func FormatFromName(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		return "png", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, ext)
}

// Write encodes img in the given format.
func Write(w io.Writer, format string, img image.Image) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrFormat, format)
}

// Save writes a width×height RGBA pixel buffer to the named file.
// The format is chosen by the file name extension.
func Save(filename string, pix []byte, width, height int) (err error) {
	format, err := FormatFromName(filename)
	if err != nil {
		return err
	}
	img, err := Image(pix, width, height)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := Write(f, format, img); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}
