package encode

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testPixels() []byte {
	// 2×1 image: half transparent red, opaque blue
	return []byte{
		255, 0, 0, 128,
		0, 0, 255, 255,
	}
}

func TestImageSharesPixels(t *testing.T) {
	pix := testPixels()
	img, err := Image(pix, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	got := img.NRGBAAt(0, 0)
	if got != (color.NRGBA{255, 0, 0, 128}) {
		t.Errorf("pixel (0,0) = %v", got)
	}

	pix[4] = 7
	if img.NRGBAAt(1, 0).R != 7 {
		t.Error("image does not share the pixel buffer")
	}
}

func TestImageSizeMismatch(t *testing.T) {
	if _, err := Image(make([]byte, 7), 2, 1); err == nil {
		t.Error("expected an error for a short buffer")
	}
	if _, err := Image(nil, -1, 0); err == nil {
		t.Error("expected an error for a negative width")
	}
}

func TestFormatFromName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"out.png", "png"},
		{"OUT.PNG", "png"},
		{"a/b/c.bmp", "bmp"},
		{"x.tif", "tiff"},
		{"x.tiff", "tiff"},
	}
	for _, c := range cases {
		got, err := FormatFromName(c.name)
		if err != nil || got != c.want {
			t.Errorf("FormatFromName(%q) = %q, %v; want %q", c.name, got, err, c.want)
		}
	}

	if _, err := FormatFromName("x.jpg"); !errors.Is(err, ErrFormat) {
		t.Errorf("FormatFromName(x.jpg): got %v, want ErrFormat", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	decoders := map[string]func(string) (image.Image, error){
		"png":  decodeWith(png.Decode),
		"bmp":  decodeWith(bmp.Decode),
		"tiff": decodeWith(tiff.Decode),
	}

	for _, ext := range []string{"png", "bmp", "tiff"} {
		t.Run(ext, func(t *testing.T) {
			name := filepath.Join(dir, "test."+ext)
			if err := Save(name, testPixels(), 2, 1); err != nil {
				t.Fatal(err)
			}
			img, err := decoders[ext](name)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
				t.Fatalf("bounds = %v", b)
			}
			// the opaque pixel survives every format unchanged
			got := color.NRGBAModel.Convert(img.At(1, 0)).(color.NRGBA)
			if got != (color.NRGBA{0, 0, 255, 255}) {
				t.Errorf("pixel (1,0) = %v", got)
			}
		})
	}
}

func TestSavePNGKeepsStraightAlpha(t *testing.T) {
	name := filepath.Join(t.TempDir(), "alpha.png")
	if err := Save(name, testPixels(), 2, 1); err != nil {
		t.Fatal(err)
	}
	img, err := decodeWith(png.Decode)(name)
	if err != nil {
		t.Fatal(err)
	}
	got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if got != (color.NRGBA{255, 0, 0, 128}) {
		t.Errorf("pixel (0,0) = %v, want {255 0 0 128}", got)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if err := Write(nil, "gif", img); !errors.Is(err, ErrFormat) {
		t.Errorf("got %v, want ErrFormat", err)
	}
}

func decodeWith(decode func(r io.Reader) (image.Image, error)) func(string) (image.Image, error) {
	return func(name string) (image.Image, error) {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return decode(f)
	}
}
