package draw

import (
	"github.com/disintegration/imaging"
	"github.com/nmaupu/gofluxx/config"
	"github.com/nmaupu/gofluxx/imgutil"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

var (
	white = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	red   = color.NRGBA{0xff, 0, 0, 0xff}
	green = color.NRGBA{0, 0xff, 0, 0xff}
	blue  = color.NRGBA{0, 0, 0xff, 0xff}
	gray  = color.NRGBA{0x80, 0x80, 0x80, 0xff}
)

func saveImage(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	if err := imaging.Save(imaging.New(w, h, c), path); err != nil {
		t.Fatalf("unable to write %s: %v", path, err)
	}
}

func saveCard(t *testing.T, path string, w, h, dpi int, c color.Color) {
	t.Helper()
	if err := imgutil.SavePNG(imaging.New(w, h, c), path, dpi); err != nil {
		t.Fatalf("unable to write %s: %v", path, err)
	}
}

func openImage(t *testing.T, path string) image.Image {
	t.Helper()
	img, err := imgutil.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func pixel(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func near(got, want color.NRGBA) bool {
	d := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	return d(got.R, want.R) <= 8 && d(got.G, want.G) <= 8 && d(got.B, want.B) <= 8
}

// hasDark reports whether any pixel of r is darker than mid gray.
func hasDark(img image.Image, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if pixel(img, x, y).R < 0x80 {
				return true
			}
		}
	}
	return false
}

// testEnv creates a resource directory with white templates, an input directory and an output directory.
type testEnv struct {
	cfg    config.Config
	fonts  *Fonts
	input  string
	output string
}

func newTestEnv(t *testing.T, kinds ...string) testEnv {
	t.Helper()
	root := t.TempDir()

	cfg := config.Default()
	cfg.Resources = filepath.Join(root, "rsrc")
	cfg.Fonts.Title.File = "" // Go fonts
	cfg.Fonts.Body.File = ""
	mkdir(t, cfg.Resources)
	for _, kind := range kinds {
		saveImage(t, cfg.TemplatePath(kind), 400, 560, white)
	}

	fonts, err := LoadFonts(cfg)
	if err != nil {
		t.Fatalf("LoadFonts() error: %v", err)
	}
	t.Cleanup(func() { fonts.Close() })

	env := testEnv{
		cfg:    cfg,
		fonts:  fonts,
		input:  filepath.Join(root, "input"),
		output: filepath.Join(root, "deck"),
	}
	mkdir(t, env.input)
	mkdir(t, env.output)
	return env
}

func (e testEnv) renderer() *Renderer {
	return NewRenderer(e.cfg, e.fonts, e.input, e.output)
}

func mkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
}
