package draw

import (
	"errors"
	"fmt"
	"github.com/nmaupu/gofluxx/config"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"io/fs"
	"os"
)

// Fonts holds the faces used to write on cards.
type Fonts struct {
	Title font.Face
	Body  font.Face
}

// LoadFonts loads title and body fonts from the configured files.
// A font file which does not exist is replaced by a Go font.
func LoadFonts(cfg config.Config) (*Fonts, error) {
	title, err := loadFace(cfg.FontPath(cfg.Fonts.Title), cfg.Fonts.Title.Size, gobold.TTF)
	if err != nil {
		return nil, err
	}
	body, err := loadFace(cfg.FontPath(cfg.Fonts.Body), cfg.Fonts.Body.Size, goregular.TTF)
	if err != nil {
		title.Close()
		return nil, err
	}
	return &Fonts{Title: title, Body: body}, nil
}

func (f *Fonts) Close() error {
	return errors.Join(f.Title.Close(), f.Body.Close())
}

func loadFace(path string, size float64, fallback []byte) (font.Face, error) {
	fontLogger := log.With().Str("font", path).Float64("size", size).Logger()

	data := fallback
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fontLogger.Warn().Msg("Font file not found, using default font")
		case err != nil:
			return nil, fmt.Errorf("unable to read font %s: %w", path, err)
		default:
			data = raw
		}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse font %s: %w", path, err)
	}

	// 72 dpi makes the size a pixel size
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create font face %s: %w", path, err)
	}
	fontLogger.Debug().Msg("Font loaded")
	return face, nil
}
