package config

import (
	"image/color"
	"path/filepath"
)

type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Config holds everything needed to render a deck, resolved once and injected into the renderer.
type Config struct {
	Resources        string              `mapstructure:"resources"`
	DeckDir          string              `mapstructure:"deckDir"`
	PagesDir         string              `mapstructure:"pagesDir"`
	SkipInvalidGoals bool                `mapstructure:"skipInvalidGoals"`
	Fonts            Fonts               `mapstructure:"fonts"`
	Text             Text                `mapstructure:"text"`
	Card             Card                `mapstructure:"card"`
	Page             Page                `mapstructure:"page"`
	Templates        map[string]Template `mapstructure:"templates"`
}

// Template gives the vertical anchors of a card kind, in pixels.
type Template struct {
	Title       int `mapstructure:"title"`
	Description int `mapstructure:"description"`
}

type Fonts struct {
	Title Font `mapstructure:"title"`
	Body  Font `mapstructure:"body"`
}

type Font struct {
	File string  `mapstructure:"file"`
	Size float64 `mapstructure:"size"`
}

// Text configures how titles and descriptions are laid out on a card.
// TitleLineShift moves the title up by this many pixels for every extra line.
type Text struct {
	Color            Color `mapstructure:"color"`
	X                int   `mapstructure:"x"`
	TitleWidth       int   `mapstructure:"titleWidth"`
	DescriptionWidth int   `mapstructure:"descriptionWidth"`
	TitleLineShift   int   `mapstructure:"titleLineShift"`
	LineSpacing      int   `mapstructure:"lineSpacing"`
}

type Card struct {
	DPI          int `mapstructure:"dpi"`
	IconSize     int `mapstructure:"iconSize"`
	GoalIconSize int `mapstructure:"goalIconSize"`
}

// Page describes the printable pages, Width and Height are in inches.
type Page struct {
	Rows        int         `mapstructure:"rows"`
	Cols        int         `mapstructure:"cols"`
	Width       float64     `mapstructure:"width"`
	Height      float64     `mapstructure:"height"`
	Orientation Orientation `mapstructure:"orientation"`
	Background  Color       `mapstructure:"background"`
	CutLines    bool        `mapstructure:"cutLines"`
}

type Color struct {
	R, G, B uint8
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// TemplatePath returns the path of the template image used by cards of the given kind.
func (c Config) TemplatePath(kind string) string {
	return filepath.Join(c.Resources, kind+".png")
}

// FontPath resolves f relatively to the resources directory.
// An empty string means no font file is configured.
func (c Config) FontPath(f Font) string {
	if f.File == "" || filepath.IsAbs(f.File) {
		return f.File
	}
	return filepath.Join(c.Resources, f.File)
}

// PerPage is the number of cards a page can hold.
func (p Page) PerPage() int {
	return p.Rows * p.Cols
}

// Count returns the number of pages needed for n cards.
func (p Page) Count(n int) int {
	if p.PerPage() <= 0 {
		return 0
	}
	return (n + p.PerPage() - 1) / p.PerPage()
}

// Pixels returns the page size in pixels at the given resolution.
func (p Page) Pixels(dpi int) (int, int) {
	w := int(p.Width * float64(dpi))
	h := int(p.Height * float64(dpi))
	if p.Orientation == Landscape {
		return h, w
	}
	return w, h
}

// Points returns the page size in PDF points.
func (p Page) Points() (float64, float64) {
	w, h := p.Width*72, p.Height*72
	if p.Orientation == Landscape {
		return h, w
	}
	return w, h
}
