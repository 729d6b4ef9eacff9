package draw

import (
	"errors"
	"fmt"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/nmaupu/gofluxx/config"
	"github.com/nmaupu/gofluxx/imgutil"
	"github.com/rs/zerolog/log"
	"image"
	"os"
	"path/filepath"
	"sort"
)

var (
	ErrEmptyDeck      = errors.New("no card to tile")
	ErrNonUniformDeck = errors.New("cards do not share the same size")
	ErrCardTooLarge   = errors.New("cards do not fit on the page")
)

// Tiler lays card images out on printable pages.
type Tiler struct {
	Page      config.Page
	OutputDir string
	// DPI is used when the first card does not carry its resolution.
	DPI int
}

// PageName returns the file name of the given 1-indexed page.
func PageName(page int) string {
	return fmt.Sprintf("page_%02d.png", page)
}

// TileDirectory tiles every image of dir, in file name order.
func (t Tiler) TileDirectory(dir string) ([]string, error) {
	cards, err := ListCards(dir)
	if err != nil {
		return nil, err
	}
	return t.Tile(cards)
}

// ListCards returns the image files of dir sorted by name.
func ListCards(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var cards []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := imaging.FormatFromFilename(e.Name()); err != nil {
			continue
		}
		cards = append(cards, filepath.Join(dir, e.Name()))
	}
	sort.Strings(cards)
	return cards, nil
}

// Tile writes cards, in the given order, onto as many pages as needed and returns the pages written.
// Cards fill a page left to right then top to bottom. All cards must have the size of the first one.
func (t Tiler) Tile(cards []string) ([]string, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}
	if t.Page.Rows <= 0 || t.Page.Cols <= 0 {
		return nil, fmt.Errorf("invalid page grid %dx%d", t.Page.Rows, t.Page.Cols)
	}

	w, h, err := getImageDimension(cards[0])
	if err != nil {
		return nil, err
	}
	for _, card := range cards[1:] {
		cw, ch, err := getImageDimension(card)
		if err != nil {
			return nil, err
		}
		if cw != w || ch != h {
			return nil, fmt.Errorf("%w: %s is %dx%d, expected %dx%d", ErrNonUniformDeck, card, cw, ch, w, h)
		}
	}

	dpi, err := t.cardDPI(cards[0])
	if err != nil {
		return nil, err
	}

	pageW, pageH := t.Page.Pixels(dpi)
	if t.Page.Cols*w > pageW || t.Page.Rows*h > pageH {
		return nil, fmt.Errorf("%w: %d x %d cards of %dx%d on a %dx%d page",
			ErrCardTooLarge, t.Page.Rows, t.Page.Cols, w, h, pageW, pageH)
	}
	gutter := gutters(pageW, pageH, t.Page.Rows, t.Page.Cols, w, h)

	log.Debug().
		Int("width", pageW).
		Int("height", pageH).
		Int("dpi", dpi).
		Int("gutterX", gutter.X).
		Int("gutterY", gutter.Y).
		Msg("Page layout")

	var pages []string
	perPage := t.Page.PerPage()
	for start := 0; start < len(cards); start += perPage {
		end := start + perPage
		if end > len(cards) {
			end = len(cards)
		}

		cells := make([]Cell, 0, end-start)
		for i, card := range cards[start:end] {
			cells = append(cells, NewCell(gutter, i/t.Page.Cols, i%t.Page.Cols, w, h, card))
		}

		dst := filepath.Join(t.OutputDir, PageName(len(pages)+1))
		if err := t.printPage(dst, pageW, pageH, dpi, gutter, w, h, cells); err != nil {
			return pages, err
		}
		pages = append(pages, dst)

		log.Info().
			Int("page", len(pages)).
			Int("cards", len(cells)).
			Str("file", dst).
			Msg("Page written")
	}

	return pages, nil
}

func (t Tiler) printPage(dst string, pageW, pageH, dpi int, gutter image.Point, w, h int, cells []Cell) error {
	var page image.Image = imaging.New(pageW, pageH, t.Page.Background.NRGBA())
	if t.Page.CutLines {
		page = printCutLines(page, gutter, t.Page.Rows, t.Page.Cols, w, h)
	}

	for _, c := range cells {
		card, err := imgutil.Open(c.Card)
		if err != nil {
			return err
		}
		page = imaging.Paste(page, card, c.Min())
	}

	return imgutil.SavePNG(page, dst, dpi)
}

// printCutLines prints dashed lines along the edges of every cell of the grid.
// Cards are pasted afterwards so lines only show in gutters.
func printCutLines(page image.Image, gutter image.Point, lines, cols, w, h int) image.Image {
	dc := gg.NewContextForImage(page)
	bounds := page.Bounds()

	dc.SetLineWidth(1)
	dc.SetDash(6, 4)
	dc.SetRGB(0.5, 0.5, 0.5)

	for c := 0; c < cols; c++ {
		cell := NewCell(gutter, 0, c, w, h, "")
		for _, x := range []int{cell.X, cell.X + w - 1} {
			dc.DrawLine(float64(x)+0.5, 0, float64(x)+0.5, float64(bounds.Dy()))
		}
	}
	for l := 0; l < lines; l++ {
		cell := NewCell(gutter, l, 0, w, h, "")
		for _, y := range []int{cell.Y, cell.Y + h - 1} {
			dc.DrawLine(0, float64(y)+0.5, float64(bounds.Dx()), float64(y)+0.5)
		}
	}
	dc.Stroke()

	return dc.Image()
}

func (t Tiler) cardDPI(card string) (int, error) {
	x, y, ok, err := imgutil.ReadDPI(card)
	if err != nil && !errors.Is(err, imgutil.ErrNotPNG) {
		return 0, err
	}
	if !ok {
		log.Warn().
			Str("file", card).
			Int("dpi", t.DPI).
			Msg("Card has no resolution, using default")
		if t.DPI <= 0 {
			return 0, fmt.Errorf("no resolution for %s", card)
		}
		return t.DPI, nil
	}
	if x != y {
		return 0, fmt.Errorf("card %s has different horizontal and vertical resolutions (%d, %d)", card, x, y)
	}
	return x, nil
}

func getImageDimension(imagePath string) (int, int, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return 0, 0, err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			log.Error().Err(err).Msg("unable to close file")
		}
	}(file)

	img, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("unable to decode %s: %w", imagePath, err)
	}

	return img.Width, img.Height, nil
}
