package draw

import (
	"errors"
	"fmt"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/nmaupu/gofluxx/config"
	"github.com/nmaupu/gofluxx/imgutil"
	"github.com/nmaupu/gofluxx/textutil"
	"github.com/rs/zerolog/log"
	"image"
	"path/filepath"
)

const KindGoal = "goal"

var (
	ErrShortRow  = errors.New("row has less than 3 columns")
	ErrEmptyName = errors.New("card name gives an empty file name")
)

// Row is one line of the deck table.
type Row struct {
	Kind        string
	Name        string
	Description string
}

// ParseRow reads kind, name and description from the first three cells, extra cells are ignored.
func ParseRow(cells []string) (Row, error) {
	if len(cells) < 3 {
		return Row{}, fmt.Errorf("%w: %q", ErrShortRow, cells)
	}
	return Row{Kind: cells[0], Name: cells[1], Description: cells[2]}, nil
}

// Renderer composes card images from their templates.
type Renderer struct {
	cfg       config.Config
	fonts     *Fonts
	inputDir  string
	outputDir string
}

func NewRenderer(cfg config.Config, fonts *Fonts, inputDir, outputDir string) *Renderer {
	return &Renderer{
		cfg:       cfg,
		fonts:     fonts,
		inputDir:  inputDir,
		outputDir: outputDir,
	}
}

// Render composes the card described by row and saves it into the output directory.
// It returns the path of the card written, or an empty path if row.Kind has no template.
func (r *Renderer) Render(row Row) (string, error) {
	tpl, ok := r.cfg.Templates[row.Kind]
	if !ok {
		log.Debug().
			Str("kind", row.Kind).
			Str("card", row.Name).
			Msg("Unknown card kind, skipping")
		return "", nil
	}

	stem := textutil.Stem(row.Name)
	if stem == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyName, row.Name)
	}

	img, err := r.Compose(row, tpl, stem)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(r.outputDir, stem+".png")
	if err := imgutil.SavePNG(img, dst, r.cfg.Card.DPI); err != nil {
		return "", err
	}

	log.Debug().
		Str("kind", row.Kind).
		Str("card", row.Name).
		Str("file", dst).
		Msg("Card written")
	return dst, nil
}

// Compose draws row onto a fresh copy of its template.
func (r *Renderer) Compose(row Row, tpl config.Template, stem string) (image.Image, error) {
	base, err := imgutil.Open(r.cfg.TemplatePath(row.Kind))
	if err != nil {
		return nil, err
	}

	dc := gg.NewContextForImage(base)
	textColor := r.cfg.Text.Color.NRGBA()
	x := r.cfg.Text.X

	// Multi-line titles grow upwards so they stay centered on the anchor
	title := textutil.Wrap(row.Name, r.cfg.Text.TitleWidth)
	titleY := tpl.Title
	if len(title) > 1 {
		titleY -= r.cfg.Text.TitleLineShift * (len(title) - 1)
	}
	printTextBlock(dc, r.fonts.Title, float64(x), float64(titleY), title, r.cfg.Text.LineSpacing, textColor)

	if row.Kind == KindGoal {
		return r.pasteGoalIcons(dc.Image(), row, image.Pt(x, tpl.Description))
	}

	desc := textutil.WrapParagraphs(row.Description, r.cfg.Text.DescriptionWidth)
	printTextBlock(dc, r.fonts.Body, float64(x), float64(tpl.Description), desc, r.cfg.Text.LineSpacing, textColor)

	icon, _, err := imgutil.FindImage(r.inputDir, stem)
	switch {
	case errors.Is(err, imgutil.ErrImageNotFound):
		return dc.Image(), nil
	case err != nil:
		return nil, err
	}

	size := r.cfg.Card.IconSize
	return imaging.Paste(dc.Image(), imgutil.ResizeToFit(icon, size, size), image.Pt(x, tpl.Description)), nil
}

// pasteGoalIcons pastes the 2 or 3 icons named by a goal card description.
// Two icons sit side by side at anchor, a third one is centered below them.
func (r *Renderer) pasteGoalIcons(dst image.Image, row Row, anchor image.Point) (image.Image, error) {
	var icons []image.Image
	for _, token := range textutil.SplitParagraphs(row.Description) {
		icon, _, err := imgutil.FindImage(r.inputDir, textutil.Stem(token))
		if errors.Is(err, imgutil.ErrImageNotFound) {
			return nil, &GoalError{Card: row.Name, Reason: GoalIconUnresolved, Token: token}
		}
		if err != nil {
			return nil, err
		}
		icons = append(icons, icon)
	}

	if len(icons) != 2 && len(icons) != 3 {
		return nil, &GoalError{Card: row.Name, Reason: GoalIconCount, Count: len(icons)}
	}

	size := r.cfg.Card.GoalIconSize
	offsets := []image.Point{
		anchor,
		anchor.Add(image.Pt(size, 0)),
		anchor.Add(image.Pt(size/2, size)),
	}

	out := imaging.Clone(dst)
	for i, icon := range icons {
		out = imaging.Paste(out, imgutil.ResizeToFit(icon, size, size), offsets[i])
	}
	return out, nil
}
