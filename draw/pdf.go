package draw

import (
	"fmt"
	"github.com/nmaupu/gofluxx/config"
	"github.com/nmaupu/gopdf"
	"github.com/rs/zerolog/log"
)

// WritePDF writes a PDF document with one page image per PDF page, stretched to the page size.
func WritePDF(pages []string, page config.Page, output string) error {
	if len(pages) == 0 {
		return ErrEmptyDeck
	}

	w, h := page.Points()
	pdf := gopdf.GoPdf{}
	// Unit is pt as gopdf's unit support seems to be broken
	pdf.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: w, H: h},
	})

	for _, p := range pages {
		pdf.AddPage()
		err := pdf.Image(p, 0, 0, &gopdf.Rect{W: w, H: h})
		if err != nil {
			return fmt.Errorf("unable to add %s to pdf: %w", p, err)
		}
	}

	if err := pdf.WritePdf(output); err != nil {
		return fmt.Errorf("unable to write pdf %s: %w", output, err)
	}
	log.Info().
		Str("file", output).
		Int("pages", len(pages)).
		Msg("PDF written successfully")
	return nil
}
