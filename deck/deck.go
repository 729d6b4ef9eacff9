package deck

import (
	"errors"
	"fmt"
	"github.com/nmaupu/gofluxx/config"
	"github.com/nmaupu/gofluxx/csvrows"
	"github.com/nmaupu/gofluxx/draw"
	"github.com/rs/zerolog/log"
	"os"
	"path/filepath"
	"strings"
)

// Options are the per run inputs.
type Options struct {
	InputDir string
	// Table is the deck table file name, relative to InputDir.
	Table string
	// PDF is an optional output file gathering all pages.
	PDF string
}

// ErrUnsafeDeckDir is returned when clearing the deck directory would delete the run's own inputs.
var ErrUnsafeDeckDir = errors.New("deck directory overlaps an input directory")

// Result lists what a run produced.
type Result struct {
	Cards   []string
	Skipped int
	Pages   []string
}

// ClearDirectory removes dir if it exists and creates it again, empty.
func ClearDirectory(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("unable to remove %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create %s: %w", dir, err)
	}
	return nil
}

// within reports whether path is dir or lies somewhere below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// checkDeckDir refuses a deck directory equal to or containing the working directory,
// the input directory, the pages directory or the resources directory.
func checkDeckDir(cfg config.Config, inputDir string) error {
	deckDir, err := filepath.Abs(cfg.DeckDir)
	if err != nil {
		return err
	}
	for _, dir := range []string{".", inputDir, cfg.PagesDir, cfg.Resources} {
		if dir == "" {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		if within(deckDir, abs) {
			return fmt.Errorf("%w: %s contains %s", ErrUnsafeDeckDir, cfg.DeckDir, dir)
		}
	}
	return nil
}

// Build renders every card of the deck table into the deck directory, then tiles them onto pages.
// Files already written stay on disk when an error aborts the run.
func Build(cfg config.Config, opts Options) (Result, error) {
	res := Result{}
	if err := checkDeckDir(cfg, opts.InputDir); err != nil {
		return res, err
	}

	table := opts.Table
	if table == "" {
		table = config.DefaultTable
	}
	tablePath := filepath.Join(opts.InputDir, table)

	fonts, err := draw.LoadFonts(cfg)
	if err != nil {
		return res, err
	}
	defer fonts.Close()

	if err := ClearDirectory(cfg.DeckDir); err != nil {
		return res, err
	}
	if err := os.MkdirAll(cfg.PagesDir, 0755); err != nil {
		return res, fmt.Errorf("unable to create %s: %w", cfg.PagesDir, err)
	}

	renderer := draw.NewRenderer(cfg, fonts, opts.InputDir, cfg.DeckDir)
	seen := map[string]bool{}
	err = csvrows.Each(tablePath, func(cells []string) error {
		row, err := draw.ParseRow(cells)
		if err != nil {
			return err
		}

		path, err := renderer.Render(row)
		var goalErr *draw.GoalError
		if errors.As(err, &goalErr) && cfg.SkipInvalidGoals {
			log.Warn().
				Err(err).
				Str("card", row.Name).
				Msg("Skipping invalid goal card")
			res.Skipped++
			return nil
		}
		if err != nil {
			return fmt.Errorf("unable to render %s %q: %w", row.Kind, row.Name, err)
		}

		if path == "" {
			res.Skipped++
			return nil
		}
		// a card rendered twice keeps its first place
		if !seen[path] {
			seen[path] = true
			res.Cards = append(res.Cards, path)
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info().
		Int("cards", len(res.Cards)).
		Int("skipped", res.Skipped).
		Str("dir", cfg.DeckDir).
		Msg("Deck rendered")

	if len(res.Cards) == 0 {
		log.Warn().Str("table", tablePath).Msg("No card rendered, no page to print")
		return res, nil
	}

	log.Debug().
		Int("cards", len(res.Cards)).
		Int("pages", cfg.Page.Count(len(res.Cards))).
		Msg("Tiling pages")
	tiler := draw.Tiler{
		Page:      cfg.Page,
		OutputDir: cfg.PagesDir,
		DPI:       cfg.Card.DPI,
	}
	res.Pages, err = tiler.Tile(res.Cards)
	if err != nil {
		return res, err
	}

	if opts.PDF != "" {
		if err := draw.WritePDF(res.Pages, cfg.Page, opts.PDF); err != nil {
			return res, err
		}
	}

	return res, nil
}
