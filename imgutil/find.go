package imgutil

import (
	"errors"
	"fmt"
	"github.com/disintegration/imaging"
	"image"
	"os"
	"path/filepath"
	"strings"
)

var ErrImageNotFound = errors.New("image not found")

// FindImage looks into dir for an image file whose name without extension equals stem,
// ignoring case. Entries are scanned in file name order and the first decodable match wins.
// It returns ErrImageNotFound when no file matches.
func FindImage(dir, stem string) (image.Image, string, error) {
	path, err := FindImageFile(dir, stem)
	if err != nil {
		return nil, "", err
	}

	img, err := Open(path)
	if err != nil {
		return nil, "", err
	}
	return img, path, nil
}

// FindImageFile is FindImage without decoding.
func FindImageFile(dir, stem string) (string, error) {
	if stem == "" {
		return "", fmt.Errorf("%w: empty name in %s", ErrImageNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if _, err := imaging.FormatFromFilename(name); err != nil {
			continue // not a raster image
		}
		if strings.EqualFold(strings.TrimSuffix(name, filepath.Ext(name)), stem) {
			return filepath.Join(dir, name), nil
		}
	}

	return "", fmt.Errorf("%w: %s in %s", ErrImageNotFound, stem, dir)
}

// Open decodes the image stored at path.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open image %s: %w", path, err)
	}
	return img, nil
}
