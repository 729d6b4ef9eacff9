package imgutil

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/disintegration/imaging"
	"hash/crc32"
	"image"
	"io"
	"math"
	"os"
)

const (
	pngSignature   = "\x89PNG\r\n\x1a\n"
	inchesPerMeter = 1 / 0.0254
	unitMeter      = 1
)

var ErrNotPNG = errors.New("not a png file")

// SavePNG encodes img as PNG to path and records dpi in a pHYs chunk.
func SavePNG(img image.Image, path string, dpi int) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return fmt.Errorf("unable to encode %s: %w", path, err)
	}

	data, err := withPhys(buf.Bytes(), dpi)
	if err != nil {
		return fmt.Errorf("unable to set dpi of %s: %w", path, err)
	}

	return os.WriteFile(path, data, 0644)
}

// ReadDPI returns the horizontal and vertical resolution stored in the pHYs chunk of the png at path.
// ok is false when the file carries no resolution in a physical unit.
func ReadDPI(path string) (x, y int, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, false, err
	}
	defer f.Close()

	return readPhys(bufio.NewReader(f))
}

// withPhys inserts a pHYs chunk right after IHDR.
func withPhys(data []byte, dpi int) ([]byte, error) {
	if len(data) < len(pngSignature)+8 || string(data[:len(pngSignature)]) != pngSignature {
		return nil, ErrNotPNG
	}

	ihdrLen := int(binary.BigEndian.Uint32(data[len(pngSignature):]))
	end := len(pngSignature) + 12 + ihdrLen
	if end > len(data) {
		return nil, ErrNotPNG
	}

	ppm := uint32(math.Round(float64(dpi) * inchesPerMeter))
	payload := make([]byte, 9)
	binary.BigEndian.PutUint32(payload[0:], ppm)
	binary.BigEndian.PutUint32(payload[4:], ppm)
	payload[8] = unitMeter

	out := make([]byte, 0, len(data)+21)
	out = append(out, data[:end]...)
	out = appendChunk(out, "pHYs", payload)
	out = append(out, data[end:]...)
	return out, nil
}

func appendChunk(b []byte, typ string, payload []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, uint32(len(payload)))
	start := len(b)
	b = append(b, typ...)
	b = append(b, payload...)
	return binary.BigEndian.AppendUint32(b, crc32.ChecksumIEEE(b[start:]))
}

func readPhys(r io.Reader) (int, int, bool, error) {
	sig := make([]byte, len(pngSignature))
	if _, err := io.ReadFull(r, sig); err != nil || string(sig) != pngSignature {
		return 0, 0, false, ErrNotPNG
	}

	header := make([]byte, 8)
	for {
		if _, err := io.ReadFull(r, header); err != nil {
			return 0, 0, false, fmt.Errorf("unable to read png chunk: %w", err)
		}
		length := binary.BigEndian.Uint32(header[:4])
		typ := string(header[4:])

		switch typ {
		case "pHYs":
			payload := make([]byte, length+4) // + crc
			if _, err := io.ReadFull(r, payload); err != nil {
				return 0, 0, false, fmt.Errorf("unable to read pHYs chunk: %w", err)
			}
			if length < 9 || payload[8] != unitMeter {
				return 0, 0, false, nil
			}
			x := math.Round(float64(binary.BigEndian.Uint32(payload[0:])) / inchesPerMeter)
			y := math.Round(float64(binary.BigEndian.Uint32(payload[4:])) / inchesPerMeter)
			return int(x), int(y), true, nil
		case "IDAT", "IEND":
			// pHYs must precede image data
			return 0, 0, false, nil
		}

		if _, err := io.CopyN(io.Discard, r, int64(length)+4); err != nil {
			return 0, 0, false, fmt.Errorf("unable to skip %s chunk: %w", typ, err)
		}
	}
}
