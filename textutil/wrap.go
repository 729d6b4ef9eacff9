package textutil

import (
	"github.com/mitchellh/go-wordwrap"
	"strings"
	"unicode"
)

// ParagraphSeparator is the literal two characters sequence used in the deck table
// to separate paragraphs or goal icons. It is not a real line break.
const ParagraphSeparator = `\n`

// Wrap wraps text to lines of at most width characters.
// Words longer than width are broken after a hyphen when possible, in width sized chunks otherwise.
// Blank text gives no line at all.
func Wrap(text string, width int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil
	}

	lines := strings.Split(wordwrap.WrapString(text, uint(width)), "\n")
	ret := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			ret = append(ret, breakLong(l, width)...)
		}
	}
	return ret
}

// breakLong splits line into chunks of at most width runes, cutting after
// the last space or hyphen of a chunk if there is one.
func breakLong(line string, width int) []string {
	runes := []rune(line)
	if width <= 0 || len(runes) <= width {
		return []string{line}
	}

	var ret []string
	for len(runes) > width {
		cut := width
		for i := width; i > 1; i-- {
			if unicode.IsSpace(runes[i-1]) || runes[i-1] == '-' {
				cut = i
				break
			}
		}
		if chunk := strings.TrimSpace(string(runes[:cut])); chunk != "" {
			ret = append(ret, chunk)
		}
		runes = []rune(strings.TrimLeftFunc(string(runes[cut:]), unicode.IsSpace))
	}
	if len(runes) > 0 {
		ret = append(ret, string(runes))
	}
	return ret
}

// SplitParagraphs splits text on ParagraphSeparator.
func SplitParagraphs(text string) []string {
	return strings.Split(text, ParagraphSeparator)
}

// WrapParagraphs wraps every paragraph of text independently and concatenates the resulting lines.
func WrapParagraphs(text string, width int) []string {
	var lines []string
	for _, p := range SplitParagraphs(text) {
		lines = append(lines, Wrap(p, width)...)
	}
	return lines
}
