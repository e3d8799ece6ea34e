// Package layout breaks text into lines for drawing onto a fixed canvas.
// Nothing here touches fonts or images: widths come from a caller-supplied
// MeasureFunc, and drawing is delegated to a caller-supplied DrawFunc.
package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// MeasureFunc returns the rendered width of s in pixels.
type MeasureFunc func(s string) float64

// DrawFunc draws s with its baseline origin at (x, y).
type DrawFunc func(s string, x, y float64)

// Truncate shortens text to at most maxLength runes, replacing the tail with
// "..." when it does not fit. maxLength must be at least 3.
func Truncate(text string, maxLength int) string {
	if maxLength < len(ellipsis) {
		panic(fmt.Sprintf("layout: Truncate maxLength %d is less than %d", maxLength, len(ellipsis)))
	}
	if text == "" {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	keep := maxLength - len(ellipsis)
	i := 0
	for n := range text {
		if keep == 0 {
			i = n
			break
		}
		keep--
	}
	return text[:i] + ellipsis
}

// Wrap splits text greedily into lines no wider than maxWidth.
//
// Words are separated by single spaces and each line keeps the trailing
// space appended after its last word. The overflow test measures the
// candidate line (current line plus the next word), so a word that is wider
// than maxWidth on its own still gets a line to itself and is never split.
// Empty text yields no lines.
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	if text == "" {
		return nil
	}
	words := strings.Split(text, " ")
	var lines []string
	line := ""
	for n, word := range words {
		candidate := line + word + " "
		if measure(candidate) > maxWidth && n > 0 {
			lines = append(lines, line)
			line = word + " "
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// Block is wrapped text laid out at a fixed line height.
type Block struct {
	Lines      []string
	LineHeight float64
}

// Layout wraps text and returns the resulting block.
func Layout(text string, maxWidth, lineHeight float64, measure MeasureFunc) Block {
	return Block{Lines: Wrap(text, maxWidth, measure), LineHeight: lineHeight}
}

// Height is the vertical space consumed by the block.
func (b Block) Height() float64 {
	return float64(len(b.Lines)) * b.LineHeight
}

// Draw renders each line at (x, y + i*LineHeight) and returns Height.
func (b Block) Draw(x, y float64, draw DrawFunc) float64 {
	for i, line := range b.Lines {
		draw(line, x, y+float64(i)*b.LineHeight)
	}
	return b.Height()
}
