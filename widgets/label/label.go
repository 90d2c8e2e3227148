// Package label draws text in the top left corner of a window, one row per
// line, clipped to the window.
package label

import (
	"strings"

	"git.sr.ht/~rockorager/vaxis"
	"github.com/rivo/uniseg"
)

type Label struct {
	// The text to draw. Lines are separated by '\n'
	Text string

	// The style to draw the text as
	Style vaxis.Style

	// Width returns the number of cells a grapheme occupies. It should
	// measure the way the terminal does; nil uses uniseg.StringWidth
	Width func(string) int
}

func New(text string) *Label {
	return &Label{
		Text: text,
	}
}

// Lines returns the rows Draw prints into a window of the given size
func (l *Label) Lines(cols int, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	lines := strings.Split(l.Text, "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		lines[i] = l.clip(line, cols)
	}
	return lines
}

// clip returns the longest prefix of s made of whole graphemes which fits in
// cols cells
func (l *Label) clip(s string, cols int) string {
	width := l.Width
	if width == nil {
		width = uniseg.StringWidth
	}
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		gw := width(g.Str())
		if w+gw > cols {
			start, _ := g.Positions()
			return s[:start]
		}
		w += gw
	}
	return s
}

// Draw prints the label into win. Draw does not clear win
func (l *Label) Draw(win vaxis.Window) {
	cols, rows := win.Size()
	for row, line := range l.Lines(cols, rows) {
		if line == "" {
			continue
		}
		win.New(0, row, cols, 1).Print(vaxis.Segment{
			Text:  line,
			Style: l.Style,
		})
	}
}
