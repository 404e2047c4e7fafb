package scale

import (
	"strings"
	"unicode/utf8"
)

const (
	trackRune = '─'
	tickRune  = '┼'
)

// RenderText draws the layout as two lines of the given width in columns: a
// track with a tick per label and, below it, the label texts aligned to
// their ticks. Labels that would overlap an earlier one are dropped from the
// text line; their tick stays.
func RenderText(l Layout, columns int) string {
	if columns < 2 {
		columns = 2
	}
	track := []rune(strings.Repeat(string(trackRune), columns))
	text := []rune(strings.Repeat(" ", columns))

	next := 0 // first free column on the text line
	for _, lb := range l.Labels {
		col := column(lb.Percent, columns)
		track[col] = tickRune

		w := utf8.RuneCountInString(lb.Text)
		start := col
		switch lb.Anchor {
		case AnchorMiddle:
			start = col - w/2
		case AnchorEnd:
			start = col - w + 1
		}
		start = max(0, min(start, columns-w))
		if start < next || w > columns {
			continue
		}
		copy(text[start:], []rune(lb.Text))
		next = start + w + 1
	}
	return string(track) + "\n" + strings.TrimRight(string(text), " ")
}

func column(pct float64, columns int) int {
	c := int(pct/100*float64(columns-1) + 0.5)
	return max(0, min(c, columns-1))
}
