package viewer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Style tags a segment of rendered text.
type Style int

const (
	StyleNormal Style = iota
	StyleCursor
	StyleCaret
	StyleError
)

type Segment struct {
	Text  string
	Style Style
}

// Line is one row of styled text.
type Line []Segment

func (l Line) String() string {
	var b strings.Builder
	for _, seg := range l {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Layout is one frame: a titled frame around the content rows, with a
// status bar on the bottom row.
type Layout struct {
	Title   string
	Content []Line
	Status  Line
}

// ByteSource is the read side of a file window.
type ByteSource interface {
	Filename() string
	Offset() int64
	Size() int64
	ByteAt(addr int64) (byte, error)
}

const title = "sedecim"

// Render derives the frame for s over src. It never changes s; reading a
// byte may load a page into the window's cache.
func Render(s State, src ByteSource) Layout {
	offset := src.Offset()
	size := src.Size()

	jump, jumping := s.Jumping()

	var content []Line
	for i := 0; i < VisibleLines; i++ {
		start := offset + int64(i*LineWidth)
		if start > size {
			break
		}
		var row [LineWidth]byte
		for j := range row {
			// A failed load reads as zero; the window reports the fault.
			row[j], _ = src.ByteAt(start + int64(j))
		}
		cursor := -1
		if !jumping && i == s.Line {
			cursor = s.Column
		}
		content = append(content, dumpLine(start, row, cursor))
	}

	if jumping {
		content = append(content, Line{})
		content = append(content, Line{
			{Text: "Jump to Address (HEX): " + jump.Buffer, Style: StyleNormal},
			{Text: " ", Style: StyleCaret},
		})
		if s.Err != nil {
			content = append(content, Line{{Text: s.Err.Error(), Style: StyleError}})
		}
	}

	status := Line{{
		Text: fmt.Sprintf("%s | %d bytes | cursor %06x",
			filepath.Base(src.Filename()), size, s.Cursor(offset)),
		Style: StyleNormal,
	}}
	if !jumping && s.Err != nil {
		status = append(status, Segment{Text: " | " + s.Err.Error(), Style: StyleError})
	}

	return Layout{Title: title, Content: content, Status: status}
}

// dumpLine lays out one row: offset, hex pairs and the character gutter.
// The byte at cursor (if in range) is styled in both columns.
func dumpLine(start int64, row [LineWidth]byte, cursor int) Line {
	var line Line
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			line = append(line, Segment{Text: plain.String(), Style: StyleNormal})
			plain.Reset()
		}
	}
	styled := func(text string) {
		flush()
		line = append(line, Segment{Text: text, Style: StyleCursor})
	}

	fmt.Fprintf(&plain, " %06x  ", start)
	for i, b := range row {
		if i > 0 {
			plain.WriteByte(' ')
		}
		pair := fmt.Sprintf("%02x", b)
		if i == cursor {
			styled(pair)
		} else {
			plain.WriteString(pair)
		}
	}
	plain.WriteString(" | ")
	for i, b := range row {
		plain.WriteByte(' ')
		if i == cursor {
			styled(string(gutterChar(b)))
		} else {
			plain.WriteByte(gutterChar(b))
		}
	}
	plain.WriteByte(' ')
	flush()
	return line
}

func gutterChar(b byte) byte {
	if b >= 32 && b < 128 {
		return b
	}
	return '.'
}
