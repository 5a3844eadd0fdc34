package output

import (
	"strconv"

	"github.com/voluta/voluta"
)

// TextFormatter renders results as path:line:col lines with the matched
// region highlighted, or as counts and bare paths in the reduced modes.
type TextFormatter struct {
	styles      Styles
	lineNumbers bool
	countOnly   bool
	filesOnly   bool
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(styles Styles, lineNumbers, countOnly, filesOnly bool) *TextFormatter {
	return &TextFormatter{
		styles:      styles,
		lineNumbers: lineNumbers,
		countOnly:   countOnly,
		filesOnly:   filesOnly,
	}
}

func (f *TextFormatter) Format(buf []byte, result Result, multiFile bool) []byte {
	if f.filesOnly {
		if result.HasMatch() {
			buf = append(buf, f.styles.Filename.Render(result.Path)...)
			buf = append(buf, '\n')
		}
		return buf
	}

	if f.countOnly {
		if multiFile {
			buf = append(buf, f.styles.Filename.Render(result.Path)...)
			buf = append(buf, f.styles.Separator.Render(":")...)
		}
		buf = strconv.AppendInt(buf, int64(result.Count()), 10)
		buf = append(buf, '\n')
		return buf
	}

	cursor := NewCursorAt(result.Data, result.firstLine())
	for _, m := range result.Matches {
		buf = f.appendMatch(buf, cursor, result.Path, m, multiFile)
	}
	return buf
}

func (f *TextFormatter) appendMatch(buf []byte, cursor *Cursor, path string, m voluta.Match, multiFile bool) []byte {
	line, start, lineNum := cursor.Line(m.Start)

	if multiFile {
		buf = append(buf, f.styles.Filename.Render(path)...)
		buf = append(buf, f.styles.Separator.Render(":")...)
	}
	if f.lineNumbers {
		buf = append(buf, f.styles.LineNum.Render(strconv.Itoa(lineNum))...)
		buf = append(buf, f.styles.Separator.Render(":")...)
		buf = append(buf, f.styles.LineNum.Render(strconv.Itoa(m.Start-start+1))...)
		buf = append(buf, f.styles.Separator.Render(":")...)
	}

	// Highlight the matched region, clamped to the line: a match may run
	// past the displayed text when its pattern ends in '\n', or begin
	// before it when its pattern starts with one.
	hs := m.Start - start
	if hs < 0 {
		hs = 0
	}
	if hs > len(line) {
		hs = len(line)
	}
	he := m.End - start
	if he > len(line) {
		he = len(line)
	}
	if he < hs {
		he = hs
	}
	buf = append(buf, line[:hs]...)
	buf = append(buf, f.styles.Match.Render(string(line[hs:he]))...)
	buf = append(buf, line[he:]...)
	buf = append(buf, '\n')
	return buf
}
