package output

import "encoding/json"

// JSONFormatter renders results as JSON Lines, one object per match.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonMatch struct {
	File    string `json:"file,omitempty"`
	Pattern string `json:"pattern"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func (f *JSONFormatter) Format(buf []byte, result Result, multiFile bool) []byte {
	if len(result.Matches) == 0 {
		return buf
	}

	cursor := NewCursorAt(result.Data, result.firstLine())
	for _, m := range result.Matches {
		_, start, lineNum := cursor.Line(m.Start)
		data, _ := json.Marshal(jsonMatch{
			File:    result.Path,
			Pattern: m.Pattern,
			Start:   m.Start,
			End:     m.End,
			Line:    lineNum,
			Column:  m.Start - start + 1,
		})
		buf = append(buf, data...)
		buf = append(buf, '\n')
	}
	return buf
}

var _ Formatter = (*JSONFormatter)(nil)
var _ Formatter = (*TextFormatter)(nil)
