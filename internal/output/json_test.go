package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/voluta/voluta"
)

func TestJSONFormatter_BasicMatch(t *testing.T) {
	f := NewJSONFormatter()
	result := Result{
		Path:    "test.txt",
		Data:    []byte("hello world\n"),
		Matches: []voluta.Match{{Start: 6, End: 11, Pattern: "world"}},
	}

	got := string(f.Format(nil, result, false))
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}

	var jm map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &jm); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if jm["file"] != "test.txt" {
		t.Errorf("file = %v, want test.txt", jm["file"])
	}
	if jm["pattern"] != "world" {
		t.Errorf("pattern = %v, want world", jm["pattern"])
	}
	if jm["start"].(float64) != 6 {
		t.Errorf("start = %v, want 6", jm["start"])
	}
	if jm["end"].(float64) != 11 {
		t.Errorf("end = %v, want 11", jm["end"])
	}
	if jm["line"].(float64) != 1 {
		t.Errorf("line = %v, want 1", jm["line"])
	}
	if jm["column"].(float64) != 7 {
		t.Errorf("column = %v, want 7", jm["column"])
	}
}

func TestJSONFormatter_MultipleLines(t *testing.T) {
	f := NewJSONFormatter()
	result := Result{
		Path: "test.txt",
		Data: []byte("first\nskip\nthird\n"),
		Matches: []voluta.Match{
			{Start: 0, End: 5, Pattern: "first"},
			{Start: 11, End: 16, Pattern: "third"},
		},
	}

	got := string(f.Format(nil, result, true))
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var jm map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &jm); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if jm["line"].(float64) != 3 {
		t.Errorf("line = %v, want 3", jm["line"])
	}
	if jm["column"].(float64) != 1 {
		t.Errorf("column = %v, want 1", jm["column"])
	}
}

func TestJSONFormatter_NoMatches(t *testing.T) {
	f := NewJSONFormatter()
	result := Result{Path: "test.txt", Data: []byte("nothing\n")}

	if got := f.Format(nil, result, false); len(got) != 0 {
		t.Errorf("got %q, want empty", got)
	}
}
