package walker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnored_BasicMatching(t *testing.T) {
	dir := t.TempDir()
	gitignore := filepath.Join(dir, ".gitignore")
	os.WriteFile(gitignore, []byte("*.log\nbuild/\n!important.log\n"), 0644)

	layers := []layer{loadLayer(dir)}

	tests := []struct {
		name  string
		path  string
		isDir bool
		want  bool
	}{
		{"matches glob", filepath.Join(dir, "app.log"), false, true},
		{"no match", filepath.Join(dir, "app.txt"), false, false},
		{"dir pattern matches dir", filepath.Join(dir, "build"), true, true},
		{"dir pattern skips file", filepath.Join(dir, "build"), false, false},
		{"negation", filepath.Join(dir, "important.log"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ignored(layers, tt.path, tt.isDir)
			if got != tt.want {
				t.Errorf("ignored(%q, isDir=%v) = %v, want %v", tt.path, tt.isDir, got, tt.want)
			}
		})
	}
}

func TestIgnored_NestedLayers(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	os.Mkdir(sub, 0755)

	os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.tmp\n"), 0644)
	os.WriteFile(filepath.Join(sub, ".gitignore"), []byte("*.dat\n"), 0644)

	layers := []layer{loadLayer(root), loadLayer(sub)}

	// Root rule applies below sub as well
	if !ignored(layers, filepath.Join(sub, "test.tmp"), false) {
		t.Error("expected root .gitignore to match *.tmp in subdirectory")
	}

	// Sub rule applies
	if !ignored(layers, filepath.Join(sub, "test.dat"), false) {
		t.Error("expected sub .gitignore to match *.dat")
	}

	// Neither matches
	if ignored(layers, filepath.Join(sub, "test.txt"), false) {
		t.Error("expected test.txt to not be ignored")
	}
}

func TestIgnored_MissingGitignore(t *testing.T) {
	dir := t.TempDir()
	layers := []layer{loadLayer(dir)}

	if layers[0].parser != nil {
		t.Error("expected nil parser for missing .gitignore")
	}
	if ignored(layers, filepath.Join(dir, "anything.txt"), false) {
		t.Error("expected no ignoring when .gitignore doesn't exist")
	}
}
