package walker

import (
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// layer is one directory's .gitignore, matched against paths relative to
// that directory. Deeper directories stack additional layers.
type layer struct {
	dir    string
	parser *ignore.GitIgnore
}

// loadLayer compiles dir/.gitignore. A missing or unreadable file yields a
// layer with a nil parser, which never matches.
func loadLayer(dir string) layer {
	parser, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return layer{dir: dir}
	}
	return layer{dir: dir, parser: parser}
}

// ignored reports whether any layer's patterns match path. Directories are
// matched with a trailing slash so rules like "build/" behave as git does.
func ignored(layers []layer, path string, isDir bool) bool {
	for _, l := range layers {
		if l.parser == nil {
			continue
		}
		rel, err := filepath.Rel(l.dir, path)
		if err != nil {
			continue
		}
		if isDir {
			rel += "/"
		}
		if l.parser.MatchesPath(rel) {
			return true
		}
	}
	return false
}
