package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Entry is a file discovered during traversal.
type Entry struct {
	Path string
}

// Options configures directory traversal.
type Options struct {
	Hidden   bool // include hidden files and directories
	NoIgnore bool // skip .gitignore processing
}

// Walk traverses roots concurrently, one goroutine per directory, and sends
// discovered regular files on the returned channel. Roots that are plain
// files are emitted as given, so explicit arguments are always scanned even
// when a filter would drop them. Traversal errors arrive on the second
// channel; both close when the walk completes.
func Walk(roots []string, opts Options) (<-chan Entry, <-chan error) {
	entries := make(chan Entry, 256)
	errs := make(chan error, 16)

	go func() {
		defer close(entries)
		defer close(errs)

		w := &walker{entries: entries, errs: errs, opts: opts}
		for _, root := range roots {
			info, err := os.Stat(root)
			if err != nil {
				errs <- &WalkError{Path: root, Err: err}
				continue
			}
			if !info.IsDir() {
				if info.Mode().IsRegular() {
					entries <- Entry{Path: root}
				}
				continue
			}
			var layers []layer
			if !opts.NoIgnore {
				layers = []layer{loadLayer(root)}
			}
			dir := root
			w.g.Go(func() error {
				w.dir(dir, layers)
				return nil
			})
		}
		w.g.Wait()
	}()

	return entries, errs
}

type walker struct {
	entries chan<- Entry
	errs    chan<- error
	opts    Options
	g       errgroup.Group
}

// dir reads one directory and spawns a goroutine per subdirectory. The
// group is unbounded on purpose: a capped group whose slots are all blocked
// spawning children would deadlock.
func (w *walker) dir(path string, layers []layer) {
	ents, err := os.ReadDir(path)
	if err != nil {
		w.errs <- &WalkError{Path: path, Err: err}
		return
	}

	for _, ent := range ents {
		name := ent.Name()
		full := filepath.Join(path, name)

		if ent.IsDir() {
			if skipDir(name, w.opts.Hidden) || ignored(layers, full, true) {
				continue
			}
			child := layers
			if !w.opts.NoIgnore {
				child = make([]layer, len(layers)+1)
				copy(child, layers)
				child[len(layers)] = loadLayer(full)
			}
			w.g.Go(func() error {
				w.dir(full, child)
				return nil
			})
			continue
		}

		mode := ent.Type()
		if mode&fs.ModeSymlink != 0 {
			// Follow symlinks to regular files only; directory links can
			// form cycles.
			info, err := os.Stat(full)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		} else if !mode.IsRegular() {
			continue
		}

		if !w.opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}
		if IsBinaryName(name) || ignored(layers, full, false) {
			continue
		}
		w.entries <- Entry{Path: full}
	}
}

// skipDir reports directories never worth descending into: VCS metadata
// always, other dotted names unless hidden traversal is on.
func skipDir(name string, hidden bool) bool {
	switch name {
	case ".git", ".svn", ".hg":
		return true
	}
	return !hidden && strings.HasPrefix(name, ".")
}

// WalkError is a traversal failure tied to one path.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return "walk " + e.Path + ": " + e.Err.Error()
}

func (e *WalkError) Unwrap() error {
	return e.Err
}
