package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/voluta/voluta"
	"github.com/voluta/voluta/internal/output"
	"github.com/voluta/voluta/internal/watch"
)

var (
	tailPatterns   []string
	tailIgnoreCase bool
	tailWholeWord  bool
	tailNoOverlap  bool
	tailJSON       bool
)

var tailCmd = &cobra.Command{
	Use:   "tail [flags] PATTERN file ...",
	Short: "Follow growing files and report new matches",
	Long: `Tail watches the given files and scans lines as they are appended,
like tail -f piped into a matcher. Rotated or truncated files are picked
up again from the start of the new content.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTailCmd,
}

func init() {
	f := tailCmd.Flags()
	f.StringArrayVarP(&tailPatterns, "pattern", "e", nil, "pattern to search for; repeatable")
	f.BoolVarP(&tailIgnoreCase, "ignore-case", "i", false, "case-insensitive matching")
	f.BoolVarP(&tailWholeWord, "word", "w", false, "match whole words only")
	f.BoolVar(&tailNoOverlap, "no-overlap", false, "report leftmost non-overlapping occurrences only")
	f.BoolVar(&tailJSON, "json", false, "emit one JSON object per match")
}

func runTailCmd(cmd *cobra.Command, args []string) error {
	patterns := tailPatterns
	if len(patterns) == 0 && len(args) > 0 {
		patterns = args[:1]
		args = args[1:]
	}
	if len(args) == 0 {
		return fmt.Errorf("no files to follow")
	}

	cfg := Config{
		Patterns:   patterns,
		IgnoreCase: tailIgnoreCase,
		WholeWord:  tailWholeWord,
		NoOverlap:  tailNoOverlap,
		JSONOutput: tailJSON,
		Color:      flagColor,
		Verbose:    flagVerbose,
		Paths:      args,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	exitCode = RunTail(cfg)
	return nil
}

// RunTail follows the configured files until interrupted.
// Returns exit code: 0 on shutdown, 2 on setup error.
func RunTail(cfg Config) int {
	logger := newLogger(cfg.Verbose)

	m, err := newMatcher(cfg)
	if err != nil {
		logger.Error("invalid patterns", "err", err)
		return 2
	}

	formatter := newFormatter(cfg)
	w := output.NewWriter(os.Stdout)

	watcher, err := watch.New()
	if err != nil {
		logger.Error("cannot create watcher", "err", err)
		return 2
	}
	defer watcher.Close()

	// Track tailed files by absolute path, since events carry them that
	// way. Watching each parent directory catches rotated files being
	// recreated under the same name.
	files := make(map[string]*tailFile)
	for _, path := range cfg.Paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			logger.Error("cannot resolve path", "path", path, "err", err)
			return 2
		}
		if err := watcher.Add(abs); err != nil {
			logger.Error("cannot watch", "path", path, "err", err)
			return 2
		}
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			logger.Warn("cannot watch parent", "path", path, "err", err)
		}
		files[abs] = &tailFile{}
	}

	multiFile := len(cfg.Paths) > 1
	var buf []byte
	for evt := range watcher.Events() {
		if evt.Err != nil {
			logger.Warn("watch error", "err", evt.Err)
			continue
		}

		switch evt.Op {
		case watch.OpAppend:
			tf := files[evt.Path]
			if tf == nil {
				continue
			}
			data, err := watcher.ReadAppended(evt.Path)
			if err != nil {
				logger.Warn("read error", "path", evt.Path, "err", err)
				continue
			}
			if len(data) == 0 {
				continue
			}
			buf = tf.feed(buf[:0], m, formatter, evt.Path, data, multiFile)
			if len(buf) > 0 {
				w.Write(buf)
			}

		case watch.OpCreate:
			tf := files[evt.Path]
			if tf == nil {
				continue
			}
			// The tailed name reappeared after rotation; follow the new
			// file from its first byte.
			if err := watcher.Rearm(evt.Path); err != nil {
				logger.Warn("cannot rewatch", "path", evt.Path, "err", err)
				continue
			}
			tf.reset()
			logger.Debug("following new file", "path", evt.Path)

		case watch.OpRotate:
			if tf := files[evt.Path]; tf != nil {
				logger.Debug("file rotated away", "path", evt.Path)
				watcher.Forget(evt.Path)
				tf.reset()
			}
		}
	}

	return 0
}

// tailFile buffers the unterminated tail of one followed file and counts
// the lines already scanned.
type tailFile struct {
	partial []byte
	lines   int
}

func (tf *tailFile) reset() {
	tf.partial = nil
	tf.lines = 0
}

// feed scans the lines completed by data and appends their formatted
// matches to buf. Bytes after the last newline wait for the next append.
func (tf *tailFile) feed(buf []byte, m *voluta.Matcher, f output.Formatter, path string, data []byte, multiFile bool) []byte {
	chunk := append(tf.partial, data...)
	cut := bytes.LastIndexByte(chunk, '\n')
	if cut < 0 {
		tf.partial = chunk
		return buf
	}
	complete := chunk[:cut+1]
	tf.partial = append([]byte(nil), chunk[cut+1:]...)

	matches := lineMatches(m, complete)
	first := tf.lines + 1
	tf.lines += bytes.Count(complete, []byte{'\n'})
	if len(matches) == 0 {
		return buf
	}

	result := output.Result{
		Path:      path,
		Matches:   matches,
		Data:      complete,
		FirstLine: first,
	}
	return f.Format(buf, result, multiFile)
}
