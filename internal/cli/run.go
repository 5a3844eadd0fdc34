package cli

import (
	"bytes"
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/voluta/voluta"
	"github.com/voluta/voluta/internal/input"
	"github.com/voluta/voluta/internal/output"
	"github.com/voluta/voluta/internal/scheduler"
	"github.com/voluta/voluta/internal/walker"
)

// Run executes one scan with the given config.
// Returns exit code: 0 = match found, 1 = no match, 2 = error.
func Run(cfg Config) int {
	logger := newLogger(cfg.Verbose)

	m, err := newMatcher(cfg)
	if err != nil {
		logger.Error("invalid patterns", "err", err)
		return 2
	}

	formatter := newFormatter(cfg)
	w := output.NewWriter(os.Stdout)

	if len(cfg.Paths) == 0 || (len(cfg.Paths) == 1 && cfg.Paths[0] == "-") {
		return runStdin(m, formatter, w, cfg, logger)
	}
	if cfg.Recursive {
		return runRecursive(m, formatter, w, cfg, logger)
	}
	return runFiles(m, formatter, w, cfg, logger)
}

func newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}

func newMatcher(cfg Config) (*voluta.Matcher, error) {
	return voluta.New(cfg.Patterns,
		voluta.WithCaseInsensitive(cfg.IgnoreCase),
		voluta.WithWholeWord(cfg.WholeWord),
		voluta.WithOverlapping(!cfg.NoOverlap),
	)
}

func newFormatter(cfg Config) output.Formatter {
	if cfg.JSONOutput {
		return output.NewJSONFormatter()
	}
	styles := output.NoStyles()
	if useColor(cfg.Color) {
		styles = output.NewStyles()
	}
	return output.NewTextFormatter(styles, cfg.LineNumbers, cfg.CountOnly, cfg.FilesOnly)
}

// useColor resolves the color mode, honoring NO_COLOR in auto mode.
func useColor(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && output.StdoutIsTerminal()
	}
}

func runStdin(m *voluta.Matcher, formatter output.Formatter, w *output.Writer, cfg Config, logger *log.Logger) int {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Error("read stdin", "err", err)
		return 2
	}

	result := output.Result{Data: data}
	if cfg.Strategy == "lines" {
		result.Matches = lineMatches(m, data)
	} else {
		result.Matches = m.FindAll(data)
	}

	if !result.HasMatch() {
		return 1
	}
	if !cfg.Quiet {
		w.Write(formatter.Format(nil, result, false))
	}
	return 0
}

func runFiles(m *voluta.Matcher, formatter output.Formatter, w *output.Writer, cfg Config, logger *log.Logger) int {
	scan := newScanFunc(m, cfg)
	multiFile := len(cfg.Paths) > 1
	hasMatch := false

	var buf []byte
	for _, path := range cfg.Paths {
		result := scan(path)
		if result.Err != nil {
			logger.Warn("scan error", "path", path, "err", result.Err)
			continue
		}
		if result.HasMatch() {
			hasMatch = true
			if cfg.Quiet {
				release(result)
				return 0
			}
		}
		if !cfg.Quiet {
			buf = formatter.Format(buf[:0], result, multiFile)
			w.Write(buf)
		}
		release(result)
	}

	if hasMatch {
		return 0
	}
	return 1
}

func runRecursive(m *voluta.Matcher, formatter output.Formatter, w *output.Writer, cfg Config, logger *log.Logger) int {
	entries, errCh := walker.Walk(cfg.Paths, walker.Options{
		Hidden:   cfg.Hidden,
		NoIgnore: cfg.NoIgnore,
	})

	go func() {
		for err := range errCh {
			logger.Warn("walk error", "err", err)
		}
	}()

	if cfg.Quiet {
		formatter = discardFormatter{}
	}

	sched := scheduler.New(cfg.Workers, newScanFunc(m, cfg))
	results := sched.Run(entries)

	var hasMatch atomic.Bool
	ow := output.NewOrderedWriter(w, formatter, true)
	ow.WriteOrdered(results, func(r output.Result) {
		if r.Err != nil {
			logger.Warn("scan error", "path", r.Path, "err", r.Err)
			return
		}
		if r.HasMatch() {
			hasMatch.Store(true)
		}
	})

	if hasMatch.Load() {
		return 0
	}
	return 1
}

// newScanFunc builds the per-file scan shared by the sequential and
// scheduled paths.
func newScanFunc(m *voluta.Matcher, cfg Config) scheduler.ScanFunc {
	loader := input.NewAdaptiveLoader(cfg.MmapThreshold)
	renderless := cfg.Quiet || cfg.CountOnly || cfg.FilesOnly

	return func(path string) output.Result {
		result := output.Result{Path: path}

		if cfg.Strategy == "stream" {
			if binaryFile(path) {
				return result
			}
			matches, err := m.FindFileStream(path, cfg.BufferSize)
			if err != nil {
				result.Err = err
				return result
			}
			result.Matches = matches
			if len(matches) == 0 || renderless {
				return result
			}
			// Placing matches in their lines needs the corpus after all.
			d, err := loader.Load(path)
			if err != nil {
				result.Err = err
				return result
			}
			result.Data = d.Bytes
			result.Release = func() { d.Close() }
			return result
		}

		d, err := loader.Load(path)
		if err != nil {
			result.Err = err
			return result
		}
		if d.Bytes == nil || walker.IsBinary(d.Bytes) {
			d.Close()
			return result
		}
		result.Data = d.Bytes
		result.Release = func() { d.Close() }

		switch cfg.Strategy {
		case "lines":
			result.Matches = lineMatches(m, d.Bytes)
		case "mapped":
			result.Matches = m.FindAllChunked(d.Bytes, cfg.ChunkSize)
		default: // auto, parallel
			result.Matches = m.FindAllParallel(d.Bytes, cfg.ChunkSize, cfg.Workers)
		}
		return result
	}
}

// lineMatches scans data one line at a time, so occurrences never span
// newlines and non-overlapping mode restarts at each line. Offsets are
// relative to data, not the line.
func lineMatches(m *voluta.Matcher, data []byte) []voluta.Match {
	var out []voluta.Match
	start := 0
	for start < len(data) {
		end := len(data)
		if i := bytes.IndexByte(data[start:], '\n'); i >= 0 {
			end = start + i + 1
		}
		for _, lm := range m.FindAll(data[start:end]) {
			lm.Start += start
			lm.End += start
			out = append(out, lm)
		}
		start = end
	}
	return out
}

// binaryFile sniffs the first 8KB of path, mirroring the loaded-data check
// for strategies that never hold the whole file.
func binaryFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, 8<<10)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	return walker.IsBinary(buf[:n])
}

func release(r output.Result) {
	if r.Release != nil {
		r.Release()
	}
}

// discardFormatter renders nothing; quiet mode still drains results for the
// exit status.
type discardFormatter struct{}

func (discardFormatter) Format(buf []byte, _ output.Result, _ bool) []byte {
	return buf
}
