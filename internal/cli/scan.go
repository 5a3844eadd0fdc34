package cli

import (
	"github.com/spf13/cobra"
)

var (
	scanPatterns      []string
	scanIgnoreCase    bool
	scanWholeWord     bool
	scanNoOverlap     bool
	scanStrategy      string
	scanChunkSize     int
	scanBufferSize    int
	scanWorkers       int
	scanRecursive     bool
	scanHidden        bool
	scanNoIgnore      bool
	scanJSON          bool
	scanLineNums      bool
	scanCountOnly     bool
	scanFilesOnly     bool
	scanQuiet         bool
	scanMmapThreshold int64
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] PATTERN [path ...]",
	Short: "Search files or standard input for fixed patterns",
	Long: `Scan reports every occurrence of the patterns in the given paths.
With no paths, or with "-", it reads standard input. Patterns are fixed
strings; pass -e multiple times to search for several at once.`,
	Args: cobra.ArbitraryArgs,
	RunE: runScanCmd,
}

func init() {
	f := scanCmd.Flags()
	f.StringArrayVarP(&scanPatterns, "pattern", "e", nil, "pattern to search for; repeatable")
	f.BoolVarP(&scanIgnoreCase, "ignore-case", "i", false, "case-insensitive matching")
	f.BoolVarP(&scanWholeWord, "word", "w", false, "match whole words only")
	f.BoolVar(&scanNoOverlap, "no-overlap", false, "report leftmost non-overlapping occurrences only")
	f.StringVar(&scanStrategy, "strategy", "auto", "scan strategy: auto, lines, mapped, parallel, stream")
	f.IntVar(&scanChunkSize, "chunk-size", 0, "window size in bytes for chunked scans (0 = 8MiB)")
	f.IntVar(&scanBufferSize, "buffer-size", 0, "read buffer in bytes for stream scans (0 = 8MiB)")
	f.IntVarP(&scanWorkers, "workers", "j", 0, "parallel scan workers (0 = 2x CPUs)")
	f.BoolVarP(&scanRecursive, "recursive", "r", false, "descend into directories")
	f.BoolVar(&scanHidden, "hidden", false, "include hidden files when recursing")
	f.BoolVar(&scanNoIgnore, "no-ignore", false, "do not honor .gitignore files")
	f.BoolVar(&scanJSON, "json", false, "emit one JSON object per match")
	f.BoolVarP(&scanLineNums, "line-number", "n", false, "prefix matches with line and column")
	f.BoolVarP(&scanCountOnly, "count", "c", false, "print match counts only")
	f.BoolVarP(&scanFilesOnly, "files-with-matches", "l", false, "print matching file names only")
	f.BoolVarP(&scanQuiet, "quiet", "q", false, "suppress output; exit status only")
	f.Int64Var(&scanMmapThreshold, "mmap-threshold", 0, "map files at least this large (0 = 1MiB)")
}

func runScanCmd(cmd *cobra.Command, args []string) error {
	patterns := scanPatterns
	if len(patterns) == 0 && len(args) > 0 {
		patterns = args[:1]
		args = args[1:]
	}

	cfg := Config{
		Patterns:      patterns,
		IgnoreCase:    scanIgnoreCase,
		WholeWord:     scanWholeWord,
		NoOverlap:     scanNoOverlap,
		Strategy:      scanStrategy,
		ChunkSize:     scanChunkSize,
		BufferSize:    scanBufferSize,
		Workers:       scanWorkers,
		Recursive:     scanRecursive,
		Hidden:        scanHidden,
		NoIgnore:      scanNoIgnore,
		JSONOutput:    scanJSON,
		LineNumbers:   scanLineNums,
		CountOnly:     scanCountOnly,
		FilesOnly:     scanFilesOnly,
		Quiet:         scanQuiet,
		Color:         flagColor,
		MmapThreshold: scanMmapThreshold,
		Verbose:       flagVerbose,
		Paths:         args,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	exitCode = Run(cfg)
	return nil
}
