package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// Set implements pflag.Value so --color validates as it parses.
func (m *ColorMode) Set(s string) error {
	switch s {
	case "auto":
		*m = ColorAuto
	case "always":
		*m = ColorAlways
	case "never":
		*m = ColorNever
	default:
		return fmt.Errorf("must be auto, always, or never")
	}
	return nil
}

func (m *ColorMode) Type() string {
	return "mode"
}

var _ pflag.Value = (*ColorMode)(nil)

// Config holds all configuration for one voluta invocation.
type Config struct {
	Patterns      []string
	IgnoreCase    bool
	WholeWord     bool
	NoOverlap     bool
	Strategy      string
	ChunkSize     int
	BufferSize    int
	Workers       int
	Recursive     bool
	Hidden        bool
	NoIgnore      bool
	LineNumbers   bool
	CountOnly     bool
	FilesOnly     bool
	Quiet         bool
	JSONOutput    bool
	Color         ColorMode
	MmapThreshold int64
	Verbose       bool
	Paths         []string
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if len(c.Patterns) == 0 {
		return fmt.Errorf("no pattern specified")
	}
	switch c.Strategy {
	case "", "auto", "lines", "mapped", "parallel", "stream":
	default:
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	if c.CountOnly && c.FilesOnly {
		return fmt.Errorf("cannot use -c (count) and -l (files-with-matches) together")
	}
	if c.JSONOutput && c.CountOnly {
		return fmt.Errorf("cannot use --json and -c (count) together")
	}
	if c.JSONOutput && c.FilesOnly {
		return fmt.Errorf("cannot use --json and -l (files-with-matches) together")
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("invalid chunk size: %d", c.ChunkSize)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("invalid buffer size: %d", c.BufferSize)
	}
	return nil
}
