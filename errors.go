package voluta

import "github.com/voluta/voluta/internal/matcher"

// ErrNoPatterns is returned by New when no non-empty patterns remain after
// filtering the input.
var ErrNoPatterns = matcher.ErrNoPatterns
