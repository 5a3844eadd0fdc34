package walker

import (
	"bytes"
	"path/filepath"
	"strings"
)

const sniffLen = 8 << 10

// IsBinary reports whether data looks like binary content. A NUL byte in
// the first 8KB is the same heuristic git uses.
func IsBinary(data []byte) bool {
	n := len(data)
	if n > sniffLen {
		n = sniffLen
	}
	return bytes.IndexByte(data[:n], 0) >= 0
}

var binaryExts = map[string]struct{}{
	".a": {}, ".bin": {}, ".bz2": {}, ".class": {}, ".dll": {},
	".dylib": {}, ".exe": {}, ".gif": {}, ".gz": {}, ".ico": {},
	".jar": {}, ".jpeg": {}, ".jpg": {}, ".mp3": {}, ".mp4": {},
	".o": {}, ".obj": {}, ".pdf": {}, ".png": {}, ".pyc": {},
	".so": {}, ".tar": {}, ".tgz": {}, ".webp": {}, ".woff": {},
	".woff2": {}, ".xz": {}, ".zip": {}, ".zst": {},
}

// IsBinaryName reports whether name's extension marks a file that is never
// worth opening. Versioned shared objects like libfoo.so.6 have no usable
// filepath extension, so those are checked by substring.
func IsBinaryName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := binaryExts[ext]; ok {
		return true
	}
	return strings.Contains(name, ".so.")
}
