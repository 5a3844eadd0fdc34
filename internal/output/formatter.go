package output

// Formatter renders a Result into bytes for output. Implementations append
// to buf and return it, so callers can pass buf[:0] to reuse the backing
// array across results.
type Formatter interface {
	Format(buf []byte, result Result, multiFile bool) []byte
}
