package union

// Option is a functional option for configuring a union operation.
type Option func(*union)

// WithDedupe removes duplicate rows from the result, keeping the first
// occurrence in concatenation order.
func WithDedupe() Option {
	return func(u *union) {
		u.dedupe = true
	}
}

// WithDedupeColumns restricts duplicate detection to the given columns.
// Implies WithDedupe.
func WithDedupeColumns(columns ...string) Option {
	return func(u *union) {
		u.dedupe = true
		u.dedupeColumns = append([]string(nil), columns...)
	}
}

// WithStrictColumns requires every input to have identical columns in
// identical order; any deviation fails the union instead of padding.
func WithStrictColumns() Option {
	return func(u *union) {
		u.strictColumns = true
	}
}

// WithChunkSize enables chunked processing for file unions: each input is
// streamed and appended in chunks of n rows instead of being held fully in
// memory. Has no effect on in-memory unions.
func WithChunkSize(n int) Option {
	return func(u *union) {
		u.chunkSize = n
	}
}

// WithProgress enables per-file progress logging for long file unions.
func WithProgress() Option {
	return func(u *union) {
		u.progress = true
	}
}
