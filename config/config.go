package config

// EmptyDelimiterPolicy decides what a splitter does when the delimiter matches
// a zero-length region, e.g. an empty Literal.
type EmptyDelimiterPolicy uint8

const (
	// StepRunes yields the text before a zero-width match, or exactly one character
	// when the match is at the very beginning of the remainder. For an empty Literal
	// this behaves exactly as strings.Split(s, "") does.
	StepRunes EmptyDelimiterPolicy = iota + 1
	// Reject panics with errors.ErrEmptyDelimiter as soon as a zero-width match is
	// detected. Splitters probe the delimiter on construction, so the panic usually
	// fires before the first piece is requested.
	Reject
)

// Config holds settings of a splitter.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, as zero values are intentionally invalid.
type Config struct {
	EmptyDelimiter EmptyDelimiterPolicy
}

// Default returns default config.
func Default() *Config {
	return &Config{
		EmptyDelimiter: StepRunes,
	}
}
