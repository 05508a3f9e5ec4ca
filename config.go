package sonavara

// Config controls limits enforced during Compile. The Config returned by
// DefaultConfig is always safe to use; a Config built by hand with a field
// left at 0 means "unlimited" for that field.
//
// Example:
//
//	cfg := sonavara.DefaultConfig()
//	cfg.MaxStates = 5000
//	re, err := sonavara.CompileWithConfig(`a{1,500}`, cfg)
type Config struct {
	// MaxRepeatCount bounds the m and n in {m,n}, {m,}, and {m}
	// repetition. Without it, a pattern like a{1,1000000} can make
	// Compile spend unbounded time and memory expanding the repetition
	// into that many copies of its operand before the NFA is even built.
	// 0 means unlimited. Default: 1000.
	MaxRepeatCount int

	// MaxStates bounds the total number of NFA states Compile may build
	// for one pattern, independent of how that size was reached (nested
	// repetition, deep alternation, or both). 0 means unlimited.
	// Default: 100000.
	MaxStates uint32
}

// DefaultConfig returns a Config with sane limits for untrusted or
// user-supplied patterns. Compile uses these defaults internally;
// CompileWithConfig lets a caller raise or remove them.
func DefaultConfig() Config {
	return Config{
		MaxRepeatCount: 1000,
		MaxStates:      100000,
	}
}
