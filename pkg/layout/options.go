package layout

// DefaultSize is the letter size used when no WithSize option is given.
const DefaultSize = 2.0

// VowelPolicy decides what Build does with vowels, whose geometry is not
// defined yet.
type VowelPolicy int

const (
	// VowelsReject fails the layout with an UNIMPLEMENTED error.
	VowelsReject VowelPolicy = iota
	// VowelsSkip leaves vowels out of the drawing. They still appear in
	// Layout.Characters with no glyph.
	VowelsSkip
)

// String returns "reject" or "skip".
func (p VowelPolicy) String() string {
	if p == VowelsSkip {
		return "skip"
	}
	return "reject"
}

type config struct {
	size     float64
	parallel bool
	vowels   VowelPolicy
}

// Option configures Build.
type Option func(*config)

// WithSize sets the letter size.
func WithSize(size float64) Option {
	return func(c *config) { c.size = size }
}

// WithParallel draws letters concurrently. Output order is unchanged.
func WithParallel() Option {
	return func(c *config) { c.parallel = true }
}

// WithVowels sets the vowel policy.
func WithVowels(p VowelPolicy) Option {
	return func(c *config) { c.vowels = p }
}
