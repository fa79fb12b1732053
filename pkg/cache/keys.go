package cache

// LayoutKeyOpts are the layout inputs that change the geometry.
type LayoutKeyOpts struct {
	Radius float64 `json:"radius"`
	Size   float64 `json:"size"`
	Vowels string  `json:"vowels"`
}

// ArtifactKeyOpts are the render inputs that change one output file.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	VizType  string  `json:"viz_type"`
	Style    string  `json:"style"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Scale    float64 `json:"scale,omitempty"`
	Guide    bool    `json:"guide,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey identifies the layout of word. Artifact keys are derived
	// from its hash, so a cached artifact can be served without laying the
	// word out again.
	LayoutKey(word string, opts LayoutKeyOpts) string

	// ArtifactKey identifies one rendered artifact of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(word string, opts LayoutKeyOpts) string {
	return hashKey("layout", word, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
