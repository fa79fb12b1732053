// Package pipeline runs the parse → layout → render pipeline for one word.
//
// The CLI and tests share this package so defaults, validation and caching
// behave the same everywhere.
//
// # Stages
//
//  1. Parse: split the word into letters ([alphabet.Parse])
//  2. Layout: place and stitch the glyphs ([layout.Build])
//  3. Render: produce SVG, PNG, PDF or JSON artifacts
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Word:    "tchxd",
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Rendered artifacts are cached by a key derived from the parsed word and
// every option that affects the output. When all requested formats are
// cached the layout stage is skipped.
package pipeline

import (
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gallifreyan/pkg/alphabet"
	"github.com/matzehuels/gallifreyan/pkg/cache"
	errs "github.com/matzehuels/gallifreyan/pkg/errors"
	"github.com/matzehuels/gallifreyan/pkg/layout"
	"github.com/matzehuels/gallifreyan/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and config files
// =============================================================================

const (
	// DefaultRadius is the word ring radius in drawing units.
	DefaultRadius = 6.0

	// DefaultSize is the letter size in drawing units.
	DefaultSize = layout.DefaultSize

	// DefaultWidth is the default output width in pixels.
	DefaultWidth = 640.0

	// DefaultHeight is the default output height in pixels.
	DefaultHeight = 640.0

	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultVizType is the default visualization type.
	DefaultVizType = VizTypeRing

	// DefaultStyle is the default visual style.
	DefaultStyle = "ink"

	// DefaultVowels is the default vowel policy.
	DefaultVowels = VowelsReject
)

// Visualization types.
const (
	VizTypeRing     = "ring"
	VizTypeNodelink = "nodelink"
)

// Vowel policies.
const (
	VowelsReject = "reject"
	VowelsSkip   = "skip"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeRing:     true,
	VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run. The toml tags
// name the keys accepted by [LoadConfig]; Word is never read from a file.
type Options struct {
	// Parse options
	Word string `json:"word" toml:"-"`

	// Layout options
	Radius   float64 `json:"radius,omitempty" toml:"radius"`
	Size     float64 `json:"size,omitempty" toml:"size"`
	Vowels   string  `json:"vowels,omitempty" toml:"vowels"`
	Parallel bool    `json:"parallel,omitempty" toml:"parallel"`

	// Render options
	VizType  string   `json:"viz_type,omitempty" toml:"viz_type"`
	Formats  []string `json:"formats,omitempty" toml:"formats"`
	Style    string   `json:"style,omitempty" toml:"style"`
	Width    float64  `json:"width,omitempty" toml:"width"`
	Height   float64  `json:"height,omitempty" toml:"height"`
	Scale    float64  `json:"scale,omitempty" toml:"png_scale"`
	Guide    bool     `json:"guide,omitempty" toml:"guide"`
	Detailed bool     `json:"detailed,omitempty" toml:"detailed"`

	// Runtime options (not serialized)
	Refresh bool            `json:"-" toml:"-"`
	Logger  *log.Logger     `json:"-" toml:"-"`
	Tracer  alphabet.Tracer `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Word is the parsed input.
	Word alphabet.Word

	// Layout is nil when every artifact came from the cache.
	Layout *layout.Layout

	// LayoutHash identifies the layout inputs; artifact keys derive from it.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Letters    int
	Drawings   int
	Stitches   int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if _, ok := sink.LookupStyle(style); !ok || style == "" {
		return errs.New(errs.ErrCodeInvalidStyle, "invalid style: %q (must be one of: %s)",
			style, strings.Join(sink.StyleNames(), ", "))
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errs.New(errs.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: ring, nodelink)", vizType)
	}
	return nil
}

// ValidateVowels checks that a vowel policy is valid.
func ValidateVowels(policy string) error {
	if policy != VowelsReject && policy != VowelsSkip {
		return errs.New(errs.ErrCodeInvalidConfig, "invalid vowels policy: %q (must be one of: reject, skip)", policy)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks the input word.
func (o *Options) ValidateForParse() error {
	if err := errs.ValidateWord(o.Word); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Vowels == "" {
		o.Vowels = DefaultVowels
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errs.ValidateRadius(o.Radius); err != nil {
		return err
	}
	if !(o.Size > 0) || math.IsInf(o.Size, 1) {
		return errs.New(errs.ErrCodeInvalidInput, "letter size must be positive and finite, got %v", o.Size)
	}
	return ValidateVowels(o.Vowels)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// LayoutOptions translates the layout settings for [layout.Build].
func (o *Options) LayoutOptions() []layout.Option {
	opts := []layout.Option{layout.WithSize(o.Size)}
	if o.Vowels == VowelsSkip {
		opts = append(opts, layout.WithVowels(layout.VowelsSkip))
	}
	if o.Parallel {
		opts = append(opts, layout.WithParallel())
	}
	return opts
}

// LayoutKeyOpts returns cache key options for the layout inputs.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Radius: o.Radius,
		Size:   o.Size,
		Vowels: o.Vowels,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		VizType:  o.VizType,
		Style:    o.Style,
		Width:    o.Width,
		Height:   o.Height,
		Scale:    o.Scale,
		Guide:    o.Guide,
		Detailed: o.Detailed,
	}
}

// SortedFormats returns the formats in a stable order.
func (o *Options) SortedFormats() []string {
	out := slices.Clone(o.Formats)
	slices.Sort(out)
	return slices.Compact(out)
}
