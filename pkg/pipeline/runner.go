package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gallifreyan/pkg/alphabet"
	"github.com/matzehuels/gallifreyan/pkg/cache"
	"github.com/matzehuels/gallifreyan/pkg/layout"
	"github.com/matzehuels/gallifreyan/pkg/observability"
)

// NodelinkScope prefixes cache keys of nodelink artifacts so they never share
// an entry with ring renders of the same layout.
const NodelinkScope = "nodelink:"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	w, err := r.Parse(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Word = w
	result.Stats.Letters = w.Len()
	result.Stats.ParseTime = time.Since(parseStart)

	r.Logger.Info("parsed word",
		"word", w.String(),
		"letters", w.Len(),
		"consonants", w.Consonants(),
		"duration", result.Stats.ParseTime)

	result.LayoutHash = r.LayoutHash(w, opts)

	// Skip layout entirely when every requested artifact is cached.
	if !opts.Refresh {
		if artifacts, ok := r.cachedArtifacts(ctx, result.LayoutHash, opts); ok {
			result.Artifacts = artifacts
			result.CacheInfo.RenderHit = true
			r.Logger.Info("served from cache", "formats", opts.Formats)
			return result, nil
		}
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	l, err := r.GenerateLayout(ctx, w, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = &l
	result.Stats.Drawings = len(l.Drawings)
	result.Stats.Stitches = len(l.Stitches)
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("computed layout",
		"drawings", len(l.Drawings),
		"stitches", len(l.Stitches),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	for format, data := range artifacts {
		key := r.ArtifactKey(result.LayoutHash, opts, format)
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse parses opts.Word and reports the stage to the pipeline hooks.
func (r *Runner) Parse(ctx context.Context, opts Options) (alphabet.Word, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.Word)

	start := time.Now()
	w, err := Parse(ctx, opts)
	hooks.OnParseComplete(ctx, opts.Word, w.Len(), time.Since(start), err)
	return w, err
}

// GenerateLayout lays out w and reports the stage to the pipeline hooks.
func (r *Runner) GenerateLayout(ctx context.Context, w alphabet.Word, opts Options) (layout.Layout, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.VizType, w.Len())

	start := time.Now()
	l, err := GenerateLayout(ctx, w, opts)
	hooks.OnLayoutComplete(ctx, opts.VizType, len(l.Drawings), time.Since(start), err)
	if err != nil {
		return layout.Layout{}, err
	}

	opts.Logger.Debug("placed letters", "radius", l.Radius, "size", l.Size, "edges", len(l.Edges()))
	return l, nil
}

// Render produces the requested artifacts and reports the stage to the
// pipeline hooks. It does not consult the cache.
func (r *Runner) Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)

	start := time.Now()
	artifacts, err := Render(l, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// LayoutHash identifies the layout of w under opts. Artifact cache keys
// are derived from it.
func (r *Runner) LayoutHash(w alphabet.Word, opts Options) string {
	opts.SetLayoutDefaults()
	return cache.Hash([]byte(r.Keyer.LayoutKey(w.String(), opts.LayoutKeyOpts())))
}

// ArtifactKey is the cache key of one rendered format. Nodelink artifacts
// live under NodelinkScope.
func (r *Runner) ArtifactKey(layoutHash string, opts Options, format string) string {
	keyer := r.Keyer
	if opts.IsNodelink() {
		keyer = cache.NewScopedKeyer(keyer, NodelinkScope)
	}
	return keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
}

// cachedArtifacts returns every requested format from the cache, or false
// if any one is missing.
func (r *Runner) cachedArtifacts(ctx context.Context, layoutHash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.ArtifactKey(layoutHash, opts, format)
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, "artifact")
		artifacts[format] = data
	}
	return artifacts, true
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
