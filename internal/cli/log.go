// Package cli implements the gallifreyan command-line interface.
//
// # Commands
//
//   - render: draw a word as SVG, PNG, PDF or JSON
//   - parse: show how a word splits into letters
//   - alphabet: list every letter and its glyph recipe
//   - cache: manage the local artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces parser tokens and pipeline stage timings.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gallifreyan/pkg/alphabet"
	"github.com/matzehuels/gallifreyan/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// tokenTracer logs every token the parser groups.
func tokenTracer(l *log.Logger) alphabet.Tracer {
	return alphabet.TracerFunc(func(offset int, token string) {
		l.Debug("token", "offset", offset, "text", token)
	})
}

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func installHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

func (h logHooks) OnParseStart(_ context.Context, word string) {
	h.logger.Debug("parse start", "word", word)
}

func (h logHooks) OnParseComplete(_ context.Context, word string, letters int, d time.Duration, err error) {
	h.complete("parse", err, "word", word, "letters", letters, "duration", d)
}

func (h logHooks) OnLayoutStart(_ context.Context, vizType string, letters int) {
	h.logger.Debug("layout start", "viz", vizType, "letters", letters)
}

func (h logHooks) OnLayoutComplete(_ context.Context, vizType string, drawings int, d time.Duration, err error) {
	h.complete("layout", err, "viz", vizType, "drawings", drawings, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.complete("render", err, "formats", formats, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h logHooks) complete(stage string, err error, kv ...any) {
	if err != nil {
		h.logger.Debug(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.logger.Debug(stage+" done", kv...)
}
