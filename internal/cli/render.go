package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gallifreyan/pkg/pipeline"
)

// stdoutPath selects standard output for a single artifact.
const stdoutPath = "-"

// renderFlags holds the render command's flags that are not pipeline options.
type renderFlags struct {
	formats string
	output  string
	config  string
	noCache bool
}

// flagSetters copies one flag's value from the parsed flags into the merged
// options. Only flags the user set are copied, so config file values survive.
var flagSetters = map[string]func(dst *pipeline.Options, src pipeline.Options){
	"radius":   func(d *pipeline.Options, s pipeline.Options) { d.Radius = s.Radius },
	"size":     func(d *pipeline.Options, s pipeline.Options) { d.Size = s.Size },
	"vowels":   func(d *pipeline.Options, s pipeline.Options) { d.Vowels = s.Vowels },
	"parallel": func(d *pipeline.Options, s pipeline.Options) { d.Parallel = s.Parallel },
	"viz":      func(d *pipeline.Options, s pipeline.Options) { d.VizType = s.VizType },
	"style":    func(d *pipeline.Options, s pipeline.Options) { d.Style = s.Style },
	"width":    func(d *pipeline.Options, s pipeline.Options) { d.Width = s.Width },
	"height":   func(d *pipeline.Options, s pipeline.Options) { d.Height = s.Height },
	"scale":    func(d *pipeline.Options, s pipeline.Options) { d.Scale = s.Scale },
	"guide":    func(d *pipeline.Options, s pipeline.Options) { d.Guide = s.Guide },
	"detailed": func(d *pipeline.Options, s pipeline.Options) { d.Detailed = s.Detailed },
	"refresh":  func(d *pipeline.Options, s pipeline.Options) { d.Refresh = s.Refresh },
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var rf renderFlags
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()

	cmd := &cobra.Command{
		Use:   "render WORD",
		Short: "Draw a word as circular script",
		Long: `Draw a word as circular script.

Letters are placed clockwise from the top of the word ring. Digraphs such as
CH, TH, QU and NG are grouped automatically. Vowels have no glyph yet: pass
--vowels skip to lay out the consonants around them.

Settings are read from ~/.config/gallifreyan/config.toml when present
(or the file given with --config); flags override the file.`,
		Example: `  gallifreyan render tchxd
  gallifreyan render shrek -f svg,png -o shrek --style chalk
  gallifreyan render thing --vowels skip --guide -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := mergeOptions(cmd, rf, opts)
			if err != nil {
				return err
			}
			merged.Word = args[0]
			return c.runRender(cmd.Context(), merged, rf)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&rf.output, "output", "o", "", `output file (single format), base path (multiple), or "-" for stdout`)
	f.StringVarP(&rf.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	f.StringVar(&rf.config, "config", "", "config file (default ~/.config/gallifreyan/config.toml)")
	f.BoolVar(&rf.noCache, "no-cache", false, "disable caching")
	f.BoolVar(&opts.Refresh, "refresh", false, "re-render even when cached")

	f.Float64Var(&opts.Radius, "radius", opts.Radius, "word ring radius")
	f.Float64Var(&opts.Size, "size", opts.Size, "letter size")
	f.StringVar(&opts.Vowels, "vowels", opts.Vowels, "vowel handling: reject (default), skip")
	f.BoolVar(&opts.Parallel, "parallel", false, "generate letter drawings concurrently")

	f.StringVarP(&opts.VizType, "viz", "t", opts.VizType, "visualization: ring (default), nodelink")
	f.StringVar(&opts.Style, "style", opts.Style, "colour scheme: ink (default), chalk")
	f.Float64Var(&opts.Width, "width", opts.Width, "output width in pixels")
	f.Float64Var(&opts.Height, "height", opts.Height, "output height in pixels")
	f.Float64Var(&opts.Scale, "scale", opts.Scale, "PNG resolution multiplier")
	f.BoolVar(&opts.Guide, "guide", false, "draw the full word ring faintly (ring)")
	f.BoolVar(&opts.Detailed, "detailed", false, "label nodes with glyph details (nodelink)")

	return cmd
}

// mergeOptions layers explicitly set flags over the config file.
func mergeOptions(cmd *cobra.Command, rf renderFlags, flags pipeline.Options) (pipeline.Options, error) {
	merged, err := loadConfig(rf.config)
	if err != nil {
		return pipeline.Options{}, err
	}
	for name, set := range flagSetters {
		if cmd.Flags().Changed(name) {
			set(&merged, flags)
		}
	}
	if cmd.Flags().Changed("format") || len(merged.Formats) == 0 {
		merged.Formats = parseFormats(rf.formats)
	}
	return merged, nil
}

// runRender executes the pipeline and writes each artifact.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, rf renderFlags) error {
	runner, err := c.newRunner(rf.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.Tracer = tokenTracer(c.Logger)

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", result.Word))

	paths, err := outputPaths(rf.output, result.Word.String(), opts.SortedFormats())
	if err != nil {
		return err
	}

	for _, format := range opts.SortedFormats() {
		data := result.Artifacts[format]
		path := paths[format]
		if path == stdoutPath {
			_, err := c.Out.Write(data)
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	printSuccess(c.Out, "Rendered %s", StyleValue.Render(result.Word.String()))
	printStats(c.Out, result.Stats.Letters, result.Stats.Drawings, result.Stats.Stitches, result.CacheInfo.RenderHit)
	for _, format := range opts.SortedFormats() {
		printFile(c.Out, paths[format])
	}
	return nil
}

// outputPaths maps each format to its destination file. A single format
// is written to output as given; several formats share output as a base
// path. Without output the lowercase word names the files.
func outputPaths(output, word string, formats []string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))
	if output == stdoutPath {
		if len(formats) != 1 {
			return nil, fmt.Errorf("stdout output needs exactly one format, got %d", len(formats))
		}
		paths[formats[0]] = stdoutPath
		return paths, nil
	}
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths, nil
	}

	base := basePath(output, word)
	for _, format := range formats {
		paths[format] = base + "." + format
	}
	return paths, nil
}

// basePath strips a known format extension from output, or derives a
// base name from the word when output is empty.
func basePath(output, word string) string {
	if output == "" {
		return strings.ToLower(word)
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
