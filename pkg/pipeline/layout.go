package pipeline

import (
	"context"

	"github.com/matzehuels/gallifreyan/pkg/alphabet"
	"github.com/matzehuels/gallifreyan/pkg/layout"
)

// GenerateLayout lays out a parsed word with the layout settings in opts.
func GenerateLayout(ctx context.Context, w alphabet.Word, opts Options) (layout.Layout, error) {
	if err := ctx.Err(); err != nil {
		return layout.Layout{}, err
	}
	opts.SetLayoutDefaults()
	return layout.Build(w, opts.Radius, opts.LayoutOptions()...)
}
