package pipeline

import (
	"context"

	"github.com/matzehuels/gallifreyan/pkg/alphabet"
	errs "github.com/matzehuels/gallifreyan/pkg/errors"
)

// Parse validates and parses opts.Word.
func Parse(ctx context.Context, opts Options) (alphabet.Word, error) {
	if err := ctx.Err(); err != nil {
		return alphabet.Word{}, err
	}
	if err := errs.ValidateWord(opts.Word); err != nil {
		return alphabet.Word{}, err
	}

	var parseOpts []alphabet.ParseOption
	if opts.Tracer != nil {
		parseOpts = append(parseOpts, alphabet.WithTracer(opts.Tracer))
	}
	return alphabet.Parse(opts.Word, parseOpts...)
}
