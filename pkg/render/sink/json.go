package sink

import (
	"encoding/json"

	"github.com/matzehuels/gallifreyan/pkg/layout"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style    string
	drawings bool
}

// WithJSONStyle records the style name in the output.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONDrawings includes the sampled points of every drawing.
func WithJSONDrawings() JSONOption { return func(r *jsonRenderer) { r.drawings = true } }

type jsonOutput struct {
	Word       string          `json:"word"`
	Radius     float64         `json:"radius"`
	Size       float64         `json:"size"`
	Style      string          `json:"style,omitempty"`
	Characters []jsonCharacter `json:"characters"`
	Stitches   []jsonStitch    `json:"stitches"`
	Drawings   []jsonDrawing   `json:"drawings,omitempty"`
}

type jsonCharacter struct {
	Letter   string  `json:"letter"`
	Index    int     `json:"index"`
	Angle    float64 `json:"angle"`
	Shape    string  `json:"shape,omitempty"`
	Ornament string  `json:"ornament,omitempty"`
	Drawn    bool    `json:"drawn"`
}

type jsonStitch struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type jsonDrawing struct {
	Kind   string       `json:"kind"`
	Points [][2]float32 `json:"points"`
}

// RenderJSON exports the layout as a pretty-printed JSON document.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Word:       l.Word.String(),
		Radius:     l.Radius,
		Size:       l.Size,
		Style:      r.style,
		Characters: make([]jsonCharacter, 0, len(l.Characters)),
		Stitches:   make([]jsonStitch, 0, len(l.Stitches)),
	}
	for _, c := range l.Characters {
		jc := jsonCharacter{
			Letter: c.Letter.String(),
			Index:  c.Index,
			Angle:  float64(c.Position.Angle()),
			Drawn:  c.Drawn,
		}
		if c.Drawn {
			jc.Shape = c.Glyph.Base.Shape.String()
			jc.Ornament = c.Glyph.Ornament.String()
		}
		out.Characters = append(out.Characters, jc)
	}
	for _, s := range l.Stitches {
		out.Stitches = append(out.Stitches, jsonStitch{
			From:  s.From.String(),
			To:    s.To.String(),
			Start: float64(s.Range.Start),
			End:   float64(s.Range.End),
		})
	}
	if r.drawings {
		for _, d := range l.Drawings {
			jd := jsonDrawing{Kind: d.Kind.String(), Points: make([][2]float32, len(d.Points))}
			for i, p := range d.Points {
				jd.Points[i] = p
			}
			out.Drawings = append(out.Drawings, jd)
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
