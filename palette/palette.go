// Package palette maps DBSCAN labels to display colours so that every
// renderer replaying a dbscan.Trace paints frames the same way.
//
// Defaults:
//
//	unvisited → black
//	noise     → gray
//	cluster k → red, green, yellow, blue, pink, cycling by (k-1) mod 5
//	radius    → red (the epsilon circle around a snapshot's focus point)
//
// The palette only chooses colours; drawing is the caller's business.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/katalvlaran/dbscanviz/dbscan"
	"golang.org/x/image/colornames"
)

// Sentinel errors for palette construction.
var (
	// ErrEmptyPalette is returned when a cluster colour cycle is empty.
	ErrEmptyPalette = errors.New("palette: cluster colour cycle must not be empty")

	// ErrUnknownColor is returned for a colour name missing from the SVG 1.1 set.
	ErrUnknownColor = errors.New("palette: unknown colour name")
)

// DefaultClusterNames is the default cluster colour cycle.
var DefaultClusterNames = []string{"red", "green", "yellow", "blue", "pink"}

// Option configures a Palette. Invalid options are recorded and returned by New.
type Option func(*Palette)

// Palette holds the colours used for labels and the search radius.
// A Palette is immutable after New and safe for concurrent use.
type Palette struct {
	clusters  []color.RGBA
	unvisited color.RGBA
	noise     color.RGBA
	radius    color.RGBA

	// internal error recorded during option parsing
	err error
}

// Default returns the palette with the default colours.
func Default() *Palette {
	p, _ := New()

	return p
}

// New builds a Palette from the defaults and the given options.
func New(opts ...Option) (*Palette, error) {
	p := &Palette{
		clusters: []color.RGBA{
			colornames.Red,
			colornames.Green,
			colornames.Yellow,
			colornames.Blue,
			colornames.Pink,
		},
		unvisited: colornames.Black,
		noise:     colornames.Gray,
		radius:    colornames.Red,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.err != nil {
		return nil, p.err
	}

	return p, nil
}

// WithClusterColors replaces the cluster colour cycle.
func WithClusterColors(cs ...color.Color) Option {
	return func(p *Palette) {
		if len(cs) == 0 {
			p.err = ErrEmptyPalette
			return
		}
		cycle := make([]color.RGBA, len(cs))
		for i, c := range cs {
			cycle[i] = toRGBA(c)
		}
		p.clusters = cycle
	}
}

// WithClusterNames replaces the cluster colour cycle with SVG colour names
// such as "orange" or "steelblue". Matching is case-insensitive.
func WithClusterNames(names ...string) Option {
	return func(p *Palette) {
		if len(names) == 0 {
			p.err = ErrEmptyPalette
			return
		}
		cycle := make([]color.RGBA, len(names))
		for i, name := range names {
			c, err := Lookup(name)
			if err != nil {
				p.err = err
				return
			}
			cycle[i] = c
		}
		p.clusters = cycle
	}
}

// WithUnvisited sets the colour of unvisited points.
func WithUnvisited(c color.Color) Option {
	return func(p *Palette) { p.unvisited = toRGBA(c) }
}

// WithNoise sets the colour of noise points.
func WithNoise(c color.Color) Option {
	return func(p *Palette) { p.noise = toRGBA(c) }
}

// WithRadius sets the colour of the epsilon circle.
func WithRadius(c color.Color) Option {
	return func(p *Palette) { p.radius = toRGBA(c) }
}

// Lookup resolves an SVG 1.1 colour name.
func Lookup(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}

	return c, nil
}

// Label returns the colour for l. Cluster k uses cycle entry (k-1) mod len.
func (p *Palette) Label(l dbscan.Label) color.RGBA {
	if id, ok := l.ClusterID(); ok {
		return p.clusters[(id-1)%len(p.clusters)]
	}
	if l.IsNoise() {
		return p.noise
	}

	return p.unvisited
}

// Radius returns the colour of the epsilon circle.
func (p *Palette) Radius() color.RGBA { return p.radius }

// Cycle returns a copy of the cluster colour cycle.
func (p *Palette) Cycle() []color.RGBA {
	out := make([]color.RGBA, len(p.clusters))
	copy(out, p.clusters)

	return out
}

// Frame returns one colour per point of s, in point order.
func (p *Palette) Frame(s dbscan.Snapshot) []color.RGBA {
	out := make([]color.RGBA, len(s.Labels))
	for i, l := range s.Labels {
		out[i] = p.Label(l)
	}

	return out
}

// toRGBA converts any colour to color.RGBA (alpha-premultiplied).
func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}

	return color.RGBAModel.Convert(c).(color.RGBA)
}
