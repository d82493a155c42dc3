package palette_test

import (
	"image/color"
	"testing"

	"github.com/katalvlaran/dbscanviz/dbscan"
	"github.com/katalvlaran/dbscanviz/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

// TestDefault_LabelColours checks the default mapping and the 5-colour cycle.
func TestDefault_LabelColours(t *testing.T) {
	p := palette.Default()

	assert.Equal(t, colornames.Black, p.Label(dbscan.Unvisited))
	assert.Equal(t, colornames.Gray, p.Label(dbscan.Noise))
	assert.Equal(t, colornames.Red, p.Label(dbscan.ClusterLabel(1)))
	assert.Equal(t, colornames.Green, p.Label(dbscan.ClusterLabel(2)))
	assert.Equal(t, colornames.Yellow, p.Label(dbscan.ClusterLabel(3)))
	assert.Equal(t, colornames.Blue, p.Label(dbscan.ClusterLabel(4)))
	assert.Equal(t, colornames.Pink, p.Label(dbscan.ClusterLabel(5)))
	assert.Equal(t, colornames.Red, p.Label(dbscan.ClusterLabel(6)), "cycle wraps after 5")
	assert.Equal(t, colornames.Red, p.Radius())
	assert.Len(t, p.Cycle(), len(palette.DefaultClusterNames))
}

// TestNew_CustomCycle covers colour and name based cycles.
func TestNew_CustomCycle(t *testing.T) {
	p, err := palette.New(palette.WithClusterColors(colornames.Orange, color.Gray{Y: 0x40}))
	require.NoError(t, err)
	assert.Equal(t, colornames.Orange, p.Label(dbscan.ClusterLabel(1)))
	assert.Equal(t, color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}, p.Label(dbscan.ClusterLabel(2)))
	assert.Equal(t, colornames.Orange, p.Label(dbscan.ClusterLabel(3)))

	p, err = palette.New(palette.WithClusterNames("SteelBlue", " teal "))
	require.NoError(t, err)
	assert.Equal(t, []color.RGBA{colornames.Steelblue, colornames.Teal}, p.Cycle())
}

// TestNew_Overrides replaces the non-cluster colours.
func TestNew_Overrides(t *testing.T) {
	p, err := palette.New(
		palette.WithUnvisited(colornames.White),
		palette.WithNoise(colornames.Lightgray),
		palette.WithRadius(colornames.Black),
	)
	require.NoError(t, err)
	assert.Equal(t, colornames.White, p.Label(dbscan.Unvisited))
	assert.Equal(t, colornames.Lightgray, p.Label(dbscan.Noise))
	assert.Equal(t, colornames.Black, p.Radius())
}

// TestNew_Errors covers empty cycles and unknown names.
func TestNew_Errors(t *testing.T) {
	_, err := palette.New(palette.WithClusterColors())
	assert.ErrorIs(t, err, palette.ErrEmptyPalette)

	_, err = palette.New(palette.WithClusterNames())
	assert.ErrorIs(t, err, palette.ErrEmptyPalette)

	_, err = palette.New(palette.WithClusterNames("red", "not-a-colour"))
	assert.ErrorIs(t, err, palette.ErrUnknownColor)

	_, err = palette.Lookup("nope")
	assert.ErrorIs(t, err, palette.ErrUnknownColor)
}

// TestFrame colours a real snapshot point by point.
func TestFrame(t *testing.T) {
	pts := []dbscan.Point{{X: 0}, {X: 0.04}, {X: 0.08}, {X: 0.5, Y: 0.5}}
	tr, err := dbscan.Run(pts, 0.05, 3)
	require.NoError(t, err)

	p := palette.Default()
	assert.Equal(t,
		[]color.RGBA{colornames.Gray, colornames.Black, colornames.Black, colornames.Black},
		p.Frame(tr[0]))
	assert.Equal(t,
		[]color.RGBA{colornames.Gray, colornames.Red, colornames.Red, colornames.Gray},
		p.Frame(tr.Final()))
}

// TestCycle_ReturnsCopy: callers cannot alter the palette through Cycle.
func TestCycle_ReturnsCopy(t *testing.T) {
	p := palette.Default()
	c := p.Cycle()
	c[0] = colornames.White
	assert.Equal(t, colornames.Red, p.Label(dbscan.ClusterLabel(1)))
}
