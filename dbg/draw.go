package dbg

import (
	"io"
	"math"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Padding around the shape, in pixels
const drawPadding = 20

type DrawOptions struct {
	// Pixels per coordinate unit. Zero fits the polygon into 512 pixels.
	Scale float64
	// Label every vertex with its index
	Labels bool
}

// Draw a triangulation for inspection: the polygon rings filled, the
// triangles stroked on top. Only the first two components of each vertex are
// used. The y axis points up.
func Draw(data []float64, holeIndices []int, dim int, triangles []int, opts DrawOptions) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i+1 < len(data); i += dim {
		minX = math.Min(minX, data[i])
		minY = math.Min(minY, data[i+1])
		maxX = math.Max(maxX, data[i])
		maxY = math.Max(maxY, data[i+1])
	}
	if len(data) < 2 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	scale := opts.Scale
	if scale <= 0 {
		extent := math.Max(maxX-minX, maxY-minY)
		scale = 1
		if extent > 0 {
			scale = 512 / extent
		}
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Push()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Rings, even-odd so holes stay empty
	c.SetFillRuleEvenOdd()
	for _, r := range ringRanges(len(data), holeIndices, dim) {
		if r[1]-r[0] < 2*dim {
			continue
		}
		c.MoveTo(data[r[0]], data[r[0]+1])
		for i := r[0] + dim; i < r[1]; i += dim {
			c.LineTo(data[i], data[i+1])
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.Fill()

	// Triangles
	for i := 0; i+2 < len(triangles); i += 3 {
		a, b, t := triangles[i]*dim, triangles[i+1]*dim, triangles[i+2]*dim
		c.MoveTo(data[a], data[a+1])
		c.LineTo(data[b], data[b+1])
		c.LineTo(data[t], data[t+1])
		c.ClosePath()
	}
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(1)
	c.Stroke()

	// Compute label positions while still in polygon space
	type label struct {
		text string
		x, y float64
	}
	var labels []label
	if opts.Labels {
		for i := 0; i+1 < len(data); i += dim {
			x, y := c.TransformPoint(data[i], data[i+1])
			labels = append(labels, label{strconv.Itoa(i / dim), x, y})
		}
	}
	c.Pop()

	// Text has to be drawn in device space, or it would be upside down
	if len(labels) > 0 {
		c.SetFontFace(basicfont.Face7x13)
		c.SetRGB(1, 1, 1)
		for _, l := range labels {
			c.DrawStringAnchored(l.text, l.x, l.y, 0.5, 0.5)
		}
	}
	return c
}

// Cat prints a drawing to a terminal that understands inline images (iTerm).
func Cat(c *gg.Context, w io.Writer) error {
	f, err := os.CreateTemp("", "earcut-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temporary image")
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := c.EncodePNG(f); err != nil {
		return errors.Wrap(err, "encoding image")
	}
	if err := f.Sync(); err != nil {
		return errors.Wrap(err, "writing image")
	}
	return imgcat.CatFile(f.Name(), w)
}

// Coordinate ranges [start, end) of the outer ring and each hole
func ringRanges(n int, holeIndices []int, dim int) [][2]int {
	ranges := make([][2]int, 0, len(holeIndices)+1)
	start := 0
	for _, h := range holeIndices {
		ranges = append(ranges, [2]int{start, h * dim})
		start = h * dim
	}
	return append(ranges, [2]int{start, n})
}
