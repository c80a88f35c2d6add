package geom

import (
	"errors"
	"image"
	"image/color"
	"math"
	"regexp"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoWords is returned when a text contains nothing to put in a cloud.
var ErrNoWords = errors.New("geom: no words in text")

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_']+`)

// WordCount is the frequency of one word in a text.
type WordCount struct {
	Word  string
	Count int
}

// Words splits txt into words of at least two characters and counts
// them. The result is ordered by descending count, ties keep the order
// of first appearance, and holds at most max words if max > 0.
func Words(txt string, max int) []WordCount {
	index := make(map[string]int)
	var counts []WordCount
	for _, w := range wordPattern.FindAllString(txt, -1) {
		i, ok := index[w]
		if !ok {
			i = len(counts)
			index[w] = i
			counts = append(counts, WordCount{Word: w})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if max > 0 && len(counts) > max {
		counts = counts[:max]
	}
	return counts
}

// Measurer determines the extent of a word set in a given font size.
type Measurer interface {
	Measure(word string, size vg.Length) (width, height vg.Length)
}

// FontMeasurer measures words in Font.
type FontMeasurer struct {
	Font font.Font
}

// Measure implements Measurer.
func (m FontMeasurer) Measure(word string, size vg.Length) (width, height vg.Length) {
	sty := text.Style{Font: font.From(m.Font, size), Handler: plot.DefaultTextHandler}
	return sty.Width(word), sty.Height(word)
}

// Placement is a word positioned in the cloud. X and Y are the lower
// left corner.
type Placement struct {
	WordCount
	Size       vg.Length
	X, Y, W, H vg.Length
}

func (p Placement) overlaps(q Placement) bool {
	return p.X < q.X+q.W && q.X < p.X+p.W && p.Y < q.Y+q.H && q.Y < p.Y+p.H
}

// Layout parameters.
const (
	MinFontSize     = vg.Length(4)
	RelativeScaling = 0.5
	spiralStep      = 0.1
	maxSpiralTurns  = 400
)

// Layout places words on a width x height area, the most frequent
// first and largest. Each word starts at the center and walks outwards on
// a spiral until it neither overlaps a placed word nor the border. A word
// which does not fit is retried smaller and dropped below MinFontSize.
func Layout(words []WordCount, width, height vg.Length, m Measurer) []Placement {
	if len(words) == 0 {
		return nil
	}
	maxSize := height / 4
	maxCount := float64(words[0].Count)
	cx, cy := width/2, height/2

	var placed []Placement
	for _, w := range words {
		freq := float64(w.Count) / maxCount
		size := maxSize * vg.Length(RelativeScaling*freq+(1-RelativeScaling))
		for ; size >= MinFontSize; size -= 2 {
			ww, hh := m.Measure(w.Word, size)
			if ww > width || hh > height {
				continue
			}
			if p, ok := spiral(w, size, ww, hh, cx, cy, width, height, placed); ok {
				placed = append(placed, p)
				break
			}
		}
	}
	return placed
}

func spiral(w WordCount, size, ww, hh, cx, cy, width, height vg.Length, placed []Placement) (Placement, bool) {
	aspect := float64(width / height)
	for t := 0.0; t < 2*math.Pi*maxSpiralTurns/10; t += spiralStep {
		r := vg.Length(t) * 2
		p := Placement{
			WordCount: w,
			Size:      size,
			X:         cx + r*vg.Length(aspect*math.Cos(t)) - ww/2,
			Y:         cy + r*vg.Length(math.Sin(t)) - hh/2,
			W:         ww,
			H:         hh,
		}
		if p.X < 0 || p.Y < 0 || p.X+ww > width || p.Y+hh > height {
			if r > width && r > height {
				return Placement{}, false
			}
			continue
		}
		free := true
		for _, q := range placed {
			if p.overlaps(q) {
				free = false
				break
			}
		}
		if free {
			return p, true
		}
	}
	return Placement{}, false
}

// Cloud renders word frequency clouds.
type Cloud struct {
	Width, Height vg.Length
	MaxWords      int
	Background    color.Color

	// Colormap colors the words; the most frequent word gets the
	// minimum and the least frequent the maximum of the map.
	Colormap palette.ColorMap

	// Font defaults to plot.DefaultFont.
	Font font.Font

	// Measurer defaults to a FontMeasurer for Font.
	Measurer Measurer
}

// Render draws a cloud of the words in txt.
func (c Cloud) Render(txt string) (image.Image, error) {
	words := Words(txt, c.MaxWords)
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if c.Font.Typeface == "" {
		c.Font = plot.DefaultFont
	}
	m := c.Measurer
	if m == nil {
		m = FontMeasurer{Font: c.Font}
	}
	placements := Layout(words, c.Width, c.Height, m)

	bg := c.Background
	if bg == nil {
		bg = color.Black
	}
	canvas := vgimg.NewWith(
		vgimg.UseWH(c.Width, c.Height),
		vgimg.UseDPI(72), // one pixel per point
		vgimg.UseBackgroundColor(bg),
	)
	dc := draw.New(canvas)
	for i, p := range placements {
		sty := text.Style{
			Color:   c.color(i, len(placements)),
			Font:    font.From(c.Font, p.Size),
			XAlign:  draw.XLeft,
			YAlign:  draw.YBottom,
			Handler: plot.DefaultTextHandler,
		}
		dc.FillText(sty, vg.Point{X: p.X, Y: p.Y}, p.Word)
	}
	return canvas.Image(), nil
}

func (c Cloud) color(i, n int) color.Color {
	if c.Colormap == nil {
		return color.White
	}
	v := c.Colormap.Min()
	if n > 1 {
		v += (c.Colormap.Max() - c.Colormap.Min()) * float64(i) / float64(n-1)
	}
	col, err := c.Colormap.At(v)
	if err != nil {
		return color.White
	}
	return col
}
