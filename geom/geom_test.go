package geom

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// fixedMeasurer makes every character 0.6 em wide and one em high.
type fixedMeasurer struct{}

func (fixedMeasurer) Measure(word string, size vg.Length) (vg.Length, vg.Length) {
	return vg.Length(len(word)) * size * 0.6, size
}

func TestWords(t *testing.T) {
	words := Words("Red Blue Red a Green Red Blue it's", 0)
	want := []WordCount{{"Red", 3}, {"Blue", 2}, {"Green", 1}, {"it's", 1}}
	if len(words) != len(want) {
		t.Fatalf("Got %v, want %v", words, want)
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("%d: Got %v, want %v", i, words[i], w)
		}
	}

	if got := Words("aa bb cc dd", 2); len(got) != 2 {
		t.Errorf("Got %d words, want 2", len(got))
	}
	if got := Words("a b c", 0); len(got) != 0 {
		t.Errorf("Got %v, want no words", got)
	}

	words = Words("Café Naïve Москва Zürich café 東京 x2 Москва", 0)
	want = []WordCount{{"Москва", 2}, {"Café", 1}, {"Naïve", 1}, {"Zürich", 1}, {"café", 1}, {"東京", 1}, {"x2", 1}}
	if len(words) != len(want) {
		t.Fatalf("Got %v, want %v", words, want)
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("%d: Got %v, want %v", i, words[i], w)
		}
	}
}

func TestLayout(t *testing.T) {
	var words []WordCount
	for i, w := range []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta"} {
		words = append(words, WordCount{Word: w, Count: 10 - i})
	}
	width, height := vg.Length(400), vg.Length(250)
	placed := Layout(words, width, height, fixedMeasurer{})
	if len(placed) != len(words) {
		t.Fatalf("Got %d placed words, want %d", len(placed), len(words))
	}
	if placed[0].Size != height/4 {
		t.Errorf("Got size %v for most frequent word, want %v", placed[0].Size, height/4)
	}
	for i, p := range placed {
		if p.X < 0 || p.Y < 0 || p.X+p.W > width || p.Y+p.H > height {
			t.Errorf("%s outside of area: %+v", p.Word, p)
		}
		for _, q := range placed[i+1:] {
			if p.overlaps(q) {
				t.Errorf("%s overlaps %s", p.Word, q.Word)
			}
		}
	}
}

func TestLayoutDropsWordsTooLong(t *testing.T) {
	words := []WordCount{{"Short", 2}, {"Averyveryveryveryverylongword", 1}}
	placed := Layout(words, 40, 40, fixedMeasurer{})
	if len(placed) != 1 || placed[0].Word != "Short" {
		t.Errorf("Got %v, want only Short", placed)
	}
}

func TestCloudRender(t *testing.T) {
	cmap := moreland.ExtendedBlackBody()
	cmap.SetMax(1)
	cmap.SetMin(0)
	c := Cloud{
		Width:      200,
		Height:     120,
		MaxWords:   10,
		Background: color.Black,
		Colormap:   cmap,
		Measurer:   fixedMeasurer{},
	}
	img, err := c.Render("Empty Empty Cat Dog Cat Empty")
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 120 {
		t.Errorf("Got bounds %v, want 200x120", b)
	}

	if _, err := c.Render("   "); !errors.Is(err, ErrNoWords) {
		t.Errorf("Got %v, want ErrNoWords", err)
	}
}

func TestNewBox(t *testing.T) {
	if _, err := NewBox(nil, 1.5, 0, 10); !errors.Is(err, ErrNoData) {
		t.Errorf("Got %v, want ErrNoData", err)
	}
	b, err := NewBox([]float64{1, 2, 3, 4, 5, 100}, 1.5, 2, 10)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	xmin, xmax, ymin, ymax := b.DataRange()
	if xmin != 1 || xmax != 100 || ymin != 2 || ymax != 2 {
		t.Errorf("Got range %g %g %g %g", xmin, xmax, ymin, ymax)
	}
	if len(b.Outliers) != 1 || b.Outliers[0] != 100 {
		t.Errorf("Got outliers %v, want [100]", b.Outliers)
	}

	p := plot.New()
	p.Add(b)
	p.Y.Min, p.Y.Max = 1.5, 2.5
	if n := len(b.GlyphBoxes(p)); n != 2 {
		t.Errorf("Got %d glyph boxes, want 2", n)
	}
	// Drawing must not panic.
	p.Draw(draw.New(vgimg.New(200, 100)))
}

func TestAnnotation(t *testing.T) {
	a := NewAnnotation(0.18, 0.93, "Cor Coef: 0.50")
	if a.TextStyle.Handler == nil {
		t.Fatal("Missing text handler")
	}
	p := plot.New()
	p.Add(a)
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Draw(draw.New(vgimg.New(200, 100)))
	if math.Abs(a.X-0.18) > 1e-12 {
		t.Errorf("Got %g, want 0.18", a.X)
	}
}
