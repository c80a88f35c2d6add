package eda

import (
	"errors"
	"image/color"
	"testing"
)

func TestString2Float(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want float64
	}{
		{"0.25", 0.25},
		{"30%", 0.3},
		{"7", 1},
		{"-1", 0},
		{"abc", 0.5},
	} {
		if got := String2Float(tc.s, 0, 1); got != tc.want {
			t.Errorf("String2Float(%q) = %g, want %g", tc.s, got, tc.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want color.NRGBA
	}{
		{"#1f78b4", color.NRGBA{0x1f, 0x78, 0xb4, 0xff}},
		{"#1f78b480", color.NRGBA{0x1f, 0x78, 0xb4, 0x80}},
		{"gray75", color.NRGBA{0xbf, 0xbf, 0xbf, 0xff}},
		{"k", color.NRGBA{0, 0, 0, 0xff}},
	} {
		c, err := ParseColor(tc.s)
		if err != nil {
			t.Fatalf("%s: Unexpected error %v", tc.s, err)
		}
		if c != tc.want {
			t.Errorf("%s: Got %v, want %v", tc.s, c, tc.want)
		}
	}

	for _, bad := range []string{"#12", "#zzzzzz", "mauve"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: Got %v, want ErrInvalidArgument", bad, err)
		}
	}
	if c := String2Color("mauve"); c != (color.NRGBA{0xaa, 0x66, 0x77, 0x7f}) {
		t.Errorf("Got %v", c)
	}
}

func TestSetAlpha(t *testing.T) {
	c := SetAlpha(color.NRGBA{10, 20, 30, 255}, 0.5)
	if c != (color.NRGBA{10, 20, 30, 128}) {
		t.Errorf("Got %v", c)
	}
}
