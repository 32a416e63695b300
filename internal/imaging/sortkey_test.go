package imaging

import (
	"math"
	"reflect"
	"testing"
)

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		name      string
		wantFound bool
		wantValue float64
	}{
		{"img10.png", true, 10},
		{"img2.png", true, 2},
		{"007.jpg", true, 7},
		{"scan_3_of_12.tif", true, 3},
		{"0.png", true, 0},
		{"000.png", true, 0},
		{"img١٠.png", true, 10},
		{"scan१२.png", true, 12},
		{"０７.png", true, 7},
		{"p𝟙𝟗.png", true, 19},
		{"a.png", false, math.Inf(1)},
		{"", false, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := ExtractNumber(tt.name)
			if k.Found != tt.wantFound {
				t.Errorf("Found: got %v, want %v", k.Found, tt.wantFound)
			}
			if k.Value() != tt.wantValue {
				t.Errorf("Value: got %v, want %v", k.Value(), tt.wantValue)
			}
			if k.Name != tt.name {
				t.Errorf("Name: got %q, want %q", k.Name, tt.name)
			}
		})
	}
}

func TestExtractNumber_NonASCIIDigitsNormalized(t *testing.T) {
	k := ExtractNumber("img١٠.png")
	if k.Digits != "10" {
		t.Errorf("Digits: got %q, want %q", k.Digits, "10")
	}
	if c := k.Compare(ExtractNumber("img9.png")); c != 1 {
		t.Errorf("Compare with img9.png: got %d, want 1", c)
	}
}

func TestExtractNumber_NoDigitsIsInfinity(t *testing.T) {
	if v := ExtractNumber("cover.jpeg").Value(); !math.IsInf(v, 1) {
		t.Errorf("Value: got %v, want +Inf", v)
	}
}

func TestSortFilenames(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"numeric before lexical",
			[]string{"img10.png", "img2.png", "a.png"},
			[]string{"img2.png", "img10.png", "a.png"},
		},
		{
			"non-numeric names in lexical order",
			[]string{"c.png", "b.png", "a.png"},
			[]string{"a.png", "b.png", "c.png"},
		},
		{
			"equal numbers tie broken by name",
			[]string{"img2.png", "img02.png", "a2.png"},
			[]string{"a2.png", "img02.png", "img2.png"},
		},
		{
			"only first digit run counts",
			[]string{"x9_1.png", "x1_9.png"},
			[]string{"x1_9.png", "x9_1.png"},
		},
		{
			"runs longer than int64",
			[]string{"99999999999999999999999.png", "100000000000000000000000.png", "5.png"},
			[]string{"5.png", "99999999999999999999999.png", "100000000000000000000000.png"},
		},
		{
			"empty",
			[]string{},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := append([]string(nil), tt.in...)
			SortFilenames(got)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompareFilenames(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"img2.png", "img10.png", -1},
		{"img10.png", "img2.png", 1},
		{"img2.png", "img2.png", 0},
		{"a.png", "img99.png", 1},
		{"a.png", "b.png", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := CompareFilenames(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareFilenames(%q, %q): got %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
