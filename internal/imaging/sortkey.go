package imaging

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

var digitRun = regexp.MustCompile(`\p{Nd}+`)

// NumberKey is the sort key derived from a filename: the first run of
// decimal digits in the name, and the name itself as tie breaker. Any Unicode
// decimal digit counts, so "img١٠.png" carries the number 10.
//
// Names without any digit sort as if their number were positive infinity,
// i.e. after every numbered name.
type NumberKey struct {
	// Digits is the first digit run converted to ASCII with leading zeros
	// removed ("0" for an all-zero run). Empty when Found is false.
	Digits string

	// Found reports whether the name contains a digit run.
	Found bool

	// Name is the full filename.
	Name string
}

// ExtractNumber returns the sort key for a filename.
//
//	ExtractNumber("img10.png") // {Digits: "10", Found: true, Name: "img10.png"}
//	ExtractNumber("a.png")     // {Found: false, Name: "a.png"}, Value() == +Inf
func ExtractNumber(name string) NumberKey {
	run := digitRun.FindString(name)
	if run == "" {
		return NumberKey{Name: name}
	}
	trimmed := strings.TrimLeft(asciiDigits(run), "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return NumberKey{Digits: trimmed, Found: true, Name: name}
}

// asciiDigits rewrites a run of decimal digits from any script as 0-9.
func asciiDigits(run string) string {
	var b strings.Builder
	b.Grow(len(run))
	for _, r := range run {
		b.WriteByte(byte('0' + digitValue(r)))
	}
	return b.String()
}

// digitValue returns the value of the decimal digit r. Unicode allocates
// decimal digits in contiguous blocks of ten starting at zero, so the value
// is the distance to the start of r's block, modulo ten.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	n := 0
	for unicode.IsDigit(r - rune(n) - 1) {
		n++
	}
	return n % 10
}

// Value returns the numeric component as a float64: the parsed digit run, or
// +Inf when the name has no digits. Runs too long for a float64 also report
// +Inf; use Compare for exact ordering.
func (k NumberKey) Value() float64 {
	if !k.Found {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(k.Digits, 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}

// Compare orders two keys by numeric value, then by name. It returns -1, 0
// or +1. Numbers are compared on their digit strings so arbitrarily long
// runs never overflow.
func (k NumberKey) Compare(o NumberKey) int {
	if c := compareNumbers(k, o); c != 0 {
		return c
	}
	return strings.Compare(k.Name, o.Name)
}

func compareNumbers(a, b NumberKey) int {
	switch {
	case !a.Found && !b.Found:
		return 0
	case !a.Found:
		return 1
	case !b.Found:
		return -1
	}
	if len(a.Digits) != len(b.Digits) {
		if len(a.Digits) < len(b.Digits) {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Digits, b.Digits)
}

// CompareFilenames orders two filenames by embedded number, then lexically.
func CompareFilenames(a, b string) int {
	return ExtractNumber(a).Compare(ExtractNumber(b))
}

// SortFilenames sorts names in place so that "img2.png" precedes "img10.png"
// and names without digits come last in lexical order.
func SortFilenames(names []string) {
	keys := make(map[string]NumberKey, len(names))
	for _, n := range names {
		keys[n] = ExtractNumber(n)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return keys[names[i]].Compare(keys[names[j]]) < 0
	})
}
