package layout

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

// tenPerRune measures every rune as 10px wide.
func tenPerRune(s string) float64 {
	return float64(10 * utf8.RuneCountInString(s))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{"long text", "abcdefghij", 5, "ab..."},
		{"short text", "short", 100, "short"},
		{"exact length", "abcde", 5, "abcde"},
		{"empty", "", 10, ""},
		{"empty at minimum", "", 3, ""},
		{"only ellipsis fits", "abcdef", 3, "..."},
		{"multibyte runes", "héllo wörld", 8, "héllo..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateDescriptionLength(t *testing.T) {
	text := ""
	for i := 0; i < 50; i++ {
		text += "word "
	}
	got := Truncate(text, 160)
	if n := utf8.RuneCountInString(got); n != 160 {
		t.Fatalf("truncated length = %d, want 160", n)
	}
	if got[len(got)-3:] != "..." {
		t.Errorf("truncated text %q does not end with ellipsis", got)
	}
}

func TestTruncatePanicsBelowMinimum(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for maxLength < 3")
		}
	}()
	Truncate("abcdef", 2)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"one word per line", "aa bb cc dd", 35, []string{"aa ", "bb ", "cc ", "dd "}},
		{"two words per line", "aa bb cc dd", 60, []string{"aa bb ", "cc dd "}},
		{"everything fits", "aa bb cc dd", 1000, []string{"aa bb cc dd "}},
		{"single word", "hello", 1000, []string{"hello "}},
		{"long first word stays whole", "superlongword x", 50, []string{"superlongword ", "x "}},
		{"long middle word on its own line", "a verylongword b", 50, []string{"a ", "verylongword ", "b "}},
		{"double space keeps empty word", "aa  bb", 1000, []string{"aa  bb "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.maxWidth, tenPerRune)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %v) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestWrapMeasuresCandidateLine(t *testing.T) {
	var measured []string
	measure := func(s string) float64 {
		measured = append(measured, s)
		return tenPerRune(s)
	}
	Wrap("aa bb", 1000, measure)
	want := []string{"aa ", "aa bb "}
	if !reflect.DeepEqual(measured, want) {
		t.Errorf("measured = %q, want %q", measured, want)
	}
}

func TestWrapEmpty(t *testing.T) {
	if lines := Wrap("", 100, tenPerRune); len(lines) != 0 {
		t.Fatalf("Wrap(\"\") = %q, want no lines", lines)
	}
	b := Layout("", 100, 32, tenPerRune)
	if b.Height() != 0 {
		t.Errorf("Height = %v, want 0", b.Height())
	}
	calls := 0
	consumed := b.Draw(80, 530, func(string, float64, float64) { calls++ })
	if calls != 0 || consumed != 0 {
		t.Errorf("Draw on empty block: calls = %d, consumed = %v", calls, consumed)
	}
}

func TestBlockDraw(t *testing.T) {
	b := Layout("aa bb cc", 35, 90, tenPerRune)
	if got, want := b.Height(), 270.0; got != want {
		t.Fatalf("Height = %v, want %v", got, want)
	}

	type call struct {
		s    string
		x, y float64
	}
	var calls []call
	consumed := b.Draw(80, 400, func(s string, x, y float64) {
		calls = append(calls, call{s, x, y})
	})
	want := []call{{"aa ", 80, 400}, {"bb ", 80, 490}, {"cc ", 80, 580}}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("draw calls = %+v, want %+v", calls, want)
	}
	if consumed != 270 {
		t.Errorf("consumed = %v, want 270", consumed)
	}
}
