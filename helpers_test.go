package ogmaker

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello, World!  Foo", "hello-world-foo"},
		{"Observer Pattern", "observer-pattern"},
		{"snake_case stays", "snake_case-stays"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"A - B", "a-b"},
		{"C++ & Go", "c-go"},
		{"Café Déjà vu", "caf-dj-vu"},
		{" padded ", "-padded-"},
		{"!!!", ""},
		{"a\u00a0b", "a-b"},
		{"a\ufeffb", "a-b"},
		{"a\u0085b", "ab"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	const title = "Strategy Pattern: Swap Algorithms at Runtime"
	first := Slugify(title)
	for i := 0; i < 5; i++ {
		if got := Slugify(title); got != first {
			t.Fatalf("Slugify returned %q then %q", first, got)
		}
	}
}
