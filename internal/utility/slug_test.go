package utility

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Tech Reviews", "tech_reviews"},
		{"  Gaming   Channel  ", "gaming_channel"},
		{"MrBeast", "mrbeast"},
		{"a\tb\nc", "a_b_c"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, muốn %q", c.in, got, c.want)
		}
	}
}
