package store

import "testing"

func TestMatchGlob(t *testing.T) {
	cases := []struct {
		pattern, key string
		want         bool
	}{
		{"*", "anything", true},
		{"*", "", true},
		{"foo*", "foobar", true},
		{"foo*", "foo", true},
		{"foo*", "fo", false},
		{"f?o", "foo", true},
		{"f?o", "fo", false},
		{"f?o", "fooo", false},
		{"h[ae]llo", "hello", true},
		{"h[ae]llo", "hallo", true},
		{"h[ae]llo", "hillo", false},
		{"h[^ae]llo", "hillo", true},
		{"h[^ae]llo", "hello", false},
		{"[a-c]at", "bat", true},
		{"[a-c]at", "cat", true},
		{"[a-c]at", "dat", false},
		{"[^a-c]at", "dat", true},
		{"[^a-c]at", "bat", false},
		{"a[", "a[", false}, // unterminated class consumes the rest of the pattern and matches nothing
		{"a\\*b", "a*b", true},
		{"a\\*b", "axb", false},
		{"h[ae]llo", "h[ae]llo", false}, // literal brackets no longer match once classes are honored
		{"foo", "foobar", false},        // anchored at both ends: no partial match
		{"foobar", "foo", false},
	}
	for _, c := range cases {
		if got := matchGlob(c.pattern, c.key); got != c.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", c.pattern, c.key, got, c.want)
		}
	}
}
