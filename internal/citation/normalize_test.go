package citation

import "testing"

func TestNormalizeMarkers(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain numeric kept", "As shown in [1].", "As shown in [1]."},
		{"decorated marker rewritten", "As shown in [source 3].", "As shown in [3]."},
		{"first digit run wins", "See [ref 12, 14] for details.", "See [12] for details."},
		{"no digits untouched", "See [citation needed] here.", "See [citation needed] here."},
		{"multiple markers", "Claims [2] and [see 4] differ.", "Claims [2] and [4] differ."},
		{"no markers", "No references at all.", "No references at all."},
		{"empty string", "", ""},
	}

	for _, tc := range cases {
		if got := NormalizeMarkers(tc.in); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
