package slug

import "testing"

func TestFromName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Classic Crew Tee", "classic-crew-tee"},
		{"  Spaced  Out  ", "spaced-out"},
		{"Héllo Wörld", "h-llo-w-rld"},
		{"UPPER", "upper"},
		{"already-slugged", "already-slugged"},
		{"100% Cotton", "100-cotton"},
		{"!!!", "item"},
		{"", "item"},
	}
	for _, tc := range cases {
		if got := FromName(tc.in); got != tc.want {
			t.Errorf("FromName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
