package service

import "testing"

func TestExcerpt(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a longer body", 7, "this is..."},
		{"", 5, ""},
		{"héllo wörld", 5, "héllo..."},
	}

	for _, tc := range cases {
		if got := excerpt(tc.in, tc.max); got != tc.want {
			t.Errorf("excerpt(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}
