package leaderboard

import (
	"net/http/httptest"
	"testing"
)

func TestParseLimit(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{"", defaultLimit},
		{"limit=25", 25},
		{"limit=1", 1},
		{"limit=0", defaultLimit},
		{"limit=-5", defaultLimit},
		{"limit=banana", defaultLimit},
		{"limit=500", maxLimit},
	}

	for _, tc := range cases {
		r := httptest.NewRequest("GET", "/leaderboard?"+tc.query, nil)
		if got := parseLimit(r); got != tc.want {
			t.Errorf("parseLimit(%q) = %d, want %d", tc.query, got, tc.want)
		}
	}
}
