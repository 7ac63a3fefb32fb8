package handlers

import (
	"net/http"
	"testing"
)

func TestPageParams(t *testing.T) {
	cases := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 30},
		{"?page=3&limit=10", 3, 10},
		{"?page=0&limit=-5", 1, 30},
		{"?page=abc&limit=xyz", 1, 30},
		{"?limit=100", 1, 100},
		{"?limit=500", 1, 100}, // clamped to the cap, not reset
	}
	for _, tc := range cases {
		c, _ := newContext(t, http.MethodGet, "/x"+tc.query, "", nil)
		page, limit := pageParams(c, 30)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("query %q: got page=%d limit=%d, want page=%d limit=%d",
				tc.query, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestAtoiOr(t *testing.T) {
	if got := atoiOr("", 7); got != 7 {
		t.Errorf("empty: got %d", got)
	}
	if got := atoiOr("12", 7); got != 12 {
		t.Errorf("number: got %d", got)
	}
	if got := atoiOr("nope", 7); got != 7 {
		t.Errorf("garbage: got %d", got)
	}
}
