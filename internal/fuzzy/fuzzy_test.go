package fuzzy

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "xyz", 3},
		{"kitten", "sitting", 3},
		{"verbose", "verbos", 1},
		{"format", "fromat", 2},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFindBest(t *testing.T) {
	candidates := []string{"--verbose", "--version", "--format"}

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"--verbos", "--verbose", true},
		{"--versoin", "--version", true},
		{"--fromat", "--format", true},
		{"--completely-different", "", false},
		{"-v", "", false}, // too short after dash stripping
	}
	for _, tt := range tests {
		got, ok := FindBest(tt.input, candidates, 2)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("FindBest(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFindMatchesRanking(t *testing.T) {
	m := NewMatcher(3)
	matches := m.FindMatches("--prot", []string{"--port", "--print", "--proto"})
	if len(matches) < 2 {
		t.Fatalf("expected multiple matches, got %v", matches)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Distance > matches[i].Distance {
			t.Errorf("matches not sorted by distance: %v", matches)
		}
	}
}

func TestDashInsensitive(t *testing.T) {
	got, ok := FindBest("-verbose", []string{"--verbose"}, 2)
	if !ok || got != "--verbose" {
		t.Errorf("leading dashes should not count toward distance, got %q, %v", got, ok)
	}
}

func TestCaseInsensitive(t *testing.T) {
	got, ok := FindBest("--VERBOSE", []string{"--verbose"}, 1)
	if !ok || got != "--verbose" {
		t.Errorf("matching should ignore case, got %q, %v", got, ok)
	}
}
