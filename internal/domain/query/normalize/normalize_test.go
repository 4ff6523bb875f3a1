package normalize

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Молоко Простоквашино", "молоко простоквашино"},
		{"collapse whitespace", "  молоко   2%  ", "молоко 2"},
		{"punctuation to space", "молоко, сыр", "молоко сыр"},
		{"punctuation run", "сыр -- твердый", "сыр твердый"},
		{"decimal comma kept", "вода 1,5л", "вода 1,5л"},
		{"decimal dot kept", "вода 1.5л", "вода 1.5л"},
		{"comma not between digits", "сыр,5", "сыр 5"},
		{"trailing separator dropped", "вода 5,", "вода 5"},
		{"leading separator dropped", ",5 вода", "5 вода"},
		{"latin kept", "Coca-Cola 0.33", "coca cola 0.33"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Молоко  Простоквашино!!",
		"вода 1,5л",
		"Coca-Cola 0.33",
		"  ",
		"сыр, творог; молоко",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
