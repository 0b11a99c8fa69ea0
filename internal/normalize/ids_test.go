package normalize

import "testing"

func TestPLZ(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"06618", "06618"},
		{"6618", "06618"},
		{"  06618  ", "06618"},
		{"6618.0", "06618"},
		{"979789", ""},
		{"PLZ", ""},
		{"D-06618", ""},
		{"09111A", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := PLZ(tc.in); got != tc.want {
			t.Errorf("PLZ(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIDNumber(t *testing.T) {
	cases := []struct {
		in   string
		min  int
		want string
	}{
		{"14353423", 6, "14353423"},
		{"123456", 6, "123456"},
		{"9999123", 6, ""},   // digit repeated 4+ times
		{"33333330", 6, ""},  // digit repeated 4+ times
		{"14323", 6, ""},     // too short
		{"", 6, ""},
		{"anc", 6, ""},
		{"123456789", 9, "123456789"},
		{"12345678", 9, ""},
	}
	for _, tc := range cases {
		if got := IDNumber(tc.in, tc.min); got != tc.want {
			t.Errorf("IDNumber(%q, %d) = %q, want %q", tc.in, tc.min, got, tc.want)
		}
	}
}

func TestNumericID(t *testing.T) {
	if got := NumericID("04773414"); got != "04773414" {
		t.Errorf("NumericID = %q, want 04773414", got)
	}
	if got := NumericID("90001.0"); got != "90001" {
		t.Errorf("NumericID = %q, want 90001", got)
	}
	if got := NumericID("abc123"); got != "" {
		t.Errorf("NumericID(%q) = %q, want absent", "abc123", got)
	}
}
