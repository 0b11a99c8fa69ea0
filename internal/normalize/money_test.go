package normalize

import "testing"

func TestPrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100,90€", 100.90, true},
		{"1.234,56€", 1234.56, true},
		{"  8,20 ", 8.20, true},
		{"12,50", 12.50, true},
		{"0,00", 0, false},
		{"-100,90€", 0, false},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := Price(tc.in)
		if ok != tc.ok {
			t.Errorf("Price(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("Price(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPriceCell(t *testing.T) {
	if got := PriceCell("100,90€"); got != "100.90" {
		t.Errorf("PriceCell = %q, want 100.90", got)
	}
	if got := PriceCell("0,00"); got != "" {
		t.Errorf("PriceCell(0,00) = %q, want absent", got)
	}
}

func TestPartialQuantityPrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4.5", "4.50"},
		{"3.256", "3.26"},
		{"0", "0.00"},
		{"-1.5", "-1.50"},
		{"", ""},
		{"abc", ""},
	}
	for _, tc := range cases {
		if got := PartialQuantityPrice(tc.in); got != tc.want {
			t.Errorf("PartialQuantityPrice(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
