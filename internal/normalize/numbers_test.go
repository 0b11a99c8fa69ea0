package normalize

import (
	"reflect"
	"testing"
)

func TestQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2", "2"},
		{"2.0", "2"},
		{"3.7", "3"},
		{"0", ""},
		{"-1", ""},
		{"", ""},
		{"x", ""},
	}
	for _, tc := range cases {
		if got := Quantity(tc.in); got != tc.want {
			t.Errorf("Quantity(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWholeNumber(t *testing.T) {
	if got := WholeNumber("0"); got != "0" {
		t.Errorf("WholeNumber(0) = %q, want 0", got)
	}
	if got := WholeNumber("-2"); got != "" {
		t.Errorf("WholeNumber(-2) = %q, want absent", got)
	}
}

func TestKVDistrictNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"17", "17"},
		{"3.0", "3"},
		{"0", "0"},
		{"18", ""},
		{"-1", ""},
		{"KV", ""},
	}
	for _, tc := range cases {
		if got := KVDistrictNumber(tc.in); got != tc.want {
			t.Errorf("KVDistrictNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIntCell(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5", "5"},
		{"5.0", "5"},
		{"05", "5"},
		{"a", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := IntCell(tc.in); got != tc.want {
			t.Errorf("IntCell(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuantityFactors(t *testing.T) {
	got := QuantityFactors([]string{"10", "20", "", "x"})
	want := []string{"10", "20", "", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("QuantityFactors = %v, want %v", got, want)
	}
}

func TestQuantityFactorsPromille(t *testing.T) {
	got := QuantityFactors([]string{"1000", "500", "50"})
	want := []string{"1", "0.5", "0.05"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("QuantityFactors = %v, want %v", got, want)
	}
}
