package utils

import "testing"

func TestCoerceInt(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"42", 42},
		{" 42 ", 42},
		{"", 0},
		{"abc", 0},
		{"4.2", 0},
		{"-7", -7},
	}
	for _, tc := range cases {
		if got := CoerceInt(tc.raw); got != tc.want {
			t.Fatalf("CoerceInt(%q): expected %d, got %d", tc.raw, tc.want, got)
		}
	}
}

func TestCoerceDecimal(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"3.5", "3.5"},
		{" 3.5 ", "3.5"},
		{"", "0"},
		// A whole-string parse is required: trailing garbage is not a number.
		{"3.5abc", "0"},
		{"abc", "0"},
		{"-12.75", "-12.75"},
	}
	for _, tc := range cases {
		if got := CoerceDecimal(tc.raw); !got.Equal(d(tc.want)) {
			t.Fatalf("CoerceDecimal(%q): expected %s, got %s", tc.raw, tc.want, got)
		}
	}
}
