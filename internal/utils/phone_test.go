package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		dial string
		want string
	}{
		{"0712345678", "+254", "+254712345678"},
		{"0712 345 678", "+254", "+254712345678"},
		{"712345678", "+254", "+254712345678"},
		{"+254712345678", "+254", "+254712345678"},
		{"+44 20 7946 0958", "+254", "+442079460958"},
		{"(071) 234-5678", "+254", "+254712345678"},
		{"", "+254", ""},
		{"abc", "+254", ""},
	}
	for _, tc := range cases {
		got := NormalizePhone(tc.in, tc.dial)
		if got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		in    string
		first string
		last  string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Jane", "Jane", ""},
		{"Jane Wanjiku Doe", "Jane", "Wanjiku Doe"},
		{"  Jane   Doe  ", "Jane", "Doe"},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := SplitName(tc.in)
		if first != tc.first || last != tc.last {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", tc.in, first, last, tc.first, tc.last)
		}
	}
}
