package utils

import "testing"

func TestIPAllowed(t *testing.T) {
	cases := []struct {
		ip        string
		allowlist string
		want      bool
	}{
		{"196.201.214.10", "", true},
		{"196.201.214.10", "196.201.214.0/24", true},
		{"196.201.215.10", "196.201.214.0/24", false},
		{"10.0.0.5", "10.0.0.5", true},
		{"10.0.0.6", "10.0.0.5", false},
		{"10.0.0.6", "10.0.0.5, 10.0.0.6", true},
		{"not-an-ip", "10.0.0.5", false},
		{"10.0.0.5", "bad-entry, 10.0.0.5", true},
	}
	for _, tc := range cases {
		if got := IPAllowed(tc.ip, tc.allowlist); got != tc.want {
			t.Errorf("IPAllowed(%q, %q) = %v, want %v", tc.ip, tc.allowlist, got, tc.want)
		}
	}
}
