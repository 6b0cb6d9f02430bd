package utils

import (
	"regexp"
	"testing"
)

var refPattern = regexp.MustCompile(`^CRS-\d{13}-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{6}$`)

func TestNewMerchantRefFormat(t *testing.T) {
	ref := NewMerchantRef("CRS")
	if !refPattern.MatchString(ref) {
		t.Errorf("unexpected reference format: %s", ref)
	}
}

func TestNewMerchantRefUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := NewMerchantRef("CRS")
		if seen[ref] {
			t.Fatalf("duplicate reference: %s", ref)
		}
		seen[ref] = true
	}
}
