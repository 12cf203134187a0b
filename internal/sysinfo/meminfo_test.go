package sysinfo

import (
	"strings"
	"testing"
)

func TestParseMemInfo(t *testing.T) {
	content := "MemTotal:       65835008 kB\nMemFree:        12345678 kB\nMemAvailable:   23456789 kB\n"
	gb, err := parseMemInfo(strings.NewReader(content))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// 65835008 kB is 62 whole GB
	if gb != 62 {
		t.Fatalf("expected 62, got %d", gb)
	}
}

func TestParseMemInfoMissing(t *testing.T) {
	if _, err := parseMemInfo(strings.NewReader("MemFree: 1 kB\n")); err == nil {
		t.Fatalf("expected error when MemTotal absent")
	}
}

func TestParseMemInfoMalformed(t *testing.T) {
	if _, err := parseMemInfo(strings.NewReader("MemTotal: abc kB\n")); err == nil {
		t.Fatalf("expected error on non-numeric MemTotal")
	}
}

func TestMemGBNonNegative(t *testing.T) {
	if MemGB() < 0 {
		t.Fatalf("MemGB must never be negative")
	}
}

func TestArch(t *testing.T) {
	if Arch() == "" {
		t.Fatalf("arch must be non-empty")
	}
}
