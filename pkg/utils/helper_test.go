package utils

import (
	"testing"
	"time"
)

func TestFormatBookingNo(t *testing.T) {
	if got := FormatBookingNo("ODC", 42); got != "ODC-000042" {
		t.Errorf("expected ODC-000042, got %s", got)
	}
	if got := FormatBookingNo("RSA", 1234567); got != "RSA-1234567" {
		t.Errorf("expected RSA-1234567, got %s", got)
	}
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("operating", 4*60*60)

	d, err := ParseDate("2026-03-03", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 3 {
		t.Errorf("unexpected date %v", d)
	}
	if d.Location() != loc {
		t.Error("date must carry the operating location")
	}

	if _, err := ParseDate("03/03/2026", loc); err == nil {
		t.Error("expected error for wrong format")
	}
}

func TestParseInt(t *testing.T) {
	if got := ParseInt("7", 1); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := ParseInt("", 3); got != 3 {
		t.Errorf("expected default 3, got %d", got)
	}
	if got := ParseInt("-2", 5); got != 5 {
		t.Errorf("negative values fall back to default, got %d", got)
	}
}
