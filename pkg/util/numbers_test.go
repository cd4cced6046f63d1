package util

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{3.5e9, "$3.5B"},
		{192.3e6, "$192.3M"},
		{-62.8e6, "-$62.8M"},
		{2.1e12, "$2.1T"},
		{1500, "$1.5K"},
		{123.456, "$123.46"},
		{0, "$0.00"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.value, "$", ""); got != c.want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(nil); got != "N/A" {
		t.Fatalf("nil value should format as N/A, got %q", got)
	}
	v := 42.0
	if got := FormatMoney(&v); got != "$42.00" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestFormatOptional(t *testing.T) {
	if got := FormatOptional(nil, "%.1f"); got != "N/A" {
		t.Fatalf("nil value should format as N/A, got %q", got)
	}
	v := 1.234
	if got := FormatOptional(&v, "%.1f"); got != "1.2" {
		t.Fatalf("unexpected %q", got)
	}
}
