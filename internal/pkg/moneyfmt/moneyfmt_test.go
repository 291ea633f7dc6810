package moneyfmt

import (
	"errors"
	"mortgage-engine/internal/pkg/apperrors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain integer", input: "1200000", expected: "1200000"},
		{name: "dot decimal", input: "1234567.89", expected: "1234567.89"},
		{name: "comma decimal", input: "1234567,89", expected: "1234567.89"},
		{name: "space grouped with comma", input: "1 234 567,89", expected: "1234567.89"},
		{name: "space grouped integer", input: "5 000 000", expected: "5000000"},
		{name: "surrounding whitespace", input: "  10.5  ", expected: "10.5"},
		{name: "small value", input: "0,25", expected: "0.25"},
		{name: "zero", input: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			want, _ := decimal.NewFromString(tt.expected)
			if !got.Equal(want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestParseRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "only whitespace", input: "   "},
		{name: "letters", input: "abc"},
		{name: "mixed digits and letters", input: "12a3"},
		{name: "double decimal mark", input: "1.2.3"},
		{name: "comma and dot together", input: "1,2.3"},
		{name: "lone separator", input: ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.input)
			}
			if !errors.Is(err, apperrors.ErrParse) {
				t.Errorf("Parse(%q) error should wrap ErrParse, got %v", tt.input, err)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "zero", input: "0", expected: "0.00"},
		{name: "under one thousand", input: "833.33", expected: "833.33"},
		{name: "four digits", input: "8333.33", expected: "8 333.33"},
		{name: "seven digits", input: "1234567.89", expected: "1 234 567.89"},
		{name: "exact million", input: "1000000", expected: "1 000 000.00"},
		{name: "one decimal padded", input: "42984.4", expected: "42 984.40"},
		{name: "rounds extra precision half up", input: "1.005", expected: "1.01"},
		{name: "negative amount", input: "-999999.6", expected: "-999 999.60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := decimal.NewFromString(tt.input)
			if got := Format(d); got != tt.expected {
				t.Errorf("Format(%s) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	d, _ := decimal.NewFromString("85.0925")
	if got := FormatPercent(d); got != "85.09" {
		t.Errorf("FormatPercent = %q, want %q", got, "85.09")
	}

	d, _ = decimal.NewFromString("10")
	if got := FormatPercent(d); got != "10.00" {
		t.Errorf("FormatPercent = %q, want %q", got, "10.00")
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	values := []string{
		"0.00",
		"0.01",
		"833.33",
		"8333.33",
		"42984.37",
		"999999.60",
		"1000000.00",
		"1234567.89",
		"5000000.00",
		"123456789012.34",
	}

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			want, _ := decimal.NewFromString(v)
			got, err := Parse(Format(want))
			if err != nil {
				t.Fatalf("round trip of %s failed to parse: %v", v, err)
			}
			if !got.Equal(want) {
				t.Errorf("round trip of %s produced %s", want, got)
			}
		})
	}
}
