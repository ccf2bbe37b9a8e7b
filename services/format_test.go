package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatEUR(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "0,00 €"},
		{"small", "9.5", "9,50 €"},
		{"three digits", "143.10", "143,10 €"},
		{"thousands", "1234.56", "1 234,56 €"},
		{"millions", "1234567.89", "1 234 567,89 €"},
		{"negative", "-186.90", "-186,90 €"},
		{"negative thousands", "-12500", "-12 500,00 €"},
		{"rounds half even down", "2.125", "2,12 €"},
		{"rounds half even up", "2.135", "2,14 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatEUR(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("FormatEUR(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestApplyFrenchGrouping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1 000"},
		{"123456", "123 456"},
		{"1234567", "1 234 567"},
	}

	for _, tt := range tests {
		if got := applyFrenchGrouping(tt.in); got != tt.want {
			t.Errorf("applyFrenchGrouping(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0h"},
		{4, "4h"},
		{3.5, "3.5h"},
		{12.25, "12.3h"},
	}

	for _, tt := range tests {
		if got := FormatHours(tt.in); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
