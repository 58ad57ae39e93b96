package calc

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{7, "7"},
		{-3, "-3"},
		{0.5, "0.5"},
		{-0.25, "-0.25"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{123456789.5, "123456789.5"},
		{1e15, "1000000000000000"},
		{1e16, "1e+16"},
		{1.5e16, "1.5e+16"},
		{-2.5e20, "-2.5e+20"},
		{math.Inf(1), ErrorText},
		{math.NaN(), ErrorText},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestActionForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Action
	}{
		{'0', Digit('0')},
		{'.', Digit('.')},
		{'+', Operator(OpAdd)},
		{'−', Operator(OpSub)},
		{'x', Operator(OpMul)},
		{'÷', Operator(OpDiv)},
		{'\r', Equals},
		{'C', Clear},
		{'±', Negate},
		{'%', Percent},
		{'√', Sqrt},
	}
	for _, tt := range tests {
		got, ok := ActionForRune(tt.r)
		if !ok || got != tt.want {
			t.Fatalf("ActionForRune(%q) = %v, %v; want %v", tt.r, got, ok, tt.want)
		}
	}
	if _, ok := ActionForRune('q'); ok {
		t.Fatal("expected 'q' to be unmapped")
	}
	if got := ParseKeys("1 + q2"); len(got) != 3 {
		t.Fatalf("ParseKeys skipped wrong runes: %v", got)
	}
}
