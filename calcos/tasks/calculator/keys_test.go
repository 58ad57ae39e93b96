package calculator

import "testing"

func TestNextKey(t *testing.T) {
	tests := []struct {
		in       string
		consumed int
		want     key
		ok       bool
	}{
		{"7", 1, key{kind: keyRune, r: '7'}, true},
		{"×+", 2, key{kind: keyRune, r: '×'}, true},
		{"\r", 1, key{kind: keyEnter}, true},
		{"\x7f", 1, key{kind: keyBackspace}, true},
		{"\x1b", 1, key{kind: keyEsc}, true},
		{"\x1bc", 1, key{kind: keyEsc}, true},
		{"\x1b[", 0, key{}, false},
		{"\x1b[A", 3, key{kind: keyUp}, true},
		{"\x1b[D1", 3, key{kind: keyLeft}, true},
		{"\x1b[3~5", 4, key{}, true},
		{"\x1b[3", 0, key{}, false},
		{"\x1b[Z", 1, key{kind: keyEsc}, true},
		{"\xc3", 0, key{}, false},
		{"\x01", 1, key{}, true},
	}
	for _, tt := range tests {
		n, k, ok := nextKey([]byte(tt.in))
		if n != tt.consumed || k != tt.want || ok != tt.ok {
			t.Fatalf("nextKey(%q) = %d, %+v, %v; want %d, %+v, %v", tt.in, n, k, ok, tt.consumed, tt.want, tt.ok)
		}
	}
}
