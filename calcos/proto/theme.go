package proto

// RGB is a 24-bit colour.
type RGB [3]byte

// MaxThemeColors bounds the palette carried by one MsgThemeSet.
const MaxThemeColors = 32

// ThemePayload encodes a MsgThemeSet payload.
//
// Layout:
//   - u8: colour count N
//   - N * (r, g, b)
//
// The colour order is defined by the theme package.
func ThemePayload(colors []RGB) []byte {
	if len(colors) > MaxThemeColors {
		colors = colors[:MaxThemeColors]
	}
	buf := make([]byte, 1, 1+3*len(colors))
	buf[0] = byte(len(colors))
	for _, c := range colors {
		buf = append(buf, c[0], c[1], c[2])
	}
	return buf
}

// DecodeThemePayload decodes a ThemePayload.
func DecodeThemePayload(b []byte) ([]RGB, bool) {
	if len(b) < 1 {
		return nil, false
	}
	n := int(b[0])
	if n > MaxThemeColors || len(b) != 1+3*n {
		return nil, false
	}
	out := make([]RGB, n)
	for i := range out {
		off := 1 + 3*i
		out[i] = RGB{b[off], b[off+1], b[off+2]}
	}
	return out, true
}
