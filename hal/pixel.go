package hal

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGB565 packs an 8-bit-per-channel colour into RGB565.
func RGB565(r, g, b uint8) uint16 { return rgb565(r, g, b) }

// RGB888 unpacks an RGB565 pixel.
func RGB888(p uint16) (r, g, b uint8) { return rgb888From565(p) }

// expandRGB565 converts little-endian RGB565 pixels in src to RGBA8888 in dst.
func expandRGB565(dst, src []byte) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

// packRect streams the pixels of d from a little-endian RGB565 buffer as
// big-endian RGB565, row by row. chunk is refilled and handed to emit each
// time it fills, and once more for the tail.
func packRect(chunk, buf []byte, stride int, d Damage, emit func([]byte)) {
	chunk = chunk[:len(chunk)&^1]
	if len(chunk) == 0 || d.Empty() {
		return
	}
	n := 0
	for y := d.Y0; y < d.Y1; y++ {
		row := buf[y*stride+d.X0*2 : y*stride+d.X1*2]
		for i := 0; i+1 < len(row); i += 2 {
			chunk[n] = row[i+1]
			chunk[n+1] = row[i]
			n += 2
			if n == len(chunk) {
				emit(chunk)
				n = 0
			}
		}
	}
	if n > 0 {
		emit(chunk[:n])
	}
}
