package blend

// div255 divides x by 255 with rounding, without using division.
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. It is exact for every product of two
// bytes, which keeps compositing results reproducible across platforms.
func div255(x uint16) uint16 {
	t := uint32(x) + 128
	return uint16((t + (t >> 8)) >> 8)
}

// MulDiv255 multiplies two bytes and divides by 255 with rounding.
//
// It is used to scale a coverage value by a color alpha, and to scale a
// whole surface's alpha channel by a constant.
func MulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// mix computes the weighted average of two channel values.
// sw and dw are the source and destination weights, total is sw+dw (> 0).
func mix(s byte, sw uint32, d byte, dw uint32, total uint32) byte {
	return byte((uint32(s)*sw + uint32(d)*dw + total/2) / total)
}
