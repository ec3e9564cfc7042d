package blend

// blendSourceOver composites source over destination.
//
// Formula (straight alpha):
//
//	Ra = Sa + Da*(1-Sa)
//	Rc = (Sc*Sa + Dc*Da*(1-Sa)) / Ra
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 255 || da == 0 {
		return sr, sg, sb, sa
	}
	if sa == 0 {
		return dr, dg, db, da
	}
	sw := uint32(sa)
	dw := uint32(MulDiv255(da, 255-sa))
	total := sw + dw
	return mix(sr, sw, dr, dw, total),
		mix(sg, sw, dg, dw, total),
		mix(sb, sw, db, dw, total),
		byte(total)
}

// blendClear fades the destination by the source alpha.
// Formula: D * (1 - Sa). Color channels are zeroed once alpha reaches 0.
func blendClear(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	a := MulDiv255(da, 255-sa)
	if a == 0 {
		return 0, 0, 0, 0
	}
	return dr, dg, db, a
}
