package stroke

import "math"

// Dash splits a polyline into dashes following pattern, a list of
// alternating dash and gap lengths. An odd-length pattern is logically
// duplicated ([5] becomes [5, 5]). Non-positive totals return the
// polyline unchanged as a single piece.
func Dash(pts []Point, pattern []float64, offset float64) [][]Point {
	if len(pattern)%2 != 0 {
		pattern = append(pattern[:len(pattern):len(pattern)], pattern...)
	}
	var total float64
	for _, l := range pattern {
		total += math.Abs(l)
	}
	if total <= 0 || len(pts) < 2 {
		return [][]Point{pts}
	}

	offset = math.Mod(offset, total)
	if offset < 0 {
		offset += total
	}
	idx := 0
	for offset >= math.Abs(pattern[idx]) {
		offset -= math.Abs(pattern[idx])
		idx = (idx + 1) % len(pattern)
	}
	remaining := math.Abs(pattern[idx]) - offset
	on := idx%2 == 0

	var (
		dashes  [][]Point
		current []Point
	)
	if on {
		current = []Point{pts[0]}
	}
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		segLen := a.Distance(b)
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			p := a.Lerp(b, pos/segLen)
			if on {
				current = append(current, p)
				dashes = append(dashes, current)
				current = nil
			} else {
				current = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = math.Abs(pattern[idx])
		}
		remaining -= segLen - pos
		if on {
			current = append(current, b)
		}
	}
	if on && len(current) > 1 {
		dashes = append(dashes, current)
	}
	return dashes
}
