package qr

// maskPredicate reports whether the mask with the given index inverts the
// data module at (x, y). The eight patterns are fixed by the standard.
func maskPredicate(mask, x, y int) bool {
	switch mask {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	}
	return false
}

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// penaltyScore evaluates the four mask penalty rules of the standard; the
// mask with the lowest total wins.
func penaltyScore(m *Matrix) int {
	n := m.side
	score := 0

	// rule 1: runs of five or more same-colored modules in rows and columns
	for y := 0; y < n; y++ {
		runColor, runLen := m.Dark(0, y), 1
		for x := 1; x < n; x++ {
			c := m.Dark(x, y)
			if c == runColor {
				runLen++
				if runLen == 5 {
					score += penaltyN1
				} else if runLen > 5 {
					score++
				}
			} else {
				runColor, runLen = c, 1
			}
		}
	}
	for x := 0; x < n; x++ {
		runColor, runLen := m.Dark(x, 0), 1
		for y := 1; y < n; y++ {
			c := m.Dark(x, y)
			if c == runColor {
				runLen++
				if runLen == 5 {
					score += penaltyN1
				} else if runLen > 5 {
					score++
				}
			} else {
				runColor, runLen = c, 1
			}
		}
	}

	// rule 2: 2x2 blocks of a single color
	for y := 0; y < n-1; y++ {
		for x := 0; x < n-1; x++ {
			c := m.Dark(x, y)
			if c == m.Dark(x+1, y) && c == m.Dark(x, y+1) && c == m.Dark(x+1, y+1) {
				score += penaltyN2
			}
		}
	}

	// rule 3: finder-like 1:1:3:1:1 patterns with four light modules on
	// either side
	fwd := [11]bool{true, false, true, true, true, false, true, false, false, false, false}
	rev := [11]bool{false, false, false, false, true, false, true, true, true, false, true}
	matches := func(at func(i int) bool) bool {
		f, r := true, true
		for i := 0; i < 11; i++ {
			v := at(i)
			if v != fwd[i] {
				f = false
			}
			if v != rev[i] {
				r = false
			}
		}
		return f || r
	}
	for y := 0; y < n; y++ {
		for x := 0; x <= n-11; x++ {
			x := x
			if matches(func(i int) bool { return m.Dark(x+i, y) }) {
				score += penaltyN3
			}
		}
	}
	for x := 0; x < n; x++ {
		for y := 0; y <= n-11; y++ {
			y := y
			if matches(func(i int) bool { return m.Dark(x, y+i) }) {
				score += penaltyN3
			}
		}
	}

	// rule 4: deviation of the dark module proportion from 50%, in 5% steps
	dark := 0
	for _, d := range m.dark {
		if d {
			dark++
		}
	}
	total := n * n
	percent := dark * 100 / total
	deviation := percent - 50
	if deviation < 0 {
		deviation = -deviation
	}
	score += (deviation / 5) * penaltyN4

	return score
}
