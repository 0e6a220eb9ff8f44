package qr

// Role classifies what a module position is used for. Renderers only care
// about dark/light, but the overlay compositor and tests use roles to tell
// function patterns from data.
type Role uint8

const (
	// RoleData carries encoded payload or error correction bits.
	RoleData Role = iota
	// RoleFinder is one of the three corner finder patterns.
	RoleFinder
	// RoleSeparator is the light strip around a finder pattern.
	RoleSeparator
	// RoleTiming is the alternating row/column six.
	RoleTiming
	// RoleAlignment is an alignment pattern module.
	RoleAlignment
	// RoleFormat carries format information bits.
	RoleFormat
	// RoleVersion carries version information bits (version >= 7 only).
	RoleVersion
	// RoleDark is the single always-dark module beside the lower-left finder.
	RoleDark
)

// Matrix is a square grid of modules. The zero value is not usable; build
// one with newMatrix. Once an encode call returns, the matrix is never
// mutated again.
type Matrix struct {
	side int
	dark []bool
	used []bool // function modules and placed data, used during construction
	role []Role
}

func newMatrix(side int) *Matrix {
	return &Matrix{
		side: side,
		dark: make([]bool, side*side),
		used: make([]bool, side*side),
		role: make([]Role, side*side),
	}
}

// Side returns the module side length.
func (m *Matrix) Side() int { return m.side }

// Dark reports whether the module at (x, y) is dark. Out-of-range positions
// read as light, which conveniently models the quiet zone.
func (m *Matrix) Dark(x, y int) bool {
	if x < 0 || y < 0 || x >= m.side || y >= m.side {
		return false
	}
	return m.dark[y*m.side+x]
}

// Role returns the role of the module at (x, y).
func (m *Matrix) Role(x, y int) Role {
	return m.role[y*m.side+x]
}

// Iterate walks the grid row by row, calling fn with every module.
func (m *Matrix) Iterate(fn func(x, y int, dark bool, role Role)) {
	for y := 0; y < m.side; y++ {
		for x := 0; x < m.side; x++ {
			fn(x, y, m.dark[y*m.side+x], m.role[y*m.side+x])
		}
	}
}

func (m *Matrix) set(x, y int, dark bool, role Role) {
	i := y*m.side + x
	m.dark[i] = dark
	m.used[i] = true
	m.role[i] = role
}

func (m *Matrix) isUsed(x, y int) bool {
	return m.used[y*m.side+x]
}

func (m *Matrix) clone() *Matrix {
	c := newMatrix(m.side)
	copy(c.dark, m.dark)
	copy(c.used, m.used)
	copy(c.role, m.role)
	return c
}

// drawFinders places the three finder patterns with their separators.
func (m *Matrix) drawFinders() {
	anchors := [3][2]int{{0, 0}, {m.side - 7, 0}, {0, m.side - 7}}
	for _, a := range anchors {
		m.drawFinderAt(a[0], a[1])
	}
}

func (m *Matrix) drawFinderAt(ox, oy int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			x, y := ox+dx, oy+dy
			if x < 0 || y < 0 || x >= m.side || y >= m.side {
				continue
			}
			if dx == -1 || dx == 7 || dy == -1 || dy == 7 {
				m.set(x, y, false, RoleSeparator)
				continue
			}
			// concentric rings: 7x7 dark border, 5x5 light, 3x3 dark core
			dark := dx == 0 || dx == 6 || dy == 0 || dy == 6 ||
				(dx >= 2 && dx <= 4 && dy >= 2 && dy <= 4)
			m.set(x, y, dark, RoleFinder)
		}
	}
}

func (m *Matrix) drawTiming() {
	for i := 8; i < m.side-8; i++ {
		dark := i%2 == 0
		if !m.isUsed(i, 6) {
			m.set(i, 6, dark, RoleTiming)
		}
		if !m.isUsed(6, i) {
			m.set(6, i, dark, RoleTiming)
		}
	}
}

func (m *Matrix) drawAlignments(version int) {
	centers := alignCenters[version-1]
	for _, cy := range centers {
		for _, cx := range centers {
			// skip patterns that would collide with a finder
			if m.isUsed(cx, cy) {
				continue
			}
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					dark := dx == -2 || dx == 2 || dy == -2 || dy == 2 || (dx == 0 && dy == 0)
					m.set(cx+dx, cy+dy, dark, RoleAlignment)
				}
			}
		}
	}
}

// reserveFormat marks the format information positions as used so data
// placement skips them. The actual bits are written after mask selection.
func (m *Matrix) reserveFormat() {
	for i := 0; i <= 8; i++ {
		if !m.isUsed(i, 8) {
			m.set(i, 8, false, RoleFormat)
		}
		if !m.isUsed(8, i) {
			m.set(8, i, false, RoleFormat)
		}
	}
	for i := 0; i < 8; i++ {
		m.set(m.side-1-i, 8, false, RoleFormat)
		m.set(8, m.side-1-i, false, RoleFormat)
	}
	// the dark module never changes with mask or format
	m.set(8, m.side-8, true, RoleDark)
}

func (m *Matrix) drawVersionInfo(version int) {
	if version < 7 {
		return
	}
	bits := versionInfoBits(version)
	for i := 0; i < 18; i++ {
		dark := bits&(1<<i) != 0
		x := i / 3
		y := m.side - 11 + i%3
		m.set(x, y, dark, RoleVersion)
		m.set(y, x, dark, RoleVersion)
	}
}

// placeData writes the interleaved codeword bit stream into the unused
// modules, zigzagging upward and downward in two-column bands from the
// bottom-right corner, skipping the vertical timing column.
func (m *Matrix) placeData(bits []bool) {
	i := 0
	upward := true
	for right := m.side - 1; right >= 1; right -= 2 {
		if right == 6 {
			right--
		}
		for step := 0; step < m.side; step++ {
			y := m.side - 1 - step
			if !upward {
				y = step
			}
			for _, x := range [2]int{right, right - 1} {
				if m.isUsed(x, y) {
					continue
				}
				dark := false
				if i < len(bits) {
					dark = bits[i]
				}
				m.set(x, y, dark, RoleData)
				i++
			}
		}
		upward = !upward
	}
}

// applyMask toggles the data modules selected by the mask predicate.
// Function patterns are never masked.
func (m *Matrix) applyMask(mask int) {
	for y := 0; y < m.side; y++ {
		for x := 0; x < m.side; x++ {
			i := y*m.side + x
			if m.role[i] != RoleData {
				continue
			}
			if maskPredicate(mask, x, y) {
				m.dark[i] = !m.dark[i]
			}
		}
	}
}

// writeFormat stamps the 15 format information bits for (level, mask) into
// both redundant locations.
func (m *Matrix) writeFormat(level ECLevel, mask int) {
	bits := formatInfoBits(level, mask)
	at := func(i int) bool { return bits&(1<<i) != 0 }

	// around the top-left finder
	for i := 0; i <= 5; i++ {
		m.set(8, i, at(i), RoleFormat)
	}
	m.set(8, 7, at(6), RoleFormat)
	m.set(8, 8, at(7), RoleFormat)
	m.set(7, 8, at(8), RoleFormat)
	for i := 9; i < 15; i++ {
		m.set(14-i, 8, at(i), RoleFormat)
	}

	// split between the other two finders
	for i := 0; i < 8; i++ {
		m.set(m.side-1-i, 8, at(i), RoleFormat)
	}
	for i := 8; i < 15; i++ {
		m.set(8, m.side-15+i, at(i), RoleFormat)
	}
}
