package qr

// formatInfoBits computes the 15-bit format information for an error
// correction level and mask index: 5 data bits followed by 10 BCH(15,5)
// remainder bits, XORed with the standard's fixed mask pattern.
func formatInfoBits(level ECLevel, mask int) uint32 {
	data := level.formatBits()<<3 | uint32(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	return (data<<10 | rem) ^ 0x5412
}

// versionInfoBits computes the 18-bit version information for versions 7
// and above: 6 version bits followed by 12 BCH(18,6) remainder bits.
func versionInfoBits(version int) uint32 {
	rem := uint32(version)
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * 0x1F25)
	}
	return uint32(version)<<12 | rem
}
