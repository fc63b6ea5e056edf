// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedsplit

import "sync"

// Share arithmetic happens in GF(2^8) modulo the Rijndael polynomial
// x^8 + x^4 + x^3 + x + 1. The modulus is a fixed system constant: metadata
// and shares produced under one modulus are meaningless under another.
const fieldPolynomial = 0x11b

var (
	gfExp [256]byte
	gfLog [256]byte

	gfTablesOnce sync.Once
)

// gfInitTables fills the log/exp lookup tables using the generator 3. After
// initialization the tables are read-only and safe for concurrent use.
func gfInitTables() {
	gfTablesOnce.Do(func() {
		x := uint16(1)
		for i := 0; i < 255; i++ {
			gfExp[i] = byte(x)
			gfLog[x] = byte(i)

			// Multiply by the generator: x*3 = (x << 1) ^ x, reduced
			// by the modulus on overflow.
			x = (x << 1) ^ x
			if x >= 256 {
				x ^= fieldPolynomial
			}
		}
		// The multiplicative group is cyclic with order 255.
		gfExp[255] = 1
	})
}

// gfAdd adds two field elements. Addition in GF(2^8) is XOR: it is
// commutative, self-inverse and has identity 0.
func gfAdd(a, b byte) byte {
	return a ^ b
}

// gfMul multiplies two field elements via the log/exp tables. log(0) is
// undefined, so zero operands are special-cased.
func gfMul(a, b byte) byte {
	gfInitTables()
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[(int(gfLog[a])+int(gfLog[b]))%255]
}

// gfInv returns the multiplicative inverse of a nonzero field element.
func gfInv(a byte) byte {
	gfInitTables()
	if a == 0 {
		panic("seedsplit: inverse of zero in GF(2^8)")
	}
	return gfExp[255-int(gfLog[a])]
}

// gfDiv divides a by b. Division by zero never happens with distinct share
// indices; it panics rather than returning a silently wrong element.
func gfDiv(a, b byte) byte {
	gfInitTables()
	if b == 0 {
		panic("seedsplit: division by zero in GF(2^8)")
	}
	if a == 0 {
		return 0
	}
	d := (int(gfLog[a]) - int(gfLog[b])) % 255
	if d < 0 {
		d += 255
	}
	return gfExp[d]
}
