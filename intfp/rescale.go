/*
 * intfp - Radix rescale of log codewords.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package intfp

// Log codewords of 32 bits or less that a radix rescale can multiply
// without overflowing the 64 bit intermediate product.
type ScaleWord interface {
	~int8 | ~int16 | ~int32
}

// Log radix tags.
type Radix int

const (
	// Decibels of a power quantity, 10*log10. The constant pair
	// round trips to within one codeword unit.
	DBPower Radix = iota

	// Base 1.25 ratio steps. The published constant pair does not
	// round trip exactly; both directions are kept verbatim.
	Ratio125
)

// Fixed point scale constants, left justified in 32 bits.
type radixScale struct {
	to      uint64 // Multiplier from log2 to the radix.
	toShr   uint
	from    uint64 // Multiplier from the radix back to log2.
	fromShr uint
}

var radixScales = [...]radixScale{
	DBPower:  {to: 0xC0A8C129, toShr: 30, from: 0x550A9686, fromShr: 32},
	Ratio125: {to: 0xC6CD5A3B, toShr: 30, from: 0x5269E11A, fromShr: 32},
}

// Rescale a base two log codeword into radix units.
func RescaleTo[L ScaleWord](v L, radix Radix) L {
	s := radixScales[radix]
	return rescale(v, s.to, s.toShr)
}

// Rescale a codeword in radix units back to base two log.
func RescaleFrom[L ScaleWord](v L, radix Radix) L {
	s := radixScales[radix]
	return rescale(v, s.from, s.fromShr)
}

func rescale[L ScaleWord](v L, mul uint64, shr uint) L {
	// Zero and the log zero sentinel pass through untouched.
	if v == 0 || v == SignedMin[L]() {
		return v
	}
	neg := v < 0
	if neg {
		v = -v
	}
	t := int64((uint64(v) * mul) >> shr)
	if neg {
		t = -t
	}
	return L(t)
}
