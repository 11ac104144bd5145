/*
 * intfp - Packed unsigned log storage codec.
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

// PUL codewords. Exponent field in the high bits, mantissa in the low
// mant bits. The integer 0 is stored as codeword 1 and the integer 1
// as codeword 0, so zero keeps the smallest distinct codeword.
type (
	Pul8  uint8
	Pul16 uint16
	Pul32 uint32
	Pul64 uint64
)

// Codeword representing the integer 0.
func PulZero[P Uint]() P {
	return UnsignedMin[P]()
}

// Compress an integer into a PUL codeword with mant mantissa bits.
// The mantissa keeps the implicit leading one of the normalized
// value, so the codeword is built with addition and a mantissa carry
// bumps the exponent field.
func PulEncode[P Uint, V Uint](v V, mant uint) P {
	if v <= 1 {
		if v == 0 {
			return PulZero[P]()
		}
		return 0
	}
	h := wordBits[V]()
	c := Clz(v)
	e := uint64(h - 2 - c)
	m := alignMant(uint64(v)<<c, h, mant)
	return P(e<<mant + m)
}

// Expand a PUL codeword back to an integer. A codeword whose exponent
// does not fit the target width saturates to the unsigned maximum.
func PulDecode[V Uint, P Uint](p P, mant uint) V {
	if p == PulZero[P]() {
		return 0
	}
	h := wordBits[V]()
	e := uint(p >> mant)
	if e >= h {
		return UnsignedMax[V]()
	}
	m := uint64(p & Bitmask[P](mant-1))
	norm := uint64(1)<<(h-1) | alignNorm(m, h, mant)
	return V(norm >> (h - 1 - e))
}
