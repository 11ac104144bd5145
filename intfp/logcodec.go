/*
 * intfp - Signed pseudo logarithmic codec.
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

// Signed log codewords. A codeword is the approximate base two log of
// the linear value, held as a signed fixed point number with mant
// fractional bits. Adding codewords multiplies the linear values,
// subtracting divides them. The most negative value of the width is
// reserved for the integer 0.
type (
	Log8  int8
	Log16 int16
	Log32 int32
	Log64 int64
)

// Codeword representing the integer 0.
func LogZero[L Int]() L {
	return SignedMin[L]()
}

// Encode an unsigned fixed point value with fract fractional bits
// into a signed log codeword with mant mantissa bits.
func LogEncode[L Int, V Uint](v V, fract, mant uint) L {
	return logEncode[L](v, fract, mant, false)
}

// Encode with the quadratic correction applied to the mantissa. Pair
// with LogDecodeCorrected for the full advertised precision.
func LogEncodeCorrected[L Int, V Uint](v V, fract, mant uint) L {
	return logEncode[L](v, fract, mant, true)
}

// Decode a signed log codeword to an unsigned fixed point value with
// fract fractional bits.
func LogDecode[V Uint, L Int](l L, fract, mant uint) V {
	return logDecode[V](l, fract, mant, false)
}

// Decode with the quadratic correction removed from the mantissa.
func LogDecodeCorrected[V Uint, L Int](l L, fract, mant uint) V {
	return logDecode[V](l, fract, mant, true)
}

func logEncode[L Int, V Uint](v V, fract, mant uint, corrected bool) L {
	if v == 0 {
		return LogZero[L]()
	}
	h := wordBits[V]()
	c := Clz(v)

	// Input fractional bits fold straight into the exponent.
	e := int64(h) - 2 - int64(c) - int64(fract)

	// Mantissa keeps the implicit leading one, so a carry out of the
	// mantissa field bumps the exponent during the final addition.
	m := alignMant(uint64(v)<<c, h, mant)
	if corrected {
		m += correction(&encCorrect, m&(uint64(1)<<mant-1), mant)
	}
	return L(e<<mant + int64(m))
}

func logDecode[V Uint, L Int](l L, fract, mant uint, corrected bool) V {
	if l == LogZero[L]() {
		return 0
	}
	h := wordBits[V]()

	neg := l < 0
	if neg {
		l = -l
	}
	e := int64(l >> mant)
	if neg {
		e = -e
	}

	// Fold the requested output fractional bits into the exponent and
	// clamp: too small underflows to zero, too large saturates.
	se := e + int64(fract)
	if se < 0 {
		return 0
	}
	if se >= int64(h) {
		return UnsignedMax[V]()
	}

	m := uint64(l) & (uint64(1)<<mant - 1)
	if corrected {
		m -= correction(&decCorrect, m, mant)
	}
	norm := uint64(1)<<(h-1) | alignNorm(m, h, mant)
	return V(norm >> (h - 1 - uint(se)))
}
