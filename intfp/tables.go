/*
 * intfp - Quadratic correction tables.
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

// The linear mantissa approximates log2(1+m) from below, worst near
// the middle of the interval. The correction term c*m*(1-m) closes
// most of the gap. Both tables are indexed by the top eight bits of
// the mantissa and hold the term scaled to a sixteen bit mantissa.
// The scale factors are the canonical rationals 89/256 for encode and
// 88/256 for decode; entries are built with integer arithmetic only
// so two builds always agree bit for bit.
const (
	encCorrectScale = 89
	decCorrectScale = 88
)

var (
	encCorrect [256]uint16
	decCorrect [256]uint16
)

func init() {
	for i := range 256 {
		encCorrect[i] = uint16(encCorrectScale * i * (256 - i) >> 8)
		decCorrect[i] = uint16(decCorrectScale * i * (256 - i) >> 8)
	}
}

// Look up the correction for the fractional part of a mantissa field
// of mant bits and rescale it from table precision to mant bits.
func correction(table *[256]uint16, frac uint64, mant uint) uint64 {
	var idx uint64
	if mant >= 8 {
		idx = frac >> (mant - 8)
	} else {
		idx = frac << (8 - mant)
	}
	c := uint64(table[idx])
	if mant >= 16 {
		return c << (mant - 16)
	}
	return c >> (16 - mant)
}
