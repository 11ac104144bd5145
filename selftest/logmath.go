/*
 * intfp - Log arithmetic test group.
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

package selftest

import "github.com/rcornwell/intfp/intfp"

func runLogMath(r *report) {
	// Adding codewords multiplies the linear values.
	a := intfp.LogEncode[intfp.Log32](uint64(1000), 0, logMant32)
	b := intfp.LogEncode[intfp.Log32](uint64(2000), 0, logMant32)
	got := intfp.LogDecode[uint64](a+b, 0, logMant32)
	r.check(got >= 1800000 && got <= 2220000,
		"1000*2000 uncorrected = %d", got)

	ac := intfp.LogEncodeCorrected[intfp.Log32](uint64(1000), 0, logMant32)
	bc := intfp.LogEncodeCorrected[intfp.Log32](uint64(2000), 0, logMant32)
	gotc := intfp.LogDecodeCorrected[uint64](ac+bc, 0, logMant32)
	r.check(gotc >= 1974000 && gotc <= 2026000,
		"1000*2000 corrected = %d", gotc)

	// Subtracting divides.
	n := intfp.LogEncodeCorrected[intfp.Log32](uint64(1000000), 0, logMant32)
	d := intfp.LogEncodeCorrected[intfp.Log32](uint64(1000), 0, logMant32)
	q := intfp.LogDecodeCorrected[uint64](n-d, 0, logMant32)
	r.check(within(q, 1000, 10), "1000000/1000 corrected = %d", q)

	// Multiplying by one adds a zero codeword.
	one := intfp.LogEncode[intfp.Log32](uint64(1), 0, logMant32)
	r.check(one == 0, "codeword of 1 is 0, got %d", one)
	same := intfp.LogDecode[uint64](a+one, 0, logMant32)
	r.check(same == 1000, "1000*1 = %d", same)

	// Squaring a power of two doubles the exponent exactly.
	p := intfp.LogEncode[intfp.Log32](uint64(1)<<20, 0, logMant32)
	sq := intfp.LogDecode[uint64](p+p, 0, logMant32)
	r.check(sq == uint64(1)<<40, "(2^20)^2 = %#x", sq)

	// A division below one goes negative and decodes to zero with no
	// fractional output bits.
	under := intfp.LogDecode[uint64](d-n, 0, logMant32)
	r.check(under == 0, "1000/1000000 underflows to %d", under)
}
