/*
 * intfp - Compression test group.
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

import (
	"github.com/rcornwell/intfp/intfp"
	"github.com/rcornwell/intfp/util/hex"
)

func runCompress(r *report) {
	// A 16 bit value into a 16 bit codeword keeps 13 significant
	// bits; 50000 has four trailing zeros and survives exactly.
	p := intfp.PulEncode[intfp.Pul16](uint16(50000), pulMant16)
	r.logf("pul16(50000) = %s", hex.Fields(uint64(p), 16, pulMant16, false))
	got := intfp.PulDecode[uint16](p, pulMant16)
	r.check(got == 50000, "pul16 round trip of 50000 = %d", got)

	// A 64 bit value into 16 bits keeps 11 significant bits.
	wide := uint64(0x123456789ABCDEF0)
	pw := intfp.PulEncode[intfp.Pul16](wide, pulMant64)
	gotw := intfp.PulDecode[uint64](pw, pulMant64)
	r.check(gotw <= wide && wide-gotw <= wide>>9,
		"pul16 of 64 bit value came back %#x", gotw)

	// Small values round trip exactly up to the mantissa limit.
	exact := true
	for v := uint32(0); v < 1<<13; v++ {
		pe := intfp.PulEncode[intfp.Pul16](uint16(v), pulMant16)
		if intfp.PulDecode[uint16](pe, pulMant16) != uint16(v) {
			exact = false
			r.logf("value %d broke the exact range", v)
		}
	}
	r.check(exact, "values below 2^13 round trip exactly")

	// Sentinels hold through every transcoder.
	r.check(intfp.PulToPul[intfp.Pul32](intfp.PulZero[intfp.Pul16](), pulMant16, 28) ==
		intfp.PulZero[intfp.Pul32](), "pul zero crosses widths")
	r.check(intfp.PulToLog[intfp.Log16](intfp.PulZero[intfp.Pul16](), pulMant16, logMant16) ==
		intfp.LogZero[intfp.Log16](), "pul zero becomes log zero")
	r.check(intfp.LogToPul[intfp.Pul16](intfp.LogZero[intfp.Log16](), logMant16, pulMant16) ==
		intfp.PulZero[intfp.Pul16](), "log zero becomes pul zero")

	// Negative logs are below one and collapse to PUL zero.
	half := intfp.LogEncode[intfp.Log16](uint16(128), 8, logMant16)
	r.check(intfp.LogToPul[intfp.Pul16](half, logMant16, pulMant16) ==
		intfp.PulZero[intfp.Pul16](), "log of 0.5 becomes pul zero")

	// Width changes keep the value.
	p32 := intfp.PulToPul[intfp.Pul32](p, pulMant16, 28)
	got32 := intfp.PulDecode[uint16](p32, 28)
	r.check(got32 == 50000, "widened codeword decodes to %d", got32)

	l16 := intfp.PulToLog[intfp.Log16](p, pulMant16, logMant16)
	gotl := intfp.LogDecode[uint16](l16, 0, logMant16)
	r.check(gotl == 50000, "pul to log decodes to %d", gotl)
}
