/*
 * intfp - Basic conversion test group.
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

// Mantissa widths for the widths this suite exercises.
const (
	logMant32 = 25 // 64 bit integers in 32 bit log codewords
	logMant16 = 11 // 16 bit integers in 16 bit log codewords
	pulMant16 = 12 // 16 bit integers in 16 bit PUL codewords
	pulMant64 = 10 // 64 bit integers in 16 bit PUL codewords
)

func runBasic(r *report) {
	// Fixed point shifts.
	fp := intfp.ToFixed[uint32](uint16(100), 8)
	r.check(fp == 25600, "ToFixed 100 Q8 = %d", fp)
	back := intfp.FromFixed[uint16](fp+255, 8)
	r.check(back == 100, "FromFixed truncates tail to %d", back)
	sfp := intfp.FromFixed[int16](int32(-25600), 8)
	r.check(sfp == -100, "signed FromFixed = %d", sfp)

	// Zero sentinels.
	r.check(intfp.LogEncode[intfp.Log32](uint64(0), 0, logMant32) == intfp.LogZero[intfp.Log32](),
		"log encode of 0 is the sentinel")
	r.check(intfp.LogDecode[uint64](intfp.LogZero[intfp.Log32](), 0, logMant32) == 0,
		"log sentinel decodes to 0")
	r.check(intfp.PulEncode[intfp.Pul16](uint16(0), pulMant16) == 1, "pul encode of 0 is 1")
	r.check(intfp.PulEncode[intfp.Pul16](uint16(1), pulMant16) == 0, "pul encode of 1 is 0")

	// Powers of two are exact through every codec.
	exact := true
	for k := uint(0); k < 64; k++ {
		v := uint64(1) << k
		l := intfp.LogEncode[intfp.Log32](v, 0, logMant32)
		if intfp.LogDecode[uint64](l, 0, logMant32) != v {
			exact = false
			r.logf("2^%d log codeword %s", k, hex.Fields(uint64(uint32(l)), 32, logMant32, true))
		}
		p := intfp.PulEncode[intfp.Pul16](v, pulMant64)
		if intfp.PulDecode[uint64](p, pulMant64) != v {
			exact = false
		}
	}
	r.check(exact, "powers of two round trip exactly")

	// One million fits the wide mantissa, so the plain round trip is
	// exact and the corrected one is close.
	l := intfp.LogEncode[intfp.Log32](uint64(1000000), 0, logMant32)
	got := intfp.LogDecode[uint64](l, 0, logMant32)
	r.check(got == 1000000, "1000000 round trip = %d", got)

	lc := intfp.LogEncodeCorrected[intfp.Log32](uint64(1000000), 0, logMant32)
	gotc := intfp.LogDecodeCorrected[uint64](lc, 0, logMant32)
	r.check(within(gotc, 1000000, 86), "corrected 1000000 round trip = %d", gotc)
}

// True when got is within want*perMille/1000 of want.
func within(got, want, perMille uint64) bool {
	var diff uint64
	if got > want {
		diff = got - want
	} else {
		diff = want - got
	}
	return diff*1000 <= want*perMille
}
