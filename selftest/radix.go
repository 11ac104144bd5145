/*
 * intfp - Radix rescale test group.
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

func runRadix(r *report) {
	// Zero and the log zero sentinel pass through untouched.
	r.check(intfp.RescaleTo[intfp.Log32](0, intfp.DBPower) == 0, "zero passes through")
	r.check(intfp.RescaleTo(intfp.LogZero[intfp.Log32](), intfp.DBPower) ==
		intfp.LogZero[intfp.Log32](), "log zero passes through")

	// A factor of two is 3.0103 dB; check the ratio on a power of
	// two codeword.
	one := intfp.Log32(1) << logMant32
	db := int64(intfp.RescaleTo(one, intfp.DBPower))
	r.check(db*10000 >= int64(one)*30102 && db*10000 <= int64(one)*30104,
		"1.0 in log2 is %d dB units", db)

	// The dB constants invert each other to within one unit.
	ok := true
	for _, v := range []uint64{2, 1000, 12345, 1000000} {
		l := intfp.LogEncode[intfp.Log32](v, 0, logMant32)
		for _, s := range []intfp.Log32{l, -l} {
			back := intfp.RescaleFrom(intfp.RescaleTo(s, intfp.DBPower), intfp.DBPower)
			diff := int64(back) - int64(s)
			if diff < -1 || diff > 1 {
				ok = false
				r.logf("dB round trip of %d came back %d", s, back)
			}
		}
	}
	r.check(ok, "dB rescale round trips within one unit")

	// Base 1.25 steps: one factor of two is log1.25(2) = 3.1063
	// steps. The published constants do not form an exact inverse
	// pair, so only the forward factor is checked.
	steps := int64(intfp.RescaleTo(one, intfp.Ratio125))
	r.check(steps*10000 >= int64(one)*31062 && steps*10000 <= int64(one)*31064,
		"1.0 in log2 is %d ratio steps", steps)

	back := int64(intfp.RescaleFrom(intfp.Log32(steps), intfp.Ratio125))
	r.logf("ratio 1.25 round trip of %d returns %d", int64(one), back)

	// Negative codewords mirror.
	l := intfp.LogEncode[intfp.Log32](uint64(1000), 0, logMant32)
	r.check(intfp.RescaleTo(-l, intfp.DBPower) == -intfp.RescaleTo(l, intfp.DBPower),
		"negation commutes with rescale")
}
