/*
 * intfp - EWMA test group.
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

func runEwma(r *report) {
	// Q8 samples, damper 4: the average closes a quarter of the gap.
	got := intfp.EwmaDiv[int32](200<<8, 100<<8, 0, 4)
	r.check(got == 32000, "ewma 100->200 Q8 damper 4 = %d", got)

	got = intfp.EwmaDiv[int32](100<<8, 200<<8, 0, 4)
	r.check(got == 44800, "ewma 200->100 Q8 damper 4 = %d", got)

	// A damper of one disables smoothing.
	got = intfp.EwmaDiv[int32](999, 100, 0, 1)
	r.check(got == 999, "damper 1 passes the sample through, got %d", got)

	// Ceiling division always advances on a difference.
	advanced := true
	for diff := int32(1); diff < 1000; diff++ {
		if intfp.EwmaDiv[int32](1000+diff, 1000, 0, 64) == 1000 {
			advanced = false
			r.logf("difference %d stalled", diff)
		}
		if intfp.EwmaDiv[int32](1000-diff, 1000, 0, 64) == 1000 {
			advanced = false
		}
	}
	r.check(advanced, "division damper always advances")

	// Values below the floor clamp before averaging.
	got = intfp.EwmaDiv[int32](50, -100, 10, 4)
	r.check(got == 20, "floored average = %d", got)

	// The shift damper is cheaper but stalls on small differences.
	got = intfp.EwmaShr[int32](200<<8, 100<<8, 0, 2)
	r.check(got == 32000, "ewma shift damper = %d", got)
	got = intfp.EwmaShr[int32](103, 100, 0, 2)
	r.check(got == 100, "shift damper stalls below 1<<s, got %d", got)
}
