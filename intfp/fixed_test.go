/*
 * intfp - Fixed point conversion test cases.
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

import "testing"

func TestToFixed(t *testing.T) {
	if got := ToFixed[uint32](uint16(100), 8); got != 25600 {
		t.Errorf("ToFixed 100 Q8 expected 25600 got %d", got)
	}
	if got := ToFixed[uint64](uint8(255), 16); got != 255<<16 {
		t.Errorf("ToFixed 255 Q16 expected %d got %d", 255<<16, got)
	}
	if got := ToFixed[int32](int16(-100), 8); got != -25600 {
		t.Errorf("ToFixed -100 Q8 expected -25600 got %d", got)
	}
}

func TestFromFixed(t *testing.T) {
	if got := FromFixed[uint16](uint32(25600), 8); got != 100 {
		t.Errorf("FromFixed 25600 Q8 expected 100 got %d", got)
	}

	// The fractional tail is truncated, never rounded.
	if got := FromFixed[uint16](uint32(25855), 8); got != 100 {
		t.Errorf("FromFixed 25855 Q8 expected 100 got %d", got)
	}

	// Signed narrowing uses an arithmetic shift.
	if got := FromFixed[int16](int32(-25600), 8); got != -100 {
		t.Errorf("FromFixed -25600 Q8 expected -100 got %d", got)
	}
	if got := FromFixed[int16](int32(-1), 8); got != -1 {
		t.Errorf("FromFixed -1 Q8 expected -1 got %d", got)
	}
}

func TestFixedRoundTrip(t *testing.T) {
	for v := uint16(0); v < 1000; v++ {
		fp := ToFixed[uint32](v, 12)
		if got := FromFixed[uint16](fp, 12); got != v {
			t.Errorf("round trip %d Q12 got %d", v, got)
		}
	}
}
