/*
 * intfp - Exponentially weighted moving average.
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

// First order smoothing with a division damper. The adjustment is a
// ceiling division, so the average always moves by at least one when
// the inputs differ. A damper of one or less disables smoothing and
// returns the new sample.
func EwmaDiv[T Int](newv, oldv, floor, damper T) T {
	if damper <= 1 {
		return newv
	}
	if oldv < floor {
		oldv = floor
	}
	if newv < floor {
		newv = floor
	}
	if newv == oldv {
		return oldv
	}
	var diff T
	if newv > oldv {
		diff = newv - oldv
	} else {
		diff = oldv - newv
	}
	adj := (diff + damper - 1) / damper
	if newv > oldv {
		return oldv + adj
	}
	return oldv - adj
}

// Shift damper variant, cheaper when the damper is a power of two.
// The minimum advance guarantee is lost once the difference drops
// below 1<<shift.
func EwmaShr[T Int](newv, oldv, floor T, shift uint) T {
	if shift == 0 {
		return newv
	}
	if oldv < floor {
		oldv = floor
	}
	if newv < floor {
		newv = floor
	}
	if newv == oldv {
		return oldv
	}
	var diff T
	if newv > oldv {
		diff = newv - oldv
	} else {
		diff = oldv - newv
	}
	adj := diff >> shift
	if newv > oldv {
		return oldv + adj
	}
	return oldv - adj
}
