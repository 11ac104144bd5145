/*
 * intfp - EWMA test cases.
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

import (
	"math/rand"
	"testing"
)

func TestEwmaDiv(t *testing.T) {
	// 100 and 200 in Q8 with a damper of 4 meet a quarter of the way.
	if got := EwmaDiv[int32](200<<8, 100<<8, 0, 4); got != 32000 {
		t.Errorf("expected 32000 got %d", got)
	}

	// Moving down mirrors moving up.
	if got := EwmaDiv[int32](100<<8, 200<<8, 0, 4); got != 44800 {
		t.Errorf("downward expected 44800 got %d", got)
	}

	// Equal inputs return the old value.
	if got := EwmaDiv[int32](500, 500, 0, 8); got != 500 {
		t.Errorf("equal inputs expected 500 got %d", got)
	}
}

func TestEwmaDivDamperOff(t *testing.T) {
	if got := EwmaDiv[int16](999, 100, 0, 1); got != 999 {
		t.Errorf("damper 1 expected 999 got %d", got)
	}
	if got := EwmaDiv[int16](999, 100, 0, 0); got != 999 {
		t.Errorf("damper 0 expected 999 got %d", got)
	}
}

func TestEwmaDivFloor(t *testing.T) {
	// Both inputs clamp up to the floor before averaging.
	if got := EwmaDiv[int32](5, -100, 10, 4); got != 10 {
		t.Errorf("floored equal expected 10 got %d", got)
	}
	if got := EwmaDiv[int32](50, -100, 10, 4); got != 20 {
		t.Errorf("floored average expected 20 got %d", got)
	}
}

// Ceiling division moves the average by at least one whenever the
// inputs differ.
func TestEwmaDivAdvances(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for range 2000 {
		oldv := int64(rnd.Int31())
		newv := int64(rnd.Int31())
		if newv == oldv {
			newv++
		}
		d := int64(rnd.Int31n(100) + 2)
		got := EwmaDiv(newv, oldv, 0, d)
		if got == oldv {
			t.Errorf("ewma(%d,%d,%d) failed to advance", newv, oldv, d)
		}
		if newv > oldv && (got <= oldv || got > newv) {
			t.Errorf("ewma(%d,%d,%d) = %d out of range", newv, oldv, d, got)
		}
		if newv < oldv && (got >= oldv || got < newv) {
			t.Errorf("ewma(%d,%d,%d) = %d out of range", newv, oldv, d, got)
		}
	}
}

func TestEwmaShr(t *testing.T) {
	if got := EwmaShr[int32](200<<8, 100<<8, 0, 2); got != 32000 {
		t.Errorf("expected 32000 got %d", got)
	}

	// Small differences vanish under the shift damper.
	if got := EwmaShr[int32](103, 100, 0, 2); got != 100 {
		t.Errorf("small diff expected 100 got %d", got)
	}

	// Shift of zero disables smoothing.
	if got := EwmaShr[int32](103, 100, 0, 0); got != 103 {
		t.Errorf("shift 0 expected 103 got %d", got)
	}
}
