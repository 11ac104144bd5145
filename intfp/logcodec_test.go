/*
 * intfp - Signed log codec test cases.
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

// Mantissa width for a 32 bit codeword fed from 64 bit integers.
const logMant32 = 25

func TestLogSentinels(t *testing.T) {
	if got := LogEncode[Log32](uint64(0), 0, logMant32); got != -2147483648 {
		t.Errorf("encode 0 expected log zero got %d", got)
	}
	if got := LogDecode[uint64](LogZero[Log32](), 0, logMant32); got != 0 {
		t.Errorf("decode log zero expected 0 got %d", got)
	}
	if got := LogEncodeCorrected[Log16](uint16(0), 0, 11); got != -32768 {
		t.Errorf("corrected encode 0 expected log zero got %d", got)
	}
	if got := LogDecodeCorrected[uint16](LogZero[Log16](), 0, 11); got != 0 {
		t.Errorf("corrected decode log zero expected 0 got %d", got)
	}
}

// The fraction of a power of two is zero, so corrected and plain
// paths both return it untouched.
func TestLogPowerOfTwo(t *testing.T) {
	for k := uint(0); k < 64; k++ {
		v := uint64(1) << k
		l := LogEncode[Log32](v, 0, logMant32)
		if got := LogDecode[uint64](l, 0, logMant32); got != v {
			t.Errorf("2^%d round trip got %d", k, got)
		}
		lc := LogEncodeCorrected[Log32](v, 0, logMant32)
		if lc != l {
			t.Errorf("2^%d corrected codeword differs: %d vs %d", k, lc, l)
		}
		if got := LogDecodeCorrected[uint64](lc, 0, logMant32); got != v {
			t.Errorf("2^%d corrected round trip got %d", k, got)
		}
	}
	for k := uint(0); k < 8; k++ {
		v := uint8(1) << k
		l := LogEncode[Log8](v, 0, 4)
		if got := LogDecode[uint8](l, 0, 4); got != v {
			t.Errorf("u8 2^%d round trip got %d", k, got)
		}
	}
	for k := uint(0); k < 16; k++ {
		v := uint16(1) << k
		l := LogEncode[Log16](v, 0, 11)
		if got := LogDecode[uint16](l, 0, 11); got != v {
			t.Errorf("u16 2^%d round trip got %d", k, got)
		}
	}
}

func TestLogCodewords(t *testing.T) {
	// log2(1000) is about 9.9658; the linear mantissa stores
	// 8*2^25 + the normalized fraction.
	if got := LogEncode[Log32](uint64(1000), 0, logMant32); got != 333971456 {
		t.Errorf("encode 1000 expected 333971456 got %d", got)
	}
	if got := LogEncode[Log32](uint64(2000), 0, logMant32); got != 367525888 {
		t.Errorf("encode 2000 expected 367525888 got %d", got)
	}
	if got := LogEncodeCorrected[Log32](uint64(1000), 0, logMant32); got != 334492672 {
		t.Errorf("corrected encode 1000 expected 334492672 got %d", got)
	}
}

func TestLogRoundTripMillion(t *testing.T) {
	// One million needs only twenty bits, so the uncorrected round
	// trip through a 25 bit mantissa is exact.
	l := LogEncode[Log32](uint64(1000000), 0, logMant32)
	if got := LogDecode[uint64](l, 0, logMant32); got != 1000000 {
		t.Errorf("uncorrected round trip expected 1000000 got %d", got)
	}

	// The corrected pair leaves a small residual from the two
	// different correction constants.
	lc := LogEncodeCorrected[Log32](uint64(1000000), 0, logMant32)
	got := LogDecodeCorrected[uint64](lc, 0, logMant32)
	if got != 1004312 {
		t.Errorf("corrected round trip expected 1004312 got %d", got)
	}
}

// Adding codewords multiplies the values.
func TestLogMultiply(t *testing.T) {
	a := LogEncode[Log32](uint64(1000), 0, logMant32)
	b := LogEncode[Log32](uint64(2000), 0, logMant32)
	got := LogDecode[uint64](a+b, 0, logMant32)
	if got != 1998848 {
		t.Errorf("uncorrected product expected 1998848 got %d", got)
	}
	if got < 1800000 || got > 2220000 {
		t.Errorf("uncorrected product %d outside 11 percent band", got)
	}

	ac := LogEncodeCorrected[Log32](uint64(1000), 0, logMant32)
	bc := LogEncodeCorrected[Log32](uint64(2000), 0, logMant32)
	gotc := LogDecodeCorrected[uint64](ac+bc, 0, logMant32)
	if gotc != 2009088 {
		t.Errorf("corrected product expected 2009088 got %d", gotc)
	}
	if gotc < 1974000 || gotc > 2026000 {
		t.Errorf("corrected product %d outside 1.3 percent band", gotc)
	}
}

// Uncorrected multiplication stays within 11.2 percent of the true
// product across the full 32 bit operand range.
func TestLogMultiplyBound(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for range 4000 {
		a := uint64(rnd.Uint32())
		b := uint64(rnd.Uint32())
		if a == 0 {
			a = 1
		}
		if b == 0 {
			b = 1
		}
		la := LogEncode[Log32](a, 0, logMant32)
		lb := LogEncode[Log32](b, 0, logMant32)
		got := LogDecode[uint64](la+lb, 0, logMant32)
		want := a * b
		ratio := relErr(got, want)
		if ratio > 0.112 {
			t.Errorf("%d * %d decoded %d, error %f", a, b, got, ratio)
		}
	}
}

// Corrected multiplication stays within 1.4 percent.
func TestLogMultiplyBoundCorrected(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for range 4000 {
		a := uint64(rnd.Uint32())
		b := uint64(rnd.Uint32())
		if a == 0 {
			a = 1
		}
		if b == 0 {
			b = 1
		}
		la := LogEncodeCorrected[Log32](a, 0, logMant32)
		lb := LogEncodeCorrected[Log32](b, 0, logMant32)
		got := LogDecodeCorrected[uint64](la+lb, 0, logMant32)
		want := a * b
		ratio := relErr(got, want)
		if ratio > 0.014 {
			t.Errorf("%d * %d decoded %d, error %f", a, b, got, ratio)
		}
	}
}

// Subtracting codewords divides. Corrected pairs hold one percent on
// quotients large enough to swamp quantization.
func TestLogDivideBoundCorrected(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for range 4000 {
		b := uint64(rnd.Uint32()>>16) + 1
		q := uint64(rnd.Uint32()>>16) + 1000
		a := b * q
		la := LogEncodeCorrected[Log32](a, 0, logMant32)
		lb := LogEncodeCorrected[Log32](b, 0, logMant32)
		got := LogDecodeCorrected[uint64](la-lb, 0, logMant32)
		ratio := relErr(got, q)
		if ratio > 0.01 {
			t.Errorf("%d / %d decoded %d, error %f", a, b, got, ratio)
		}
	}

	a := LogEncodeCorrected[Log32](uint64(1000000), 0, logMant32)
	b := LogEncodeCorrected[Log32](uint64(1000), 0, logMant32)
	got := LogDecodeCorrected[uint64](a-b, 0, logMant32)
	if got < 991 || got > 1011 {
		t.Errorf("1000000 / 1000 decoded %d", got)
	}
}

func TestLogMonotonic(t *testing.T) {
	prev := LogEncode[Log16](uint16(1), 0, 11)
	for v := uint32(2); v <= 0xffff; v++ {
		l := LogEncode[Log16](uint16(v), 0, 11)
		if l < prev {
			t.Errorf("encode %d went backwards: %d after %d", v, l, prev)
			break
		}
		prev = l
	}
}

// Fractional input bits fold into the exponent, so fixed point
// values below one come back exactly when they are powers of two.
func TestLogFixedPointInput(t *testing.T) {
	// 0.5 in Q8.
	l := LogEncode[Log16](uint16(128), 8, 11)
	if l != -2048 {
		t.Errorf("encode 0.5 Q8 expected -2048 got %d", l)
	}
	if got := LogDecode[uint16](l, 8, 11); got != 128 {
		t.Errorf("decode 0.5 Q8 expected 128 got %d", got)
	}

	// Q8 epsilon survives a round trip at matching output precision.
	l = LogEncode[Log16](uint16(1), 8, 11)
	if got := LogDecode[uint16](l, 8, 11); got != 1 {
		t.Errorf("decode Q8 epsilon expected 1 got %d", got)
	}
}

// Decode clamps: exponents past the width saturate, exponents below
// the output precision underflow to zero.
func TestLogDecodeClamp(t *testing.T) {
	l := LogEncode[Log32](uint64(1)<<40, 0, logMant32)
	if got := LogDecode[uint8](l, 0, logMant32); got != 255 {
		t.Errorf("oversize decode expected 255 got %d", got)
	}
	if got := LogDecode[uint64](l, 0, logMant32); got != uint64(1)<<40 {
		t.Errorf("same width decode expected 2^40 got %d", got)
	}

	// log of a Q8 epsilon is well below zero; with no output
	// fractional bits it underflows.
	small := LogEncode[Log16](uint16(1), 8, 11)
	if got := LogDecode[uint16](small, 0, 11); got != 0 {
		t.Errorf("underflow decode expected 0 got %d", got)
	}
}

func relErr(got, want uint64) float64 {
	var diff uint64
	if got > want {
		diff = got - want
	} else {
		diff = want - got
	}
	return float64(diff) / float64(want)
}
