/*
 * intfp - Bit primitives and width constants.
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
	"math/bits"
	"unsafe"
)

// Unsigned machine words the codecs operate on.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed machine words the codecs operate on.
type Int interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Any machine word, signed or unsigned.
type Word interface {
	Uint | Int
}

// Width in bits of the machine word type T.
func wordBits[T Word]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// Count leading zeros of v at the width of T. v must not be zero.
func Clz[T Uint](v T) uint {
	return uint(bits.LeadingZeros64(uint64(v))) - (64 - wordBits[T]())
}

// Find last set bit, one indexed. Zero when v is zero.
func Fls[T Uint](v T) uint {
	if v == 0 {
		return 0
	}
	return wordBits[T]() - Clz(v)
}

// Floor of log2 of v. v must not be zero.
func Log2Floor[T Uint](v T) uint {
	return wordBits[T]() - 1 - Clz(v)
}

// Mask with the low h+1 bits set.
func Bitmask[T Uint](h uint) T {
	return T(1)<<(h+1) - 1
}

// Smallest nonzero unsigned value.
func UnsignedMin[T Uint]() T {
	return 1
}

// Largest unsigned value of width T.
func UnsignedMax[T Uint]() T {
	return ^T(0)
}

// Most negative signed value of width T.
func SignedMin[T Int]() T {
	return T(-1) << (wordBits[T]() - 1)
}

// Most positive signed value of width T.
func SignedMax[T Int]() T {
	return ^SignedMin[T]()
}

// Slide the normalized value, top bit at position h-1, into a
// mantissa field of mant bits. The mantissa may be wider than the
// normalized value when a narrow integer feeds a wide codeword.
func alignMant(norm uint64, h, mant uint) uint64 {
	if mant > h-1 {
		return norm << (mant - (h - 1))
	}
	return norm >> (h - 1 - mant)
}

// Inverse of alignMant: place a mantissa field below bit h-1 of the
// normalized value being rebuilt.
func alignNorm(m uint64, h, mant uint) uint64 {
	if mant > h-1 {
		return m >> (mant - (h - 1))
	}
	return m << (h - 1 - mant)
}

// Widest mantissa a PUL codeword of dst bits can carry while still
// holding every exponent an src bit integer can produce.
func PulMaxMant(src, dst uint) uint {
	return dst - uint(bits.Len(uint(src-1)))
}

// Widest mantissa for a signed log codeword, one bit narrower to make
// room for the sign.
func LogMaxMant(src, dst uint) uint {
	return dst - 1 - uint(bits.Len(uint(src-1)))
}
