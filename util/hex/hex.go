/*
 * intfp - Format codewords for display.
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

package hex

import "strings"

var hexMap = "0123456789ABCDEF"

// Append v as width/4 hex digits.
func FormatHex(str *strings.Builder, v uint64, width uint) {
	shift := int(width) - 4
	for shift >= 0 {
		str.WriteByte(hexMap[(v>>shift)&0xf])
		shift -= 4
	}
}

// Append v as width binary digits.
func FormatBin(str *strings.Builder, v uint64, width uint) {
	for shift := int(width) - 1; shift >= 0; shift-- {
		str.WriteByte(hexMap[(v>>shift)&1])
	}
}

// Append the binary field breakdown of a codeword: sign bit when the
// format is signed, then the exponent field, a dot, and the mantissa
// field.
func FormatFields(str *strings.Builder, v uint64, width, mant uint, signed bool) {
	exp := width - mant
	if signed {
		str.WriteByte(hexMap[(v>>(width-1))&1])
		str.WriteByte(' ')
		exp--
	}
	FormatBin(str, (v>>mant)&(uint64(1)<<exp-1), exp)
	str.WriteByte('.')
	FormatBin(str, v&(uint64(1)<<mant-1), mant)
}

// Hex string of v at the given width.
func Hex(v uint64, width uint) string {
	var str strings.Builder
	FormatHex(&str, v, width)
	return str.String()
}

// Field breakdown string of a codeword.
func Fields(v uint64, width, mant uint, signed bool) string {
	var str strings.Builder
	FormatFields(&str, v, width, mant, signed)
	return str.String()
}
