/*
 * intfp - Cross format transcoders.
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

// A codeword is a log value in fixed point with the mantissa width as
// its fractional bit count, so moving between widths and mantissa
// budgets is a single shift by the difference. Zero sentinels are
// remapped before the shift and never realigned.

// Realign a PUL codeword to a new width and mantissa budget.
func PulToPul[Out Uint, In Uint](p In, mantIn, mantOut uint) Out {
	if p == PulZero[In]() {
		return PulZero[Out]()
	}
	if mantOut >= mantIn {
		return Out(uint64(p) << (mantOut - mantIn))
	}
	return Out(uint64(p) >> (mantIn - mantOut))
}

// Realign a signed log codeword to a new width and mantissa budget.
// Narrowing the mantissa shifts arithmetically to keep the sign.
func LogToLog[Out Int, In Int](l In, mantIn, mantOut uint) Out {
	if l == LogZero[In]() {
		return LogZero[Out]()
	}
	if mantOut >= mantIn {
		return Out(int64(l) << (mantOut - mantIn))
	}
	return Out(int64(l) >> (mantIn - mantOut))
}

// Convert a PUL codeword to a signed log codeword. PUL values are
// never negative, so this is the same realignment with the zero
// sentinel remapped.
func PulToLog[Out Int, In Uint](p In, mantIn, mantOut uint) Out {
	if p == PulZero[In]() {
		return LogZero[Out]()
	}
	if mantOut >= mantIn {
		return Out(uint64(p) << (mantOut - mantIn))
	}
	return Out(uint64(p) >> (mantIn - mantOut))
}

// Convert a signed log codeword to a PUL codeword. Negative log
// values are below one and PUL cannot hold them, so they collapse to
// the PUL zero sentinel.
func LogToPul[Out Uint, In Int](l In, mantIn, mantOut uint) Out {
	if l == LogZero[In]() || l < 0 {
		return PulZero[Out]()
	}
	if mantOut >= mantIn {
		return Out(uint64(l) << (mantOut - mantIn))
	}
	return Out(uint64(l) >> (mantIn - mantOut))
}
