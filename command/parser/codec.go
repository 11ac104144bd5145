/*
 * intfp - Width dispatch for the demo commands.
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

package parser

import (
	"errors"
	"fmt"

	"github.com/rcornwell/intfp/config/profile"
	"github.com/rcornwell/intfp/intfp"
)

// The generic codecs are instantiated per width, so the demo layer
// funnels every profile through a small switch. Values travel as 64
// bit words; the exponent arithmetic only depends on the profile
// widths through clamping, which the switch restores.

// Check a linear value fits the profile source width.
func checkSource(p profile.Profile, v uint64) error {
	if p.Source < 64 && v >= uint64(1)<<p.Source {
		return fmt.Errorf("value %d does not fit %d bits", v, p.Source)
	}
	return nil
}

// Check a codeword fits the profile codeword width.
func checkCodeword(p profile.Profile, cw int64) error {
	if p.Width == 64 {
		return nil
	}
	min := int64(-1) << (p.Width - 1)
	max := -min - 1
	if cw < min || cw > max {
		return fmt.Errorf("codeword %d does not fit %d bits", cw, p.Width)
	}
	return nil
}

// Encode a linear value into a log codeword at the profile width.
func logEncode(p profile.Profile, v uint64) (int64, error) {
	if err := checkSource(p, v); err != nil {
		return 0, err
	}
	mant := p.LogMant()
	switch p.Width {
	case 8:
		if p.Corrected {
			return int64(intfp.LogEncodeCorrected[intfp.Log8](v, p.Fract, mant)), nil
		}
		return int64(intfp.LogEncode[intfp.Log8](v, p.Fract, mant)), nil
	case 16:
		if p.Corrected {
			return int64(intfp.LogEncodeCorrected[intfp.Log16](v, p.Fract, mant)), nil
		}
		return int64(intfp.LogEncode[intfp.Log16](v, p.Fract, mant)), nil
	case 32:
		if p.Corrected {
			return int64(intfp.LogEncodeCorrected[intfp.Log32](v, p.Fract, mant)), nil
		}
		return int64(intfp.LogEncode[intfp.Log32](v, p.Fract, mant)), nil
	case 64:
		if p.Corrected {
			return int64(intfp.LogEncodeCorrected[intfp.Log64](v, p.Fract, mant)), nil
		}
		return int64(intfp.LogEncode[intfp.Log64](v, p.Fract, mant)), nil
	}
	return 0, errors.New("bad codeword width")
}

// Widen a codeword to 64 bits, remapping the zero sentinel, so one
// decode switch serves every width.
func widenLog(p profile.Profile, cw int64) (intfp.Log64, error) {
	if err := checkCodeword(p, cw); err != nil {
		return 0, err
	}
	mant := p.LogMant()
	switch p.Width {
	case 8:
		return intfp.LogToLog[intfp.Log64](intfp.Log8(cw), mant, mant), nil
	case 16:
		return intfp.LogToLog[intfp.Log64](intfp.Log16(cw), mant, mant), nil
	case 32:
		return intfp.LogToLog[intfp.Log64](intfp.Log32(cw), mant, mant), nil
	case 64:
		return intfp.Log64(cw), nil
	}
	return 0, errors.New("bad codeword width")
}

// Decode a log codeword back to a linear value at the profile source
// width.
func logDecode(p profile.Profile, cw int64) (uint64, error) {
	wide, err := widenLog(p, cw)
	if err != nil {
		return 0, err
	}
	mant := p.LogMant()
	switch p.Source {
	case 8:
		if p.Corrected {
			return uint64(intfp.LogDecodeCorrected[uint8](wide, p.Fract, mant)), nil
		}
		return uint64(intfp.LogDecode[uint8](wide, p.Fract, mant)), nil
	case 16:
		if p.Corrected {
			return uint64(intfp.LogDecodeCorrected[uint16](wide, p.Fract, mant)), nil
		}
		return uint64(intfp.LogDecode[uint16](wide, p.Fract, mant)), nil
	case 32:
		if p.Corrected {
			return uint64(intfp.LogDecodeCorrected[uint32](wide, p.Fract, mant)), nil
		}
		return uint64(intfp.LogDecode[uint32](wide, p.Fract, mant)), nil
	case 64:
		if p.Corrected {
			return uint64(intfp.LogDecodeCorrected[uint64](wide, p.Fract, mant)), nil
		}
		return uint64(intfp.LogDecode[uint64](wide, p.Fract, mant)), nil
	}
	return 0, errors.New("bad source width")
}

// Encode a linear value into a PUL codeword at the profile width.
func pulEncode(p profile.Profile, v uint64) (uint64, error) {
	if err := checkSource(p, v); err != nil {
		return 0, err
	}
	mant := p.PulMant()
	switch p.Width {
	case 8:
		return uint64(intfp.PulEncode[intfp.Pul8](v, mant)), nil
	case 16:
		return uint64(intfp.PulEncode[intfp.Pul16](v, mant)), nil
	case 32:
		return uint64(intfp.PulEncode[intfp.Pul32](v, mant)), nil
	case 64:
		return uint64(intfp.PulEncode[intfp.Pul64](v, mant)), nil
	}
	return 0, errors.New("bad codeword width")
}

// Decode a PUL codeword at the profile source width.
func pulDecode(p profile.Profile, cw uint64) (uint64, error) {
	if p.Width < 64 && cw >= uint64(1)<<p.Width {
		return 0, fmt.Errorf("codeword %d does not fit %d bits", cw, p.Width)
	}
	mant := p.PulMant()
	wide := intfp.Pul64(cw)
	switch p.Source {
	case 8:
		return uint64(intfp.PulDecode[uint8](wide, mant)), nil
	case 16:
		return uint64(intfp.PulDecode[uint16](wide, mant)), nil
	case 32:
		return uint64(intfp.PulDecode[uint32](wide, mant)), nil
	case 64:
		return uint64(intfp.PulDecode[uint64](wide, mant)), nil
	}
	return 0, errors.New("bad source width")
}

// Add or subtract two codewords at the profile width, wrapping the
// way the narrow arithmetic would.
func logCombine(p profile.Profile, a, b int64, sub bool) (int64, error) {
	if err := checkCodeword(p, a); err != nil {
		return 0, err
	}
	if err := checkCodeword(p, b); err != nil {
		return 0, err
	}
	if sub {
		b = -b
	}
	switch p.Width {
	case 8:
		return int64(int8(a) + int8(b)), nil
	case 16:
		return int64(int16(a) + int16(b)), nil
	case 32:
		return int64(int32(a) + int32(b)), nil
	case 64:
		return a + b, nil
	}
	return 0, errors.New("bad codeword width")
}

// Rescale a codeword between log2 and a radix. Only widths up to 32
// bits are defined.
func rescale(p profile.Profile, cw int64, radix intfp.Radix, from bool) (int64, error) {
	if err := checkCodeword(p, cw); err != nil {
		return 0, err
	}
	switch p.Width {
	case 8:
		if from {
			return int64(intfp.RescaleFrom(intfp.Log8(cw), radix)), nil
		}
		return int64(intfp.RescaleTo(intfp.Log8(cw), radix)), nil
	case 16:
		if from {
			return int64(intfp.RescaleFrom(intfp.Log16(cw), radix)), nil
		}
		return int64(intfp.RescaleTo(intfp.Log16(cw), radix)), nil
	case 32:
		if from {
			return int64(intfp.RescaleFrom(intfp.Log32(cw), radix)), nil
		}
		return int64(intfp.RescaleTo(intfp.Log32(cw), radix)), nil
	}
	return 0, errors.New("rescale needs a codeword width of 32 bits or less")
}

// Smooth a pair of samples at the profile source width.
func ewma(p profile.Profile, newv, oldv, damper int64) (int64, error) {
	switch p.Source {
	case 8:
		return int64(intfp.EwmaDiv(int8(newv), int8(oldv), intfp.SignedMin[int8](), int8(damper))), nil
	case 16:
		return int64(intfp.EwmaDiv(int16(newv), int16(oldv), intfp.SignedMin[int16](), int16(damper))), nil
	case 32:
		return int64(intfp.EwmaDiv(int32(newv), int32(oldv), intfp.SignedMin[int32](), int32(damper))), nil
	case 64:
		return intfp.EwmaDiv(newv, oldv, intfp.SignedMin[int64](), damper), nil
	}
	return 0, errors.New("bad source width")
}
