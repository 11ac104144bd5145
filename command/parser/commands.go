/*
 * intfp - Demo commands.
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
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/rcornwell/intfp/intfp"
	"github.com/rcornwell/intfp/util/hex"
)

var cmdList = []cmd{
	{name: "encode", min: 2, process: encode},
	{name: "decode", min: 2, process: decode},
	{name: "pack", min: 2, process: pack},
	{name: "unpack", min: 2, process: unpack},
	{name: "mul", min: 2, process: mul},
	{name: "div", min: 2, process: div},
	{name: "avg", min: 2, process: avg},
	{name: "scale", min: 2, process: scale, complete: scaleComplete},
	{name: "set", min: 3, process: set, complete: setComplete},
	{name: "show", min: 2, process: show},
	{name: "quit", min: 1, process: quit},
}

// Print a log codeword with its field breakdown.
func printLog(sess *Session, cw int64) {
	p := sess.Current
	bits := uint64(cw) & (^uint64(0) >> (64 - p.Width))
	fmt.Printf("log%d %d  0x%s  %s\n", p.Width, cw,
		hex.Hex(bits, p.Width), hex.Fields(bits, p.Width, p.LogMant(), true))
}

// Encode a linear value into the current log format.
func encode(line *cmdLine, sess *Session) (bool, error) {
	slog.Debug("Command Encode")
	v, err := line.getUnsigned()
	if err != nil {
		return false, err
	}
	cw, err := logEncode(sess.Current, v)
	if err != nil {
		return false, err
	}
	printLog(sess, cw)
	return false, nil
}

// Decode a log codeword back to a linear value.
func decode(line *cmdLine, sess *Session) (bool, error) {
	slog.Debug("Command Decode")
	cw, err := line.getSigned()
	if err != nil {
		return false, err
	}
	v, err := logDecode(sess.Current, cw)
	if err != nil {
		return false, err
	}
	fmt.Printf("linear %d  0x%s\n", v, hex.Hex(v, sess.Current.Source))
	return false, nil
}

// Compress a linear value into the current PUL format.
func pack(line *cmdLine, sess *Session) (bool, error) {
	slog.Debug("Command Pack")
	v, err := line.getUnsigned()
	if err != nil {
		return false, err
	}
	p := sess.Current
	cw, err := pulEncode(p, v)
	if err != nil {
		return false, err
	}
	fmt.Printf("pul%d %d  0x%s  %s\n", p.Width, cw,
		hex.Hex(cw, p.Width), hex.Fields(cw, p.Width, p.PulMant(), false))
	return false, nil
}

// Expand a PUL codeword.
func unpack(line *cmdLine, sess *Session) (bool, error) {
	slog.Debug("Command Unpack")
	cw, err := line.getUnsigned()
	if err != nil {
		return false, err
	}
	v, err := pulDecode(sess.Current, cw)
	if err != nil {
		return false, err
	}
	fmt.Printf("linear %d  0x%s\n", v, hex.Hex(v, sess.Current.Source))
	return false, nil
}

// Multiply two linear values by adding their codewords.
func mul(line *cmdLine, sess *Session) (bool, error) {
	slog.Debug("Command Mul")
	return combine(line, sess, false)
}

// Divide two linear values by subtracting their codewords.
func div(line *cmdLine, sess *Session) (bool, error) {
	slog.Debug("Command Div")
	return combine(line, sess, true)
}

func combine(line *cmdLine, sess *Session, sub bool) (bool, error) {
	a, err := line.getUnsigned()
	if err != nil {
		return false, err
	}
	b, err := line.getUnsigned()
	if err != nil {
		return false, err
	}

	ca, err := logEncode(sess.Current, a)
	if err != nil {
		return false, err
	}
	cb, err := logEncode(sess.Current, b)
	if err != nil {
		return false, err
	}
	cw, err := logCombine(sess.Current, ca, cb, sub)
	if err != nil {
		return false, err
	}
	printLog(sess, cw)

	v, err := logDecode(sess.Current, cw)
	if err != nil {
		return false, err
	}
	fmt.Printf("linear %d  0x%s\n", v, hex.Hex(v, sess.Current.Source))
	return false, nil
}

// Smooth two samples with the division damper.
func avg(line *cmdLine, sess *Session) (bool, error) {
	slog.Debug("Command Avg")
	newv, err := line.getSigned()
	if err != nil {
		return false, err
	}
	oldv, err := line.getSigned()
	if err != nil {
		return false, err
	}
	damper, err := line.getSigned()
	if err != nil {
		return false, err
	}
	v, err := ewma(sess.Current, newv, oldv, damper)
	if err != nil {
		return false, err
	}
	fmt.Printf("average %d\n", v)
	return false, nil
}

// Rescale a codeword between log2 and another radix.
func scale(line *cmdLine, sess *Session) (bool, error) {
	slog.Debug("Command Scale")
	var radix intfp.Radix
	switch line.getWord() {
	case "db":
		radix = intfp.DBPower
	case "ratio":
		radix = intfp.Ratio125
	default:
		return false, errors.New("radix must be db or ratio")
	}

	var from bool
	switch line.getWord() {
	case "to":
		from = false
	case "from":
		from = true
	default:
		return false, errors.New("direction must be to or from")
	}

	cw, err := line.getSigned()
	if err != nil {
		return false, err
	}
	t, err := rescale(sess.Current, cw, radix, from)
	if err != nil {
		return false, err
	}
	fmt.Printf("scaled %d\n", t)
	return false, nil
}

func scaleComplete(line *cmdLine) []string {
	word := line.getWord()
	options := []string{"db", "ratio"}
	matches := []string{}
	for _, o := range options {
		if strings.HasPrefix(o, word) {
			matches = append(matches, o)
		}
	}
	return matches
}

// Change one profile option, or switch profiles.
func set(line *cmdLine, sess *Session) (bool, error) {
	slog.Debug("Command Set")
	word := line.getWord()
	if word == "" {
		return false, errors.New("set needs an option")
	}

	name, value, hasValue := strings.Cut(word, "=")
	switch name {
	case "profile":
		if !hasValue {
			return false, errors.New("set profile needs a name")
		}
		p, ok := sess.Profiles[value]
		if !ok {
			return false, errors.New("no such profile: " + value)
		}
		sess.Name = value
		sess.Current = p
		return false, nil

	case "corrected":
		sess.Current.Corrected = true
		return false, nil

	case "uncorrected":
		sess.Current.Corrected = false
		return false, nil

	case "source", "width", "mantissa", "fract":
		if !hasValue {
			return false, errors.New("set " + name + " needs a value")
		}
		n, err := strconv.ParseUint(value, 0, 8)
		if err != nil {
			return false, errors.New("bad value: " + value)
		}
		p := sess.Current
		switch name {
		case "source":
			p.Source = uint(n)
		case "width":
			p.Width = uint(n)
		case "mantissa":
			p.Mantissa = uint(n)
		case "fract":
			p.Fract = uint(n)
		}
		if err := p.Check(); err != nil {
			return false, err
		}
		sess.Current = p
		return false, nil
	}
	return false, errors.New("unknown option: " + name)
}

func setComplete(line *cmdLine) []string {
	word := line.getWord()
	options := []string{"corrected", "fract=", "mantissa=", "profile=", "source=", "uncorrected", "width="}
	matches := []string{}
	for _, o := range options {
		if strings.HasPrefix(o, word) {
			matches = append(matches, o)
		}
	}
	return matches
}

// Show the active profile and the available ones.
func show(_ *cmdLine, sess *Session) (bool, error) {
	slog.Debug("Command Show")
	p := sess.Current
	mode := "uncorrected"
	if p.Corrected {
		mode = "corrected"
	}
	fmt.Printf("profile %s: u%d values, log%d/pul%d codewords, %s\n",
		sess.Name, p.Source, p.Width, p.Width, mode)
	fmt.Printf("  log mantissa %d bits, pul mantissa %d bits, fract %d bits\n",
		p.LogMant(), p.PulMant(), p.Fract)

	names := make([]string, 0, len(sess.Profiles))
	for name := range sess.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("profiles: %s\n", strings.Join(names, " "))
	return false, nil
}

// Leave the demo.
func quit(_ *cmdLine, _ *Session) (bool, error) {
	return true, nil
}
