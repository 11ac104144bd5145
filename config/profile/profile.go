/*
 * intfp - Codec profile configuration.
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

package profile

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/rcornwell/intfp/intfp"
)

// One codec profile. Source is the linear integer width feeding the
// codecs, Width the codeword width. A zero Mantissa selects the max
// precision default for the pair.
type Profile struct {
	Source    uint `toml:"source"`
	Width     uint `toml:"width"`
	Mantissa  uint `toml:"mantissa"`
	Fract     uint `toml:"fract"`
	Corrected bool `toml:"corrected"`
}

type configFile struct {
	Profiles map[string]Profile `toml:"profiles"`
}

// The profile used before any configuration is loaded: 64 bit
// integers in 32 bit codewords at full mantissa precision.
func Default() Profile {
	return Profile{Source: 64, Width: 32, Corrected: true}
}

// Mantissa bits for the signed log codec, falling back to the max
// precision default when the profile leaves it zero.
func (p Profile) LogMant() uint {
	if p.Mantissa != 0 {
		return p.Mantissa
	}
	return intfp.LogMaxMant(p.Source, p.Width)
}

// Mantissa bits for the PUL codec.
func (p Profile) PulMant() uint {
	if p.Mantissa != 0 {
		return p.Mantissa
	}
	return intfp.PulMaxMant(p.Source, p.Width)
}

// Check the profile is internally consistent.
func (p Profile) Check() error {
	return p.validate("current")
}

func validWidth(w uint) bool {
	return w == 8 || w == 16 || w == 32 || w == 64
}

func (p Profile) validate(name string) error {
	if !validWidth(p.Source) {
		return fmt.Errorf("profile %s: bad source width %d", name, p.Source)
	}
	if !validWidth(p.Width) {
		return fmt.Errorf("profile %s: bad codeword width %d", name, p.Width)
	}
	if p.Mantissa != 0 && p.Mantissa > intfp.LogMaxMant(p.Source, p.Width) {
		return fmt.Errorf("profile %s: mantissa %d leaves no room for the exponent",
			name, p.Mantissa)
	}
	if p.Fract >= p.Source {
		return fmt.Errorf("profile %s: fract %d exceeds source width", name, p.Fract)
	}
	return nil
}

// Load named profiles from a TOML file. The returned map always
// contains a default entry.
func Load(path string) (map[string]Profile, error) {
	var file configFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("profile config: %w", err)
	}

	profiles := map[string]Profile{"default": Default()}
	for name, p := range file.Profiles {
		if err := p.validate(name); err != nil {
			return nil, err
		}
		profiles[name] = p
	}
	return profiles, nil
}
