/*
 * intfp - Profile configuration test cases.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intfp.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultProfile(t *testing.T) {
	p := Default()
	assert.Equal(t, uint(64), p.Source)
	assert.Equal(t, uint(32), p.Width)
	assert.True(t, p.Corrected)
	assert.Equal(t, uint(25), p.LogMant())
	assert.Equal(t, uint(26), p.PulMant())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[profiles.dense]
source = 64
width = 16
corrected = false

[profiles.audio]
source = 32
width = 32
mantissa = 20
fract = 8
corrected = true
`)
	profiles, err := Load(path)
	require.NoError(t, err)

	assert.Contains(t, profiles, "default")

	dense := profiles["dense"]
	assert.Equal(t, uint(16), dense.Width)
	assert.Equal(t, uint(9), dense.LogMant())
	assert.Equal(t, uint(10), dense.PulMant())

	audio := profiles["audio"]
	assert.Equal(t, uint(20), audio.LogMant())
	assert.Equal(t, uint(8), audio.Fract)
}

func TestLoadBadWidth(t *testing.T) {
	path := writeConfig(t, `
[profiles.broken]
source = 64
width = 24
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestLoadBadMantissa(t *testing.T) {
	path := writeConfig(t, `
[profiles.tight]
source = 64
width = 16
mantissa = 14
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mantissa")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
