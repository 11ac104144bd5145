/*
 * intfp - Demo command parser.
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
	"strconv"
	"strings"
	"unicode"

	"github.com/rcornwell/intfp/config/profile"
)

// Demo session state: the loaded profiles and the one in use.
type Session struct {
	Profiles map[string]profile.Profile
	Name     string
	Current  profile.Profile
}

// Create a session over a profile set. A nil map starts with just
// the built in default.
func NewSession(profiles map[string]profile.Profile) *Session {
	if profiles == nil {
		profiles = map[string]profile.Profile{"default": profile.Default()}
	}
	return &Session{
		Profiles: profiles,
		Name:     "default",
		Current:  profiles["default"],
	}
}

type cmd struct {
	name     string // Command name.
	min      int    // Minimum match size.
	process  func(*cmdLine, *Session) (bool, error)
	complete func(*cmdLine) []string
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

// Execute the command line given. Returns true when the session
// should end.
func ProcessCommand(commandLine string, sess *Session) (bool, error) {
	line := cmdLine{line: commandLine}
	command := line.getWord()
	if command == "" {
		return false, nil
	}

	match := matchList(command)
	if len(match) == 0 {
		return false, errors.New("command not found: " + command)
	}
	if len(match) > 1 {
		return false, errors.New("unique command not found: " + command)
	}
	return match[0].process(&line, sess)
}

// Called to complete a command line during line editing.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	if !line.isEOL() && line.line[line.pos] == ' ' {
		line.skipSpace()
		match := matchList(name)
		if len(match) != 1 || match[0].complete == nil {
			return nil
		}
		rest := match[0].complete(&line)
		for i, m := range rest {
			rest[i] = match[0].name + " " + m
		}
		return rest
	}

	matches := []string{}
	for _, m := range matchList(name) {
		matches = append(matches, m.name)
	}
	return matches
}

// Check if command matches at least to minimum length.
func matchCommand(match cmd, command string) bool {
	if len(command) < match.min || len(command) > len(match.name) {
		return false
	}
	return strings.HasPrefix(match.name, command)
}

// Collect all commands the given prefix could mean.
func matchList(command string) []cmd {
	command = strings.ToLower(command)
	matches := []cmd{}
	for _, m := range cmdList {
		if matchCommand(m, command) {
			matches = append(matches, m)
		}
	}
	return matches
}

// Get next space delimited word, empty string at end of line.
func (line *cmdLine) getWord() string {
	line.skipSpace()
	start := line.pos
	for !line.isEOL() && !unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
	return line.line[start:line.pos]
}

// Get an unsigned number, decimal or 0x hex.
func (line *cmdLine) getUnsigned() (uint64, error) {
	word := line.getWord()
	if word == "" {
		return 0, errors.New("missing number")
	}
	v, err := strconv.ParseUint(word, 0, 64)
	if err != nil {
		return 0, errors.New("bad number: " + word)
	}
	return v, nil
}

// Get a signed number, decimal or 0x hex.
func (line *cmdLine) getSigned() (int64, error) {
	word := line.getWord()
	if word == "" {
		return 0, errors.New("missing number")
	}
	v, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		return 0, errors.New("bad number: " + word)
	}
	return v, nil
}

func (line *cmdLine) skipSpace() {
	for !line.isEOL() && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

func (line *cmdLine) isEOL() bool {
	return line.pos >= len(line.line)
}
