/*
 * intfp - Self test runner.
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

package selftest

import (
	"fmt"
	"log/slog"
)

// One test group run state.
type report struct {
	group   string
	pass    int
	fail    int
	verbose bool
}

// Record one check. Failures always print, passes only when verbose.
func (r *report) check(ok bool, format string, args ...any) {
	if ok {
		r.pass++
		if r.verbose {
			fmt.Printf("  ok   %s\n", fmt.Sprintf(format, args...))
		}
		return
	}
	r.fail++
	fmt.Printf("  FAIL %s\n", fmt.Sprintf(format, args...))
}

// Verbose only commentary line.
func (r *report) logf(format string, args ...any) {
	if r.verbose {
		fmt.Printf("       %s\n", fmt.Sprintf(format, args...))
	}
}

type group struct {
	name string
	desc string
	run  func(*report)
}

var groups = []group{
	{name: "basic", desc: "fixed point and round trips", run: runBasic},
	{name: "compress", desc: "PUL storage codec", run: runCompress},
	{name: "ewma", desc: "moving average dampers", run: runEwma},
	{name: "logmath", desc: "log domain multiply and divide", run: runLogMath},
	{name: "precision", desc: "corrected codec error bounds", run: runPrecision},
	{name: "radix", desc: "radix rescale", run: runRadix},
}

// Run the named test groups, or every group when none are named.
// Returns true when every check passed.
func Run(names []string, verbose bool) bool {
	selected := groups
	if len(names) != 0 {
		selected = nil
		for _, name := range names {
			g, ok := find(name)
			if !ok {
				slog.Error("unknown test group: " + name)
				return false
			}
			selected = append(selected, g)
		}
	}

	pass, fail := 0, 0
	for _, g := range selected {
		r := report{group: g.name, verbose: verbose}
		fmt.Printf("%s: %s\n", g.name, g.desc)
		g.run(&r)
		fmt.Printf("%s: %d passed, %d failed\n", g.name, r.pass, r.fail)
		pass += r.pass
		fail += r.fail
	}
	fmt.Printf("total: %d passed, %d failed\n", pass, fail)
	return fail == 0
}

func find(name string) (group, bool) {
	for _, g := range groups {
		if g.name == name {
			return g, true
		}
	}
	return group{}, false
}
