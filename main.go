/*
 * intfp - Main process.
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

package main

import (
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/intfp/command/parser"
	"github.com/rcornwell/intfp/command/reader"
	"github.com/rcornwell/intfp/config/profile"
	"github.com/rcornwell/intfp/selftest"
	"github.com/rcornwell/intfp/util/logger"
)

func main() {
	optBasic := getopt.BoolLong("basic", 'b', "Basic conversion tests")
	optCompress := getopt.BoolLong("compress", 'c', "Compression tests")
	optEwma := getopt.BoolLong("ewma", 'e', "Moving average tests")
	optLogMath := getopt.BoolLong("logmath", 'm', "Log arithmetic tests")
	optPrecision := getopt.BoolLong("precision", 'p', "Precision tests")
	optRadix := getopt.BoolLong("radix", 'r', "Radix rescale tests")
	optVerbose := getopt.BoolLong("verbose", 'v', "Report every check")
	optDemo := getopt.BoolLong("interactive", 'i', "Interactive demo")
	optConfig := getopt.StringLong("config", 'f', "", "Profile configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Debug output")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		var err error
		file, err = os.Create(*optLogFile)
		if err != nil {
			slog.Error("unable to create log file " + *optLogFile)
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	log := slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, *optDebug))
	slog.SetDefault(log)

	profiles := map[string]profile.Profile{"default": profile.Default()}
	if *optConfig != "" {
		var err error
		profiles, err = profile.Load(*optConfig)
		if err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
	}

	if *optDemo {
		reader.ConsoleReader(parser.NewSession(profiles))
		os.Exit(0)
	}

	// Collect the selected test groups; none selected runs the full
	// suite.
	groups := []string{}
	selected := map[string]*bool{
		"basic":     optBasic,
		"compress":  optCompress,
		"ewma":      optEwma,
		"logmath":   optLogMath,
		"precision": optPrecision,
		"radix":     optRadix,
	}
	for _, name := range []string{"basic", "compress", "ewma", "logmath", "precision", "radix"} {
		if *selected[name] {
			groups = append(groups, name)
		}
	}

	if !selftest.Run(groups, *optVerbose) {
		os.Exit(1)
	}
	os.Exit(0)
}
