/*
 * c4gen - Connect Four retrograde-analysis generator
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/c4gen/internal/config"
	"github.com/frankkopp/c4gen/internal/engine"
	"github.com/frankkopp/c4gen/internal/logging"
	"github.com/frankkopp/c4gen/internal/position"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	outFile := flag.String("out", "", "path to write the critical-position database to\n(overrides config file and default)")
	minPly := flag.Int("minply", 0, "lowest ply to classify\n(0 uses config file or default)")
	maxPly := flag.Int("maxply", 0, "highest ply to classify\n(0 uses config file or default)")
	ttExp := flag.Uint("ttsize", 0, "transposition table size as a power of two\n(0 uses config file or default)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof) of the run")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := logging.GetLog()

	if *outFile != "" {
		config.Settings.Engine.OutputFile = *outFile
	}
	if *minPly != 0 {
		config.Settings.Engine.MinPly = *minPly
	}
	if *maxPly != 0 {
		config.Settings.Engine.MaxPly = *maxPly
	}
	if *ttExp != 0 {
		config.Settings.Engine.TTSizeExponent = *ttExp
	}

	printBanner()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	e := engine.New(printProgress)
	report, err := e.Run()
	if err != nil {
		log.Errorf("generation failed: %v", err)
		os.Exit(1)
	}

	printSummary(report)
}

func printBanner() {
	out.Println("================================================================")
	out.Println("            CONNECT 4 CRITICAL POSITION DATABASE GENERATOR")
	out.Println("================================================================")
	out.Printf("  Analyzing positions from ply %d to %d\n",
		config.Settings.Engine.MinPly, config.Settings.Engine.MaxPly)
	out.Printf("  Transposition table: 2^%d entries\n", config.Settings.Engine.TTSizeExponent)
	out.Println("================================================================")
}

var lastProgress = -1

func printProgress(col int) {
	progress := (col * 100) / position.Width
	if progress == lastProgress {
		return
	}
	lastProgress = progress
	fmt.Printf("\rProgress: %d%%    ", progress)
}

func printSummary(r engine.Report) {
	out.Println()
	out.Println()
	out.Println("================================================================")
	out.Println("                            SUMMARY")
	out.Println("================================================================")
	out.Printf("  Positions analyzed:  %d\n", r.Analyzed)
	out.Printf("  Critical found:      %d\n", r.Critical)
	out.Printf("  Skipped (trivial):   %d\n", r.Skipped)
	out.Printf("  Total time:          %s\n", r.Elapsed.Round(time.Second))
	out.Println("================================================================")
	out.Println()

	if !r.DBWritten {
		out.Println("No critical positions found - no database written.")
		return
	}
	out.Printf("Saved %d critical positions to %s\n", r.Critical, r.DBPath)
	out.Printf("Hash table: %d entries, %d collisions\n", r.TableSize, r.Collisions)
	out.Printf("File size: %.2f MB\n", float64(r.DBSizeByte)/(1024.0*1024.0))
}
