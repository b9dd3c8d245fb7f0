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

// Package engine wires the solver, classifier, generator and serialiser
// together behind a single owned value, instead of the module-level
// globals the reference implementation uses for the transposition table
// and critical buffer.
package engine

import (
	"time"

	"github.com/frankkopp/c4gen/internal/classifier"
	"github.com/frankkopp/c4gen/internal/config"
	"github.com/frankkopp/c4gen/internal/dbwriter"
	"github.com/frankkopp/c4gen/internal/generator"
	"github.com/frankkopp/c4gen/internal/solver"
	"github.com/frankkopp/c4gen/internal/transpositiontable"
)

// Report summarises one run, for the final printed summary.
type Report struct {
	Analyzed   int64
	Critical   int64
	Skipped    int64
	Elapsed    time.Duration
	DBPath     string
	DBWritten  bool
	DBSizeByte int64
	Collisions int
	TableSize  int
}

// Engine owns everything a single generation run needs: the
// transposition table, the critical-entry buffer (via the generator) and
// the ply window and output path it was configured with. None of this
// is process-wide; a caller may construct several Engines, each with its
// own table, without interference.
type Engine struct {
	tt         *transpositiontable.TtTable
	minPly     int
	maxPly     int
	outputFile string
	onProgress generator.ProgressFunc
}

// New builds an Engine from the current config.Settings.Engine. Call
// config.Setup() first.
func New(onProgress generator.ProgressFunc) *Engine {
	return &Engine{
		tt:         transpositiontable.New(config.Settings.Engine.TTSizeExponent),
		minPly:     config.Settings.Engine.MinPly,
		maxPly:     config.Settings.Engine.MaxPly,
		outputFile: config.Settings.Engine.OutputFile,
		onProgress: onProgress,
	}
}

// Run performs the full generate-classify-serialise pipeline and returns
// a report of what it found.
func (e *Engine) Run() (Report, error) {
	start := time.Now()

	s := solver.New(e.tt)
	c := classifier.New(s, e.minPly, e.maxPly)
	g := generator.New(c, e.minPly, e.maxPly, config.Settings.Engine.CriticalBufferInitialCapacity, e.onProgress)

	entries, stats := g.Run()

	report := Report{
		Analyzed: stats.Analyzed,
		Critical: stats.Critical,
		Skipped:  stats.Skipped,
		Elapsed:  time.Since(start),
		DBPath:   e.outputFile,
	}

	tbl, written, err := dbwriter.WriteFile(e.outputFile, entries, e.minPly, e.maxPly)
	if err != nil {
		return report, err
	}
	report.DBWritten = written
	if written {
		report.DBSizeByte = tbl.SizeBytes()
		report.Collisions = tbl.Collisions
		report.TableSize = len(tbl.Keys)
	}

	return report, nil
}

// TTStats exposes the transposition table's probe/hit/store counters,
// useful for diagnostics beyond the headline Report.
func (e *Engine) TTStats() (probes, hits, stores int64) {
	return e.tt.Stats()
}
