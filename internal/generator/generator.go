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

// Package generator walks every reachable position up to a ply ceiling and
// hands each one inside the target window to a classifier, collecting the
// critical ones it finds.
package generator

import (
	"github.com/frankkopp/c4gen/internal/classifier"
	"github.com/frankkopp/c4gen/internal/position"
)

// CriticalEntry is one recorded finding: a position fingerprint paired
// with its unique non-obvious winning column.
type CriticalEntry struct {
	Fingerprint position.Key
	WinningCol  uint8
}

// Stats tallies what the walk did, for the final summary report.
type Stats struct {
	Analyzed int64 // nodes whose ply fell inside [MinPly, MaxPly]
	Critical int64 // of those, the ones classified critical
	Skipped  int64 // of those, the ones rejected by the classifier
}

// ProgressFunc is invoked once per column played at ply 0, the only point
// shallow enough to give a meaningful sense of overall progress.
type ProgressFunc func(col int)

// Generator performs the depth-first walk.
type Generator struct {
	classifier *classifier.Classifier
	minPly     int
	maxPly     int
	onProgress ProgressFunc

	stats    Stats
	critical []CriticalEntry
}

// New returns a Generator bounded by [minPly, maxPly], pre-sizing the
// critical buffer to initialCapacity (it grows by Go's normal append
// doubling past that).
func New(c *classifier.Classifier, minPly, maxPly, initialCapacity int, onProgress ProgressFunc) *Generator {
	return &Generator{
		classifier: c,
		minPly:     minPly,
		maxPly:     maxPly,
		onProgress: onProgress,
		critical:   make([]CriticalEntry, 0, initialCapacity),
	}
}

// Run walks the tree from the empty board and returns the accumulated
// critical entries and final stats.
func (g *Generator) Run() ([]CriticalEntry, Stats) {
	p := position.NewPosition()
	g.walk(p)
	return g.critical, g.stats
}

func (g *Generator) walk(p *position.Position) {
	if p.Ply >= g.minPly && p.Ply <= g.maxPly {
		g.stats.Analyzed++
		if col := g.classifier.Classify(p); col != classifier.NotCritical {
			g.critical = append(g.critical, CriticalEntry{
				Fingerprint: p.Key(),
				WinningCol:  uint8(col),
			})
			g.stats.Critical++
		} else {
			g.stats.Skipped++
		}
	}

	if p.Ply >= g.maxPly {
		return
	}
	if p.CanWinImmediately() {
		// the game ends here under rational play; no reachable child
		// is worth enumerating below a position that already won.
		return
	}

	for col := 0; col < position.Width; col++ {
		if !p.CanPlay(col) {
			continue
		}
		if p.Ply == 0 && g.onProgress != nil {
			g.onProgress(col)
		}
		child := p.PlayedCopy(col)
		g.walk(&child)
	}
}
