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

// Package classifier decides whether a position is "critical": exactly one
// legal reply wins, every other reply draws or loses, and that winning
// reply is not obvious (not an immediate four-in-a-row, not the forced
// block of the opponent's own immediate threat).
package classifier

import (
	"github.com/frankkopp/c4gen/internal/position"
	"github.com/frankkopp/c4gen/internal/solver"
)

// NotCritical is the sentinel column value Classify returns for a
// position that does not qualify.
const NotCritical = -1

// Classifier evaluates positions via a shared Solver.
type Classifier struct {
	solver *solver.Solver

	minPly int
	maxPly int
}

// New returns a Classifier restricted to [minPly, maxPly].
func New(s *solver.Solver, minPly, maxPly int) *Classifier {
	return &Classifier{solver: s, minPly: minPly, maxPly: maxPly}
}

// Classify returns the winning column if p is critical, or NotCritical.
func (c *Classifier) Classify(p *position.Position) int {
	if p.Ply < c.minPly || p.Ply > c.maxPly {
		return NotCritical
	}
	if p.CanWinImmediately() {
		return NotCritical
	}
	possible := p.NonLosingMoves()
	if possible == 0 {
		return NotCritical
	}

	winningCol := NotCritical
	winCount := 0
	for col := 0; col < position.Width; col++ {
		if !p.CanPlay(col) {
			continue
		}
		if possible&position.ColumnMask(col) == 0 {
			continue
		}
		child := p.PlayedCopy(col)
		score := -c.solver.Solve(&child)
		if score > 0 {
			winCount++
			winningCol = col
		}
	}

	if winCount != 1 {
		return NotCritical
	}
	if isObvious(p, winningCol) {
		return NotCritical
	}
	return winningCol
}

// isObvious reports whether playing col is a win-in-one for the side to
// move, or the unique forced block of an opponent's immediate threat.
func isObvious(p *position.Position, col int) bool {
	move := p.MoveBit(col)
	myWinning := position.ComputeThreats(p.Current, p.Mask)
	if myWinning&move != 0 {
		return true
	}
	return p.OpponentThreats()&move != 0
}
