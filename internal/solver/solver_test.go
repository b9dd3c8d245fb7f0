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

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/c4gen/internal/position"
	"github.com/frankkopp/c4gen/internal/transpositiontable"
)

func newSolver() *Solver {
	return New(transpositiontable.New(16))
}

func TestSolveWinInOneIsMaximal(t *testing.T) {
	p := position.NewPosition()
	for i := 0; i < 3; i++ {
		p.Play(3)
		p.Play(0)
	}
	// three in col 3, side to move wins immediately at ply 6.
	s := newSolver()
	score := s.Solve(p)
	assert.Equal(t, (position.Width*position.Height+1-p.Ply)/2, score)
}

func TestSolveForcedLossIsNegative(t *testing.T) {
	// opponent holds two independent runs of three (columns 0 and 1); the
	// side to move cannot block both, so this is an unstoppable loss.
	opp := (position.Bitboard(0b0111) << uint(0*(position.Height+1))) |
		(position.Bitboard(0b0111) << uint(1*(position.Height+1)))
	p := position.Position{Current: 0, Mask: opp, Ply: opp.PopCount()}

	s := newSolver()
	assert.Less(t, s.Solve(&p), 0)
}

func TestSolveIsSignConsistentAcrossTransposition(t *testing.T) {
	// Two move orders reaching the same position must solve to the same
	// score: the transposition table must not corrupt results when a
	// position is reached twice within one solver's lifetime.
	s := newSolver()

	a := position.NewPosition()
	a.Play(3)
	a.Play(2)
	a.Play(4)
	a.Play(1)

	b := position.NewPosition()
	b.Play(4)
	b.Play(1)
	b.Play(3)
	b.Play(2)

	scoreA := s.Solve(a)
	scoreB := s.Solve(b)
	assert.Equal(t, scoreA, scoreB)
}

func TestSolveDrawAtPlyThreshold(t *testing.T) {
	// negamax declares a draw once ply reaches Width*Height-2 regardless
	// of board content; Ply alone is enough to exercise that branch.
	p := position.Position{Ply: position.Width*position.Height - 2}
	s := newSolver()
	assert.Equal(t, 0, s.Solve(&p))
}
