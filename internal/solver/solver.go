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

// Package solver implements a weak Connect Four solver: it tells you who
// wins a position and nothing else (no principal variation, no move
// recommendation beyond what the caller derives from child scores).
//
// Scores are from the perspective of the side to move: positive means a
// forced win, negative a forced loss, zero a draw. The magnitude encodes
// how soon: a win on move k scores (Width*Height+1-k)/2, a loss on move k
// scores -(Width*Height-k)/2, so faster wins and slower losses both score
// higher.
package solver

import (
	"sort"

	"github.com/frankkopp/c4gen/internal/position"
	"github.com/frankkopp/c4gen/internal/transpositiontable"
)

// columnOrder searches the center columns first: they appear in more
// four-in-a-row lines, so ordering by it (intersected with the actually
// legal moves) finds strong moves earlier and prunes more of the tree.
var columnOrder = [position.Width]int{3, 2, 4, 1, 5, 0, 6}

// Solver is a negamax searcher over a shared transposition table. The
// table is never cleared between Solve calls. Each entry holds the
// fail-soft result of a windowed search of that position, which may be a
// bound rather than the exact score; no bound type is recorded with it.
type Solver struct {
	tt *transpositiontable.TtTable
}

// New wraps an existing table. The table's lifetime is the caller's
// (normally an internal/engine.Engine) to manage.
func New(tt *transpositiontable.TtTable) *Solver {
	return &Solver{tt: tt}
}

// Solve returns the exact score of p from the side to move's perspective.
func (s *Solver) Solve(p *position.Position) int {
	if p.CanWinImmediately() {
		return (position.Width*position.Height + 1 - p.Ply) / 2
	}

	min := -(position.Width*position.Height - p.Ply) / 2
	max := (position.Width*position.Height + 1 - p.Ply) / 2

	for min < max {
		med := min + (max-min)/2
		switch {
		case med <= 0 && min/2 < med:
			med = min / 2
		case med >= 0 && max/2 > med:
			med = max / 2
		}

		r := s.negamax(p, med, med+1)
		if r <= med {
			max = r
		} else {
			min = r
		}
	}

	return min
}

type orderedMove struct {
	col   int
	score int
}

func (s *Solver) negamax(p *position.Position, alpha, beta int) int {
	if p.CanWinImmediately() {
		return (position.Width*position.Height + 1 - p.Ply) / 2
	}

	possible := p.NonLosingMoves()
	if possible == 0 {
		return -(position.Width*position.Height - p.Ply) / 2
	}

	if p.Ply >= position.Width*position.Height-2 {
		return 0
	}

	min := -(position.Width*position.Height - 2 - p.Ply) / 2
	if alpha < min {
		alpha = min
		if alpha >= beta {
			return alpha
		}
	}

	max := (position.Width*position.Height - 1 - p.Ply) / 2
	if beta > max {
		beta = max
		if alpha >= beta {
			return beta
		}
	}

	key := p.Key()
	if ttVal, found := s.tt.Probe(key); found {
		if ttVal >= beta || ttVal <= alpha {
			return ttVal
		}
	}

	moves := make([]orderedMove, 0, position.Width)
	for _, col := range columnOrder {
		move := possible & position.ColumnMask(col)
		if move != 0 {
			moves = append(moves, orderedMove{col: col, score: p.MoveThreatScore(move)})
		}
	}
	sort.SliceStable(moves, func(i, j int) bool { return moves[i].score > moves[j].score })

	best := -position.Width * position.Height
	for _, m := range moves {
		child := p.PlayedCopy(m.col)
		score := -s.negamax(&child, -beta, -alpha)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	s.tt.Put(key, best)
	return best
}
