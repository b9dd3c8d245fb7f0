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

package position

import (
	"fmt"
	"strings"

	"github.com/frankkopp/c4gen/internal/assert"
)

// Key is the fingerprint of a Position: Current + Mask. It is a bijection
// over legal Connect Four states under this package's bit layout - do not
// change the stripe stride without re-deriving that bijectivity.
type Key uint64

// Position is the canonical board state: two bitboards plus a ply counter.
//
//   Current - stones of the side to move.
//   Mask    - all occupied cells (both players).
//   Ply     - number of stones placed so far, 0 <= Ply <= Size.
//
// The opponent's stones are Current ^ Mask. Position is small enough to
// copy by value; the solver, classifier and generator all do so per child
// via PlayedCopy. Play/Undo remain available for in-place mutation.
type Position struct {
	Current Bitboard
	Mask    Bitboard
	Ply     int
}

// NewPosition returns the empty starting position.
func NewPosition() *Position {
	return &Position{}
}

// Key returns the position's fingerprint, Current + Mask.
func (p *Position) Key() Key {
	return Key(p.Current + p.Mask)
}

// CanPlay reports whether col has a free cell.
func (p *Position) CanPlay(col int) bool {
	return p.Mask&topMaskCol[col] == 0
}

// nextFreeCell returns the bit of the lowest empty cell in col. Relies on
// the carry trick: adding bottomMaskCol[col] to Mask carries through the
// column's occupied run (gravity invariant: occupied cells in a column
// are contiguous from row 0) and lands on the first empty row.
func nextFreeCell(mask Bitboard, col int) Bitboard {
	return (mask + bottomMaskCol[col]) & columnMaskCol[col]
}

// MoveBit returns the bit that Play(col) would set, without playing it.
// col must be playable.
func (p *Position) MoveBit(col int) Bitboard {
	return nextFreeCell(p.Mask, col)
}

// Play commits a move to column col in place. col must be playable;
// callers (the generator) are expected to have checked CanPlay first.
func (p *Position) Play(col int) {
	move := nextFreeCell(p.Mask, col)
	p.Current ^= p.Mask
	p.Mask |= move
	p.Ply++
	if assert.DEBUG {
		assert.Assert(p.Mask&^boardMask == 0, "Position Play: sentinel bit set after playing column %d", col)
	}
}

// Undo reverses the most recent Play(col) in place. col must be the
// column that was just played; the caller is responsible for tracking
// the column sequence (Position itself does not keep move history).
func (p *Position) Undo(col int) {
	p.Ply--
	colStones := p.Mask & columnMaskCol[col]
	var top Bitboard
	for row := Height - 1; row >= 0; row-- {
		bit := Bitboard(1) << uint(row+col*(Height+1))
		if colStones&bit != 0 {
			top = bit
			break
		}
	}
	p.Mask ^= top
	p.Current ^= p.Mask
}

// PlayedCopy returns a copy of p with col played, leaving p untouched.
// Used by the solver, which prefers snapshot-per-child over mutate/undo.
func (p *Position) PlayedCopy(col int) Position {
	child := *p
	child.Play(col)
	return child
}

// String renders the board with '.' for empty, 'x' for the side to move
// and 'o' for the opponent, top row first.
func (p *Position) String() string {
	opponent := p.Current ^ p.Mask
	var b strings.Builder
	for row := Height - 1; row >= 0; row-- {
		for col := 0; col < Width; col++ {
			bit := Bitboard(1) << uint(row+col*(Height+1))
			switch {
			case p.Current&bit != 0:
				b.WriteByte('x')
			case opponent&bit != 0:
				b.WriteByte('o')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return fmt.Sprintf("ply=%d\n%s", p.Ply, b.String())
}
