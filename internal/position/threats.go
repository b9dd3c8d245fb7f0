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

// ComputeThreats returns the set of empty cells where placing a stone of
// the player owning bb would complete four in a row, given the board's
// occupancy mask. It is the union, over the four directions (vertical,
// horizontal, and both diagonals), of the cells adjacent to a run of
// three bb-stones.
func ComputeThreats(bb Bitboard, mask Bitboard) Bitboard {
	var r Bitboard

	// Vertical: need three stacked stones, the fourth goes on top.
	r = (bb << 1) & (bb << 2) & (bb << 3)

	// Horizontal, stride Height+1.
	p := (bb << (Height + 1)) & (bb << (2 * (Height + 1)))
	r |= p & (bb << (3 * (Height + 1)))
	r |= p & (bb >> (Height + 1))
	p = (bb >> (Height + 1)) & (bb >> (2 * (Height + 1)))
	r |= p & (bb << (Height + 1))
	r |= p & (bb >> (3 * (Height + 1)))

	// Diagonal "\", stride Height (one column right, one row down).
	p = (bb << Height) & (bb << (2 * Height))
	r |= p & (bb << (3 * Height))
	r |= p & (bb >> Height)
	p = (bb >> Height) & (bb >> (2 * Height))
	r |= p & (bb << Height)
	r |= p & (bb >> (3 * Height))

	// Diagonal "/", stride Height+2 (one column right, one row up).
	p = (bb << (Height + 2)) & (bb << (2 * (Height + 2)))
	r |= p & (bb << (3 * (Height + 2)))
	r |= p & (bb >> (Height + 2))
	p = (bb >> (Height + 2)) & (bb >> (2 * (Height + 2)))
	r |= p & (bb << (Height + 2))
	r |= p & (bb >> (3 * (Height + 2)))

	return r & (boardMask ^ mask)
}

// playableCells returns the set of currently playable cells, one per
// non-full column, via the same carry trick nextFreeCell uses per-column.
func playableCells(mask Bitboard) Bitboard {
	return (mask + bottomMask) & boardMask
}

// CanWinImmediately reports whether the side to move has a move that
// completes four in a row right now.
func (p *Position) CanWinImmediately() bool {
	threats := ComputeThreats(p.Current, p.Mask)
	return threats&playableCells(p.Mask) != 0
}

// WinningCol returns the column of an immediate winning move and true, or
// (0, false) if CanWinImmediately is false. When several columns win, the
// lowest-indexed one is returned.
func (p *Position) WinningCol() (int, bool) {
	winningMoves := ComputeThreats(p.Current, p.Mask) & playableCells(p.Mask)
	if winningMoves == 0 {
		return 0, false
	}
	for col := 0; col < Width; col++ {
		if winningMoves&columnMaskCol[col] != 0 {
			return col, true
		}
	}
	return 0, false
}

// OpponentThreats returns the opponent's threat cells: the empty cells
// where the opponent's next stone would complete four in a row.
func (p *Position) OpponentThreats() Bitboard {
	return ComputeThreats(p.Current^p.Mask, p.Mask)
}

// NonLosingMoves returns the subset of currently playable cells that
// neither ignore an immediate opponent win nor fill the cell directly
// beneath an opponent threat cell (which would let the opponent win on
// the next move). Returns 0 if the opponent has two or more independent
// immediate threats (an unstoppable loss) or if every remaining playable
// cell lies directly beneath an opponent threat.
func (p *Position) NonLosingMoves() Bitboard {
	playable := playableCells(p.Mask)
	opponentWins := p.OpponentThreats()
	forced := playable & opponentWins

	if forced != 0 {
		if forced&(forced-1) != 0 {
			// two or more forced blocks: the opponent has an
			// unstoppable double threat.
			return 0
		}
		playable = forced
	}

	return playable &^ (opponentWins >> 1)
}

// MoveThreatScore scores a candidate move bit by the number of threats
// the side to move would gain by playing it; used for move ordering.
func (p *Position) MoveThreatScore(move Bitboard) int {
	return ComputeThreats(p.Current|move, p.Mask).PopCount()
}
