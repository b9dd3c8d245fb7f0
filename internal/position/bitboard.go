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

// Package position implements the Connect Four board representation: a
// pair of 64-bit bitboards plus a move counter, and the primitives needed
// to play, undo and inspect moves on it.
//
// Bit layout uses one 7-bit stripe per column: bit index
// row + col*(Height+1) for row 0..Height-1. The extra bit per column
// (row == Height, the sentinel) is always zero in a legal position and is
// used by the carry trick in nextFreeCell.
package position

import "math/bits"

// Board geometry. Width and Height are compile-time parameters per spec;
// internal/config has no geometry settings, so a different board size
// means rebuilding this package. This package fixes the standard 7x6
// board the reference database is built for.
const (
	// Width is the number of columns.
	Width = 7
	// Height is the number of rows.
	Height = 6
	// Size is the number of playable cells.
	Size = Width * Height
	// MaxPly is a full board.
	MaxPly = Size
)

// Bitboard is a set of board cells under the row+col*(Height+1) indexing
// scheme described in the package doc.
type Bitboard uint64

var (
	// bottomMaskCol[c] selects row 0 of column c.
	bottomMaskCol [Width]Bitboard
	// columnMaskCol[c] selects rows 0..Height-1 of column c.
	columnMaskCol [Width]Bitboard
	// topMaskCol[c] selects row Height-1 of column c (the topmost playable cell).
	topMaskCol [Width]Bitboard

	// bottomMask is the union of all columns' bottom rows.
	bottomMask Bitboard
	// boardMask is the union of all playable cells (no sentinel bits).
	boardMask Bitboard
)

func init() {
	for c := 0; c < Width; c++ {
		bottomMaskCol[c] = 1 << uint(c*(Height+1))
		columnMaskCol[c] = ((Bitboard(1) << Height) - 1) << uint(c*(Height+1))
		topMaskCol[c] = 1 << uint((Height-1)+c*(Height+1))
		bottomMask |= bottomMaskCol[c]
		boardMask |= columnMaskCol[c]
	}
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ColumnMask returns the set of rows 0..Height-1 of column col.
func ColumnMask(col int) Bitboard {
	return columnMaskCol[col]
}
