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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPositionIsEmpty(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, Bitboard(0), p.Current)
	assert.Equal(t, Bitboard(0), p.Mask)
	assert.Equal(t, 0, p.Ply)
}

func TestPlayUndoRestoresState(t *testing.T) {
	p := NewPosition()
	seq := []int{3, 2, 3, 4, 0, 6, 3}
	var snapshots []Position
	for _, col := range seq {
		snapshots = append(snapshots, *p)
		require.True(t, p.CanPlay(col))
		p.Play(col)
	}
	for i := len(seq) - 1; i >= 0; i-- {
		p.Undo(seq[i])
		assert.Equal(t, snapshots[i], *p, "undo at step %d did not restore state", i)
	}
}

func TestPlyEqualsPopCountOfMask(t *testing.T) {
	p := NewPosition()
	for _, col := range []int{3, 4, 2, 5, 1, 6, 0, 3, 4} {
		p.Play(col)
		assert.Equal(t, p.Ply, p.Mask.PopCount())
	}
}

func TestCurrentIsSubsetOfMask(t *testing.T) {
	p := NewPosition()
	for _, col := range []int{3, 3, 3, 2, 2, 4} {
		p.Play(col)
		assert.Equal(t, Bitboard(0), p.Current&^p.Mask)
	}
}

func TestSentinelBitsStayZero(t *testing.T) {
	p := NewPosition()
	for col := 0; col < Width; col++ {
		for p.CanPlay(col) {
			p.Play(col)
		}
	}
	assert.Equal(t, Bitboard(0), p.Mask&^boardMask, "no sentinel bit may be set")
}

func TestCanPlayFalseOnFullColumn(t *testing.T) {
	p := NewPosition()
	for row := 0; row < Height; row++ {
		require.True(t, p.CanPlay(3))
		p.Play(3)
	}
	assert.False(t, p.CanPlay(3))
}

func TestKeyDistinguishesDistinctPositions(t *testing.T) {
	a := NewPosition()
	a.Play(3)
	b := NewPosition()
	b.Play(2)
	assert.NotEqual(t, a.Key(), b.Key())
}

// vertical win-in-one: three stones of the side to move stacked in
// column 3, playable cell on top.
func TestCanWinImmediatelyVertical(t *testing.T) {
	p := NewPosition()
	// x plays col 3 three times, o plays col 0 between to keep turn parity.
	for i := 0; i < 3; i++ {
		p.Play(3)
		p.Play(0)
	}
	// it is x's turn again; x has three in col 3.
	assert.True(t, p.CanWinImmediately())
	col, ok := p.WinningCol()
	assert.True(t, ok)
	assert.Equal(t, 3, col)
}

// NonLosingMoves is defined directly over the two bitboards, so a
// double-threat position is constructed synthetically rather than via a
// (much longer) legal move sequence that reaches one.
func TestNonLosingMovesZeroOnDoubleThreat(t *testing.T) {
	opp := (Bitboard(0b0111) << uint(0*(Height+1))) | (Bitboard(0b0111) << uint(1*(Height+1)))
	synth := Position{Current: 0, Mask: opp, Ply: opp.PopCount()}
	assert.Equal(t, Bitboard(0), synth.NonLosingMoves())
}

func TestMoveThreatScoreCountsGainedThreats(t *testing.T) {
	p := NewPosition()
	p.Play(3)
	p.Play(0)
	p.Play(3)
	p.Play(1)
	// x has two stones stacked in column 3; playing a third gains a
	// vertical threat.
	move := p.MoveBit(3)
	score := p.MoveThreatScore(move)
	assert.GreaterOrEqual(t, score, 1)
}
