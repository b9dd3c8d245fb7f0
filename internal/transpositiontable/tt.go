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

// Package transpositiontable caches negamax scores keyed by position
// fingerprint, so the solver never re-searches a position it has already
// resolved via a different move order.
package transpositiontable

import (
	"github.com/frankkopp/c4gen/internal/position"
)

// MinScore and MaxScore bound every score the solver can return: losing as
// early as possible (ply 6) scores MinScore, winning as early as possible
// (ply 6) scores MaxScore, and later wins and losses score closer to zero.
const (
	MinScore = -(position.Width*position.Height)/2 + 3
	MaxScore = (position.Width*position.Height+1)/2 - 3
)

// TtTable is a fixed-size, always-replace transposition table. Entries are
// never evicted by age or depth: a later write to an occupied slot simply
// overwrites it. Stored values carry no bound type, so two writes to the
// same key from searches under different windows may differ.
type TtTable struct {
	entries []TtEntry
	mask    uint64

	probes int64
	hits   int64
	stores int64
}

// New creates a table of 2^sizeExponent slots.
func New(sizeExponent uint) *TtTable {
	size := uint64(1) << sizeExponent
	return &TtTable{
		entries: make([]TtEntry, size),
		mask:    size - 1,
	}
}

func index(key position.Key, mask uint64) uint64 {
	return uint64(key) & mask
}

// Probe looks up key and reports whether it was found. The value is the
// score last stored for key, decoded from its stored offset form.
func (t *TtTable) Probe(key position.Key) (value int, found bool) {
	t.probes++
	e := t.entries[index(key, t.mask)]
	if e.IsEmpty() || e.key != uint64(key) {
		return 0, false
	}
	t.hits++
	return int(e.value) + MinScore - 1, true
}

// Put stores value for key, unconditionally overwriting whatever occupied
// the slot. value must be within [MinScore, MaxScore].
func (t *TtTable) Put(key position.Key, value int) {
	t.stores++
	t.entries[index(key, t.mask)] = TtEntry{
		key:   uint64(key),
		value: int8(value - MinScore + 1),
	}
}

// Clear resets every slot and the running statistics. The solver does not
// call this between positions (see package doc); it is here for tests and
// for a caller that wants to bound memory across an unrelated batch.
func (t *TtTable) Clear() {
	for i := range t.entries {
		t.entries[i] = TtEntry{}
	}
	t.probes, t.hits, t.stores = 0, 0, 0
}

// Len returns the number of slots.
func (t *TtTable) Len() int {
	return len(t.entries)
}

// Stats returns (probes, hits, stores) since creation or the last Clear.
func (t *TtTable) Stats() (probes, hits, stores int64) {
	return t.probes, t.hits, t.stores
}

// Hashfull returns the fraction of slots in use, in 0..1, sampled over the
// first 1000 slots the way the teacher's search reports hash usage.
func (t *TtTable) Hashfull() float64 {
	sample := 1000
	if sample > len(t.entries) {
		sample = len(t.entries)
	}
	if sample == 0 {
		return 0
	}
	used := 0
	for i := 0; i < sample; i++ {
		if !t.entries[i].IsEmpty() {
			used++
		}
	}
	return float64(used) / float64(sample)
}
