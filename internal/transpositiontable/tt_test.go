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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/c4gen/internal/position"
)

func TestNewSizing(t *testing.T) {
	tt := New(10)
	assert.Equal(t, 1<<10, tt.Len())
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := New(10)
	_, found := tt.Probe(position.Key(12345))
	assert.False(t, found)
}

func TestPutThenProbeRoundTrips(t *testing.T) {
	tt := New(10)
	tt.Put(position.Key(42), -7)
	value, found := tt.Probe(position.Key(42))
	assert.True(t, found)
	assert.Equal(t, -7, value)
}

func TestPutBoundaryScores(t *testing.T) {
	tt := New(10)
	tt.Put(position.Key(1), MinScore)
	v, found := tt.Probe(position.Key(1))
	assert.True(t, found)
	assert.Equal(t, MinScore, v)

	tt.Put(position.Key(2), MaxScore)
	v, found = tt.Probe(position.Key(2))
	assert.True(t, found)
	assert.Equal(t, MaxScore, v)
}

func TestPutOverwritesOnCollision(t *testing.T) {
	tt := New(10)
	size := uint64(tt.Len())
	a := position.Key(3)
	b := position.Key(3 + size) // same slot under the index mask
	tt.Put(a, 5)
	tt.Put(b, -5)
	// b's write must win and a must now report a miss, since the stored
	// key no longer matches.
	_, found := tt.Probe(a)
	assert.False(t, found)
	v, found := tt.Probe(b)
	assert.True(t, found)
	assert.Equal(t, -5, v)
}

func TestClearResetsEntriesAndStats(t *testing.T) {
	tt := New(10)
	tt.Put(position.Key(1), 3)
	_, _ = tt.Probe(position.Key(1))
	tt.Clear()
	_, found := tt.Probe(position.Key(1))
	assert.False(t, found)
	probes, hits, stores := tt.Stats()
	assert.Equal(t, int64(1), probes) // the Probe call just made, after Clear
	assert.Equal(t, int64(0), hits)
	assert.Equal(t, int64(0), stores)
}

func TestHashfullGrowsWithStores(t *testing.T) {
	tt := New(10)
	assert.Equal(t, float64(0), tt.Hashfull())
	for i := 0; i < 100; i++ {
		tt.Put(position.Key(i), 0)
	}
	assert.Greater(t, tt.Hashfull(), float64(0))
}
