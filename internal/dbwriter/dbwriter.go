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

// Package dbwriter packs a set of critical-position entries into the
// open-addressed hash table format a playing agent reads at lookup time,
// and writes it out as a small binary file.
package dbwriter

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/frankkopp/c4gen/internal/generator"
	"github.com/frankkopp/c4gen/internal/position"
)

// headerKeyBytes and headerValueBytes are the fixed field widths recorded
// in the file header; a reader uses them to validate it understands this
// file's layout before trusting table_size.
const (
	headerKeyBytes   = 4
	headerValueBytes = 1
)

// Table is the in-memory form of the packed hash table, built from a
// generator's critical-entry buffer.
type Table struct {
	MinPly, MaxPly int
	Keys           []uint32
	Values         []uint8
	Collisions     int
}

// Build packs entries into an open-addressed table sized to
// next_prime(2*len(entries)), inserting each via linear probing. Two
// entries whose fingerprints land on the same slot probe forward; the
// Collisions count reports how many probe steps that cost. An entry whose
// >>16 truncated key is 0 is indistinguishable from an empty slot, so a
// later entry landing on that slot overwrites it.
func Build(entries []generator.CriticalEntry, minPly, maxPly int) Table {
	size := nextPrime(uint64(len(entries)) * 2)
	t := Table{
		MinPly: minPly,
		MaxPly: maxPly,
		Keys:   make([]uint32, size),
		Values: make([]uint8, size),
	}
	for _, e := range entries {
		h := uint64(e.Fingerprint)
		idx := h % size
		for t.Keys[idx] != 0 {
			idx = (idx + 1) % size
			t.Collisions++
		}
		t.Keys[idx] = uint32(h >> 16)
		t.Values[idx] = e.WinningCol
	}
	return t
}

// WriteFile packs entries and writes the result to path. It returns
// (zero Table, false, nil) without creating a file when entries is empty,
// matching the "no critical positions found" non-error outcome.
func WriteFile(path string, entries []generator.CriticalEntry, minPly, maxPly int) (t Table, written bool, err error) {
	if len(entries) == 0 {
		return Table{}, false, nil
	}
	t = Build(entries, minPly, maxPly)

	f, err := os.Create(path)
	if err != nil {
		return Table{}, false, fmt.Errorf("dbwriter: open %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := t.WriteTo(w); err != nil {
		return Table{}, false, fmt.Errorf("dbwriter: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return Table{}, false, fmt.Errorf("dbwriter: flush %s: %w", path, err)
	}
	return t, true, nil
}

// WriteTo emits the header, table size and the two parallel arrays, all
// little-endian, to w.
func (t Table) WriteTo(w io.Writer) error {
	header := [8]byte{
		byte(position.Width),
		byte(position.Height),
		byte(t.MinPly),
		byte(t.MaxPly),
		headerKeyBytes,
		headerValueBytes,
		0, 0,
	}
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.Keys))); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, t.Keys); err != nil {
		return err
	}
	_, err := w.Write(t.Values)
	return err
}

// SizeBytes returns the on-disk size WriteTo would produce.
func (t Table) SizeBytes() int64 {
	return 8 + 4 + int64(len(t.Keys))*4 + int64(len(t.Values))
}

func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := uint64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func nextPrime(n uint64) uint64 {
	for !isPrime(n) {
		n++
	}
	return n
}
