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

package config

// engineConfiguration is a data structure to hold the configuration of an
// instance of the generator engine.
type engineConfiguration struct {
	// Ply window eligible for classification. Board geometry (7x6) is a
	// compile-time constant of internal/position, not configurable here.
	MinPly int
	MaxPly int

	// TTSizeExponent sets the transposition table to 2^TTSizeExponent entries.
	TTSizeExponent uint

	// CriticalBufferInitialCapacity is the initial capacity of the critical
	// entry buffer; it doubles on fill.
	CriticalBufferInitialCapacity int

	// OutputFile is the path the packed database is written to.
	OutputFile string
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Engine.MinPly = 15
	Settings.Engine.MaxPly = 28
	Settings.Engine.TTSizeExponent = 23
	Settings.Engine.CriticalBufferInitialCapacity = 1_000_000
	Settings.Engine.OutputFile = "critical.db"
}

// setupEngine fills in any zero-valued fields left after decoding the
// config file with the package defaults.
func setupEngine() {
	if Settings.Engine.MinPly == 0 {
		Settings.Engine.MinPly = 15
	}
	if Settings.Engine.MaxPly == 0 {
		Settings.Engine.MaxPly = 28
	}
	if Settings.Engine.TTSizeExponent == 0 {
		Settings.Engine.TTSizeExponent = 23
	}
	if Settings.Engine.CriticalBufferInitialCapacity == 0 {
		Settings.Engine.CriticalBufferInitialCapacity = 1_000_000
	}
	if Settings.Engine.OutputFile == "" {
		Settings.Engine.OutputFile = "critical.db"
	}
}
