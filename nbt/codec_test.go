// Copyright (C) 2024 NBT Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package nbt

import (
	"math"
	"testing"
)

func TestDecodeUint16BE(t *testing.T) {
	cases := []struct {
		b    []byte
		want uint16
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0xFF, 0xFF}, 0xFFFF},
		{[]byte{0x01, 0x00}, 0x0100},
	}
	for _, c := range cases {
		if got := decodeUint16BE(c.b); got != c.want {
			t.Errorf("decodeUint16BE(%x) = %#x, want %#x", c.b, got, c.want)
		}
	}
}

func TestDecodeInt16BENegative(t *testing.T) {
	if got := decodeInt16BE([]byte{0xFF, 0xFF}); got != -1 {
		t.Errorf("decodeInt16BE(FF FF) = %d, want -1", got)
	}
}

func TestDecodeInt32BE(t *testing.T) {
	if got := decodeInt32BE([]byte{0x7F, 0xFF, 0xFF, 0xFF}); got != math.MaxInt32 {
		t.Errorf("decodeInt32BE = %d, want %d", got, math.MaxInt32)
	}
	if got := decodeInt32BE([]byte{0x80, 0x00, 0x00, 0x00}); got != math.MinInt32 {
		t.Errorf("decodeInt32BE = %d, want %d", got, math.MinInt32)
	}
}

func TestDecodeInt64BEExtremes(t *testing.T) {
	if got := decodeInt64BE([]byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}); got != math.MaxInt64 {
		t.Errorf("decodeInt64BE = %d, want %d", got, int64(math.MaxInt64))
	}
	if got := decodeInt64BE([]byte{0x80, 0, 0, 0, 0, 0, 0, 0}); got != math.MinInt64 {
		t.Errorf("decodeInt64BE = %d, want %d", got, int64(math.MinInt64))
	}
}

func TestDecodeFloat32BE(t *testing.T) {
	// 42.65625 encoded as IEEE-754 binary32, big-endian.
	got := decodeFloat32BE([]byte{0x42, 0x2A, 0xA0, 0x00})
	if got != 42.65625 {
		t.Errorf("decodeFloat32BE = %v, want 42.65625", got)
	}
}

func TestDecodeFloat32BENaNPreservesBits(t *testing.T) {
	bits := uint32(0x7FC00001) // a quiet NaN with a distinguishing payload bit
	b := []byte{byte(bits >> 24), byte(bits >> 16), byte(bits >> 8), byte(bits)}
	got := decodeFloat32BE(b)
	if !math.IsNaN(float64(got)) {
		t.Fatalf("decodeFloat32BE(%x) = %v, want NaN", b, got)
	}
	if math.Float32bits(got) != bits {
		t.Errorf("decodeFloat32BE(%x) bit pattern = %#x, want %#x", b, math.Float32bits(got), bits)
	}
}

func TestDecodeFloat64BERoundTrip(t *testing.T) {
	want := 0.49312871321823148
	bits := math.Float64bits(want)
	b := []byte{
		byte(bits >> 56), byte(bits >> 48), byte(bits >> 40), byte(bits >> 32),
		byte(bits >> 24), byte(bits >> 16), byte(bits >> 8), byte(bits),
	}
	if got := decodeFloat64BE(b); got != want {
		t.Errorf("decodeFloat64BE = %v, want %v", got, want)
	}
}
