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

import "math"

// The functions below decode fixed-width big-endian values from a byte
// buffer of exactly the stated width. They are pure and total: callers
// are responsible for ensuring the buffer is long enough, the same
// contract ion/unmarshal.go's ReadUint/ReadInt place on their callers
// once the TLV length has been validated.

func decodeUint16BE(b []byte) uint16 {
	_ = b[1]
	return uint16(b[0])<<8 | uint16(b[1])
}

func decodeUint32BE(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func decodeUint64BE(b []byte) uint64 {
	_ = b[7]
	hi := decodeUint32BE(b[0:4])
	lo := decodeUint32BE(b[4:8])
	return uint64(hi)<<32 | uint64(lo)
}

// decodeFloat32BE bit-reinterprets a big-endian binary32 buffer,
// preserving NaN payloads exactly (no normalization of signaling vs.
// quiet NaN bit patterns).
func decodeFloat32BE(b []byte) float32 {
	return math.Float32frombits(decodeUint32BE(b))
}

// decodeFloat64BE bit-reinterprets a big-endian binary64 buffer.
func decodeFloat64BE(b []byte) float64 {
	return math.Float64frombits(decodeUint64BE(b))
}

func decodeInt16BE(b []byte) int16 { return int16(decodeUint16BE(b)) }
func decodeInt32BE(b []byte) int32 { return int32(decodeUint32BE(b)) }
func decodeInt64BE(b []byte) int64 { return int64(decodeUint64BE(b)) }
