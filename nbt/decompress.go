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
	"bufio"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Framing names a byte-stream wrapper format that may sit in front of
// the raw tag stream.
type Framing int

const (
	FramingRaw Framing = iota
	FramingGzip
	FramingZlib
)

func (f Framing) String() string {
	switch f {
	case FramingGzip:
		return "gzip"
	case FramingZlib:
		return "zlib"
	default:
		return "raw"
	}
}

// detectFraming peeks at the first two bytes of r to tell raw tag bytes
// apart from a gzip (RFC 1952, magic 1F 8B) or zlib (RFC 1950, CMF byte
// 0x78 followed by an FLG byte of 0x01, 0x9C or 0xDA) wrapper, without
// consuming any input.
func detectFraming(r *bufio.Reader) (Framing, error) {
	head, err := r.Peek(2)
	if err != nil {
		if err == io.EOF {
			return FramingRaw, nil
		}
		return FramingRaw, &ParseError{Kind: IoError, Context: "framing detection", Err: err}
	}
	if head[0] == 0x1F && head[1] == 0x8B {
		return FramingGzip, nil
	}
	if head[0] == 0x78 && (head[1] == 0x01 || head[1] == 0x9C || head[1] == 0xDA) {
		return FramingZlib, nil
	}
	return FramingRaw, nil
}

// autoDecompress wraps r in a bufio.Reader, sniffs its framing, and
// returns a reader over the unwrapped tag stream along with the
// framing it detected. Grounded in convert.go's decompressors map,
// generalized from suffix-driven dispatch to magic-byte autodetection
// since an NBT source carries no filename.
func autoDecompress(r io.Reader) (io.Reader, Framing, error) {
	br := bufio.NewReader(r)
	framing, err := detectFraming(br)
	if err != nil {
		return nil, FramingRaw, err
	}
	switch framing {
	case FramingGzip:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, framing, &ParseError{Kind: CorruptInput, Context: "gzip header", Err: err}
		}
		return gz, framing, nil
	case FramingZlib:
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, framing, &ParseError{Kind: CorruptInput, Context: "zlib header", Err: err}
		}
		return zr, framing, nil
	default:
		return br, framing, nil
	}
}
