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
	"errors"
	"fmt"
)

// Kind classifies a parse failure. See ParseError.
type Kind int

const (
	// TruncatedInput means end of stream was reached while a declared
	// field still had bytes to read.
	TruncatedInput Kind = iota
	// UnknownTag means a tag byte outside 0x00..0x0C was encountered
	// where a tag was expected.
	UnknownTag
	// UnexpectedEnd means a 0x00 byte was encountered where a tag in
	// 0x01..0x0C was required.
	UnexpectedEnd
	// CorruptInput means the gzip/zlib decompressor reported a framing
	// error (CRC or Adler-32 mismatch, bad header, corrupt deflate data).
	CorruptInput
	// IoError means the underlying byte source reported an OS-level
	// error unrelated to end-of-stream.
	IoError
)

func (k Kind) String() string {
	switch k {
	case TruncatedInput:
		return "truncated input"
	case UnknownTag:
		return "unknown tag"
	case UnexpectedEnd:
		return "unexpected end tag"
	case CorruptInput:
		return "corrupt input"
	case IoError:
		return "i/o error"
	default:
		return "unknown error"
	}
}

// ParseError is returned by the parser when it aborts on the first
// fault. There is no partial-tree return: once returned, the parser
// that produced it must not be reused.
type ParseError struct {
	Kind    Kind
	Context string // short description of the state that detected the fault
	Offset  int64  // byte offset into the (decompressed) stream, if known
	Err     error  // wrapped underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nbt: %s at offset %d (%s): %s", e.Kind, e.Offset, e.Context, e.Err)
	}
	return fmt.Sprintf("nbt: %s at offset %d (%s)", e.Kind, e.Offset, e.Context)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrTruncated:
		return e.Kind == TruncatedInput
	case ErrUnknownTag:
		return e.Kind == UnknownTag
	case ErrUnexpectedEnd:
		return e.Kind == UnexpectedEnd
	case ErrCorrupt:
		return e.Kind == CorruptInput
	case ErrIO:
		return e.Kind == IoError
	}
	return false
}

// Sentinels usable with errors.Is against any ParseError of the
// matching Kind.
var (
	ErrTruncated     = errors.New("nbt: truncated input")
	ErrUnknownTag    = errors.New("nbt: unknown tag")
	ErrUnexpectedEnd = errors.New("nbt: unexpected end tag")
	ErrCorrupt       = errors.New("nbt: corrupt input")
	ErrIO            = errors.New("nbt: i/o error")
)

// TypeMismatchError is returned by a typed accessor or a typed List
// view when the node's actual tag does not match what was requested.
type TypeMismatchError struct {
	Func   string // accessor name, e.g. "AsInt"
	Wanted Tag
	Found  Tag
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("nbt.%s: found tag %s, wanted %s", e.Func, e.Found, e.Wanted)
}

// OutOfRangeError is returned by indexed List access beyond length or
// keyed Compound access via At when the key is absent.
type OutOfRangeError struct {
	Func  string
	Index int    // valid when Key == ""
	Key   string // valid when non-empty
	Bound int
}

func (e *OutOfRangeError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("nbt.%s: no such key %q", e.Func, e.Key)
	}
	return fmt.Sprintf("nbt.%s: index %d out of range [0,%d)", e.Func, e.Index, e.Bound)
}
