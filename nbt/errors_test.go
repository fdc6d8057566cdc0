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
	"testing"
)

func TestParseErrorIsMatchesKind(t *testing.T) {
	cases := []struct {
		kind Kind
		want error
	}{
		{TruncatedInput, ErrTruncated},
		{UnknownTag, ErrUnknownTag},
		{UnexpectedEnd, ErrUnexpectedEnd},
		{CorruptInput, ErrCorrupt},
		{IoError, ErrIO},
	}
	for _, c := range cases {
		pe := &ParseError{Kind: c.kind, Context: "test"}
		if !errors.Is(pe, c.want) {
			t.Errorf("Kind %s should match %v", c.kind, c.want)
		}
		for _, other := range cases {
			if other.kind == c.kind {
				continue
			}
			if errors.Is(pe, other.want) {
				t.Errorf("Kind %s should not match %v", c.kind, other.want)
			}
		}
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	pe := &ParseError{Kind: IoError, Err: inner}
	if errors.Unwrap(pe) != inner {
		t.Error("Unwrap should return the wrapped error")
	}
	if !errors.Is(pe, inner) {
		t.Error("errors.Is should find the wrapped sentinel via Unwrap")
	}
}

func TestTypeMismatchErrorMessage(t *testing.T) {
	err := &TypeMismatchError{Func: "AsInt", Wanted: TagInt, Found: TagString}
	msg := err.Error()
	if msg == "" {
		t.Fatal("expected non-empty message")
	}
}

func TestOutOfRangeErrorMessageVariants(t *testing.T) {
	byIndex := &OutOfRangeError{Func: "List.Get", Index: 5, Bound: 3}
	byKey := &OutOfRangeError{Func: "Compound.At", Key: "missing"}
	if byIndex.Error() == byKey.Error() {
		t.Error("index and key variants should render differently")
	}
}

func TestKindString(t *testing.T) {
	if TruncatedInput.String() == "" {
		t.Error("expected non-empty Kind string")
	}
	if Kind(999).String() == "" {
		t.Error("unknown Kind should still stringify to something")
	}
}
