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

// Package nbt decodes the Named Binary Tag format into an in-memory
// tree of typed values.
//
// Parse, ParseExplicit, ParseAuto, ParseBytes, and ParseFile are the
// entry points; each returns a single owned root Node. Once parsed, a
// Node is navigated through its Tag, through the typed accessors
// (AsByte, AsString, AsCompound, ...), and through the List/Compound
// views for the two aggregate tags.
//
// Parsing stops at the first malformed byte: there is no partial tree
// and no resynchronization. A returned error is always either a
// *ParseError (wire-level failure) or wraps one of the Err* sentinels,
// so callers can branch with errors.Is/errors.As.
package nbt

import (
	"bytes"
	"io"
	"os"
)

// Parse reads a single Compound body from r under the implicit-root
// policy: r is assumed to already have its outer tag+name wrapper
// stripped, as produced by tools that hand back just the document's
// contents. r is read as a raw (uncompressed) tag stream.
func Parse(r io.Reader) (Node, error) {
	return newParser(r).parseImplicit()
}

// ParseExplicit reads a full document from r under the explicit policy:
// the first byte is a tag, followed by the root's name, followed by the
// value itself. r is read as a raw (uncompressed) tag stream.
func ParseExplicit(r io.Reader) (Node, error) {
	return newParser(r).parseExplicit()
}

// ParseAuto autodetects gzip or zlib framing on r, transparently
// decompresses it if present, and parses the result under the
// implicit-root policy.
func ParseAuto(r io.Reader) (Node, error) {
	body, _, err := autoDecompress(r)
	if err != nil {
		return Node{}, err
	}
	return newParser(body).parseImplicit()
}

// ParseBytes is a convenience wrapper over Parse for an in-memory
// buffer already holding a raw (uncompressed) implicit-root body.
func ParseBytes(b []byte) (Node, error) {
	return Parse(bytes.NewReader(b))
}

// ParseFile opens path and parses it with ParseAuto.
func ParseFile(path string) (Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return Node{}, &ParseError{Kind: IoError, Context: "opening " + path, Err: err}
	}
	defer f.Close()
	return ParseAuto(f)
}
