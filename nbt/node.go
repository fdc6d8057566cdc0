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
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Node is a single value in a parsed NBT tree: a tagged union over the
// twelve wire types of the format (TagEnd is structural and never
// appears in a materialized Node).
//
// Every descendant of a parsed root is constructed exactly once by the
// parser and is never mutated afterwards; a Node (and the List/Compound
// views built over it) is safe to share across goroutines once the
// parse call that produced it has returned.
type Node struct {
	tag Tag
	v   any
}

// listData is the payload behind a TagList Node: a fixed element tag
// plus the parsed children, in wire order.
type listData struct {
	elem  Tag
	items []Node
}

// Tag returns the node's wire type.
func (n Node) Tag() Tag { return n.tag }

// IsZero reports whether n is the zero Node (no tag, no value); this is
// never produced by the parser but is useful as a sentinel return value.
func (n Node) IsZero() bool { return n.tag == 0 && n.v == nil }

func newByte(v int8) Node      { return Node{tag: TagByte, v: v} }
func newShort(v int16) Node    { return Node{tag: TagShort, v: v} }
func newInt(v int32) Node      { return Node{tag: TagInt, v: v} }
func newLong(v int64) Node     { return Node{tag: TagLong, v: v} }
func newFloat(v float32) Node  { return Node{tag: TagFloat, v: v} }
func newDouble(v float64) Node { return Node{tag: TagDouble, v: v} }
func newByteArray(v []int8) Node {
	if v == nil {
		v = []int8{}
	}
	return Node{tag: TagByteArray, v: v}
}
func newString(v string) Node { return Node{tag: TagString, v: v} }
func newIntArray(v []int32) Node {
	if v == nil {
		v = []int32{}
	}
	return Node{tag: TagIntArray, v: v}
}
func newLongArray(v []int64) Node {
	if v == nil {
		v = []int64{}
	}
	return Node{tag: TagLongArray, v: v}
}
func newList(elem Tag, items []Node) Node {
	if items == nil {
		items = []Node{}
	}
	return Node{tag: TagList, v: &listData{elem: elem, items: items}}
}
func newCompound(c *Compound) Node { return Node{tag: TagCompound, v: c} }

// Clone returns a deep copy of n: aggregate payloads (ByteArray,
// IntArray, LongArray, List, Compound) are copied rather than shared, so
// mutating the clone's views (were they writable) could never be
// observed through n. Scalars are copied by value already.
//
// Grounded in ion.Datum.Clone / ion.Struct's copy-on-write discipline,
// which lean on golang.org/x/exp/slices.Clone for the same purpose.
func (n Node) Clone() Node {
	switch n.tag {
	case TagByteArray:
		return newByteArray(slices.Clone(n.v.([]int8)))
	case TagIntArray:
		return newIntArray(slices.Clone(n.v.([]int32)))
	case TagLongArray:
		return newLongArray(slices.Clone(n.v.([]int64)))
	case TagList:
		ld := n.v.(*listData)
		items := make([]Node, len(ld.items))
		for i := range ld.items {
			items[i] = ld.items[i].Clone()
		}
		return newList(ld.elem, items)
	case TagCompound:
		return newCompound(n.v.(*Compound).clone())
	default:
		return n
	}
}

// Equal reports whether n and x are structurally equivalent: same tag,
// same scalar value (NaN equals NaN, matching ion.Datum.Equal's
// FloatType special case), same array contents, same list elements in
// order, and the same set of (key, value) pairs for a Compound
// regardless of order, since Compound order is unspecified by the wire
// format.
func (n Node) Equal(x Node) bool {
	if n.tag != x.tag {
		return false
	}
	switch n.tag {
	case TagByte:
		return n.v.(int8) == x.v.(int8)
	case TagShort:
		return n.v.(int16) == x.v.(int16)
	case TagInt:
		return n.v.(int32) == x.v.(int32)
	case TagLong:
		return n.v.(int64) == x.v.(int64)
	case TagFloat:
		a, b := n.v.(float32), x.v.(float32)
		return a == b || (math.IsNaN(float64(a)) && math.IsNaN(float64(b)))
	case TagDouble:
		a, b := n.v.(float64), x.v.(float64)
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	case TagByteArray:
		return slices.Equal(n.v.([]int8), x.v.([]int8))
	case TagString:
		return n.v.(string) == x.v.(string)
	case TagIntArray:
		return slices.Equal(n.v.([]int32), x.v.([]int32))
	case TagLongArray:
		return slices.Equal(n.v.([]int64), x.v.([]int64))
	case TagList:
		a, b := n.v.(*listData), x.v.(*listData)
		if a.elem != b.elem || len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !a.items[i].Equal(b.items[i]) {
				return false
			}
		}
		return true
	case TagCompound:
		return n.v.(*Compound).equal(x.v.(*Compound))
	default:
		return false
	}
}

// String renders a debug form of the tree. This is a diagnostic
// pretty-printer, not a re-encoder: this package never writes NBT, only
// reads it.
func (n Node) String() string {
	var b strings.Builder
	n.writeTo(&b, 0)
	return b.String()
}

// GoString renders the same debug form as String, qualified with the
// package name the way fmt's %#v verb expects of a GoStringer. It is
// paired with String the same way landru27-nbt's NBTTAG.String() and
// ion.Type.String() are each the sole debug-rendering method on their
// type; Node carries both because %#v (used freely when debugging a
// parsed tree in a REPL or test failure) falls back to reflecting over
// unexported fields without it.
func (n Node) GoString() string {
	var b strings.Builder
	b.WriteString("nbt.")
	n.writeTo(&b, 0)
	return b.String()
}

func (n Node) writeTo(b *strings.Builder, depth int) {
	switch n.tag {
	case TagByte:
		fmt.Fprintf(b, "Byte(%d)", n.v.(int8))
	case TagShort:
		fmt.Fprintf(b, "Short(%d)", n.v.(int16))
	case TagInt:
		fmt.Fprintf(b, "Int(%d)", n.v.(int32))
	case TagLong:
		fmt.Fprintf(b, "Long(%d)", n.v.(int64))
	case TagFloat:
		b.WriteString("Float(")
		b.WriteString(strconv.FormatFloat(float64(n.v.(float32)), 'g', -1, 32))
		b.WriteByte(')')
	case TagDouble:
		b.WriteString("Double(")
		b.WriteString(strconv.FormatFloat(n.v.(float64), 'g', -1, 64))
		b.WriteByte(')')
	case TagByteArray:
		fmt.Fprintf(b, "ByteArray[%d]", len(n.v.([]int8)))
	case TagString:
		fmt.Fprintf(b, "String(%q)", n.v.(string))
	case TagIntArray:
		fmt.Fprintf(b, "IntArray[%d]", len(n.v.([]int32)))
	case TagLongArray:
		fmt.Fprintf(b, "LongArray[%d]", len(n.v.([]int64)))
	case TagList:
		ld := n.v.(*listData)
		fmt.Fprintf(b, "List<%s>[\n", ld.elem)
		for i := range ld.items {
			writeIndent(b, depth+1)
			ld.items[i].writeTo(b, depth+1)
			b.WriteByte('\n')
		}
		writeIndent(b, depth)
		b.WriteByte(']')
	case TagCompound:
		c := n.v.(*Compound)
		b.WriteString("Compound{\n")
		for _, f := range c.fields {
			writeIndent(b, depth+1)
			fmt.Fprintf(b, "%q: ", f.Label)
			f.Value.writeTo(b, depth+1)
			b.WriteByte('\n')
		}
		writeIndent(b, depth)
		b.WriteByte('}')
	default:
		b.WriteString("<invalid>")
	}
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

// Lookup walks a chain of Compound keys, stopping at the first missing
// key or the first non-Compound intermediate node. It returns the final
// Node and true only if every element of path resolved to a field.
//
// Nested Compound navigation is the single most common access pattern
// over a parsed tree, so this convenience spares callers from chaining
// Compound/Get/FieldByName calls by hand.
func (n Node) Lookup(path ...string) (Node, bool) {
	cur := n
	for _, key := range path {
		c, ok := cur.Compound()
		if !ok {
			return Node{}, false
		}
		f, ok := c.FieldByName(key)
		if !ok {
			return Node{}, false
		}
		cur = f.Value
	}
	return cur, true
}
