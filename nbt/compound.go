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

import "golang.org/x/exp/maps"

// Field is one named entry of a Compound.
type Field struct {
	Label string
	Value Node
}

// Compound is the read-only, string-keyed map view behind a TagCompound
// Node. Fields are kept in first-seen wire order (see Each), though
// equality ignores order; every key is unique (duplicates are resolved
// first-write-wins at parse time) and Len/Get/At are O(1) after
// construction.
//
// Grounded in ion.Struct, but whereas ion.Struct re-walks a raw TLV byte
// buffer on every Each call, a Compound here is already fully
// materialized, so it keeps an explicit field slice plus a name->index
// map built once at construction — closer to how a decoded, in-memory
// map ordinarily looks in Go.
type Compound struct {
	fields []Field
	index  map[string]int
}

// newCompoundBuilder returns an empty Compound ready for insert.
func newCompoundBuilder() *Compound {
	return &Compound{index: make(map[string]int)}
}

// insert adds (label, value) if label is not already present and
// reports whether it was added. A false return means the caller hit a
// duplicate key and, under first-write-wins, must discard the value it
// already decoded.
func (c *Compound) insert(label string, value Node) bool {
	if _, dup := c.index[label]; dup {
		return false
	}
	c.index[label] = len(c.fields)
	c.fields = append(c.fields, Field{Label: label, Value: value})
	return true
}

// Len returns the number of fields.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.fields)
}

// IsEmpty reports whether the compound has no fields.
func (c *Compound) IsEmpty() bool { return c.Len() == 0 }

// Get returns the field named key, or the zero Node and false if absent.
func (c *Compound) Get(key string) (Node, bool) {
	if c == nil {
		return Node{}, false
	}
	i, ok := c.index[key]
	if !ok {
		return Node{}, false
	}
	return c.fields[i].Value, true
}

// At is like Get but returns an *OutOfRangeError when key is absent,
// for callers who consider a missing key a hard failure.
func (c *Compound) At(key string) (Node, error) {
	v, ok := c.Get(key)
	if !ok {
		return Node{}, &OutOfRangeError{Func: "Compound.At", Key: key}
	}
	return v, nil
}

// FieldByName returns the full Field (label + value) for key.
func (c *Compound) FieldByName(key string) (Field, bool) {
	if c == nil {
		return Field{}, false
	}
	i, ok := c.index[key]
	if !ok {
		return Field{}, false
	}
	return c.fields[i], true
}

// Each calls fn for every field. Iteration order matches insertion
// (first-seen wire) order, which is a valid refinement of "unspecified"
// but callers must not depend on it matching the original wire order
// verbatim once duplicates are involved. Each stops early if fn returns
// false.
func (c *Compound) Each(fn func(Field) bool) {
	if c == nil {
		return
	}
	for _, f := range c.fields {
		if !fn(f) {
			return
		}
	}
}

// Fields returns a copy of every field, in the same order Each visits
// them.
func (c *Compound) Fields() []Field {
	if c == nil {
		return nil
	}
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

func (c *Compound) clone() *Compound {
	if c == nil {
		return nil
	}
	out := &Compound{
		fields: make([]Field, len(c.fields)),
		index:  maps.Clone(c.index),
	}
	for i := range c.fields {
		out.fields[i] = Field{Label: c.fields[i].Label, Value: c.fields[i].Value.Clone()}
	}
	return out
}

// equal compares two compounds as sets of (key, value) pairs, since
// wire order is unspecified.
func (c *Compound) equal(o *Compound) bool {
	if c.Len() != o.Len() {
		return false
	}
	for _, f := range c.fields {
		ov, ok := o.Get(f.Label)
		if !ok || !f.Value.Equal(ov) {
			return false
		}
	}
	return true
}

// Compound returns n's fields as a Compound view if n is a TagCompound
// node, or (nil, false) otherwise.
func (n Node) Compound() (*Compound, bool) {
	if n.tag != TagCompound {
		return nil, false
	}
	return n.v.(*Compound), true
}

// AsCompound is like Compound but returns a *TypeMismatchError instead
// of a boolean when n is not a Compound.
func (n Node) AsCompound() (*Compound, error) {
	c, ok := n.Compound()
	if !ok {
		return nil, &TypeMismatchError{Func: "AsCompound", Wanted: TagCompound, Found: n.tag}
	}
	return c, nil
}
