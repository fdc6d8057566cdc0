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

import "testing"

func buildCompound(fields map[string]Node, order []string) *Compound {
	c := newCompoundBuilder()
	for _, k := range order {
		c.insert(k, fields[k])
	}
	return c
}

func TestCompoundGetAndAt(t *testing.T) {
	c := buildCompound(map[string]Node{"a": newByte(1), "b": newInt(2)}, []string{"a", "b"})

	if v, ok := c.Get("a"); !ok {
		t.Error("expected a present")
	} else if b, _ := v.AsByte(); b != 1 {
		t.Errorf("a = %d, want 1", b)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("expected missing absent")
	}

	if _, err := c.At("missing"); err == nil {
		t.Error("expected At to fail on missing key")
	} else if oe, ok := err.(*OutOfRangeError); !ok || oe.Key != "missing" {
		t.Errorf("expected *OutOfRangeError with Key set, got %v", err)
	}
}

func TestCompoundInsertDuplicateRejected(t *testing.T) {
	c := newCompoundBuilder()
	if !c.insert("k", newByte(1)) {
		t.Fatal("first insert should succeed")
	}
	if c.insert("k", newByte(2)) {
		t.Fatal("duplicate insert should be rejected")
	}
	if c.Len() != 1 {
		t.Errorf("len = %d, want 1", c.Len())
	}
	v, _ := c.Get("k")
	b, _ := v.AsByte()
	if b != 1 {
		t.Errorf("value = %d, want first-written 1", b)
	}
}

func TestCompoundEqualIgnoresOrder(t *testing.T) {
	a := buildCompound(map[string]Node{"x": newByte(1), "y": newByte(2)}, []string{"x", "y"})
	b := buildCompound(map[string]Node{"x": newByte(1), "y": newByte(2)}, []string{"y", "x"})
	if !a.equal(b) {
		t.Error("compounds with same pairs in different order should be equal")
	}
}

func TestCompoundCloneIsIndependent(t *testing.T) {
	c := buildCompound(map[string]Node{"arr": newByteArray([]int8{1, 2})}, []string{"arr"})
	clone := c.clone()
	origArr, _ := c.Get("arr")
	cloneArr, _ := clone.Get("arr")
	cb, _ := cloneArr.ByteArray()
	cb[0] = 9
	ob, _ := origArr.ByteArray()
	if ob[0] == 9 {
		t.Error("clone mutation leaked into original")
	}
}

func TestCompoundNilReceiverIsEmpty(t *testing.T) {
	var c *Compound
	if c.Len() != 0 {
		t.Error("nil Compound should report length 0")
	}
	if !c.IsEmpty() {
		t.Error("nil Compound should report empty")
	}
	if _, ok := c.Get("anything"); ok {
		t.Error("nil Compound should never find a key")
	}
}

func TestNodeAsCompoundTypeMismatch(t *testing.T) {
	n := newByte(1)
	if _, err := n.AsCompound(); err == nil {
		t.Fatal("expected type mismatch")
	} else if tm, ok := err.(*TypeMismatchError); !ok || tm.Found != TagByte || tm.Wanted != TagCompound {
		t.Errorf("unexpected error: %v", err)
	}
}
