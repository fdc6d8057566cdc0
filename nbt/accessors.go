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

// The typed accessors below extract a node's primitive payload by
// value, failing with *TypeMismatchError when the node's tag does not
// match. They mirror the shape of ion.Datum's Int/Float/String/...
// accessors: a (value, ok) pair for the boolean-check style plus an
// As-prefixed variant that returns an error for callers who'd rather
// propagate the failure than branch on it.

func (n Node) Byte() (int8, bool) {
	v, ok := n.v.(int8)
	return v, ok && n.tag == TagByte
}

func (n Node) AsByte() (int8, error) {
	v, ok := n.Byte()
	if !ok {
		return 0, &TypeMismatchError{Func: "AsByte", Wanted: TagByte, Found: n.tag}
	}
	return v, nil
}

func (n Node) Short() (int16, bool) {
	v, ok := n.v.(int16)
	return v, ok && n.tag == TagShort
}

func (n Node) AsShort() (int16, error) {
	v, ok := n.Short()
	if !ok {
		return 0, &TypeMismatchError{Func: "AsShort", Wanted: TagShort, Found: n.tag}
	}
	return v, nil
}

func (n Node) Int() (int32, bool) {
	v, ok := n.v.(int32)
	return v, ok && n.tag == TagInt
}

func (n Node) AsInt() (int32, error) {
	v, ok := n.Int()
	if !ok {
		return 0, &TypeMismatchError{Func: "AsInt", Wanted: TagInt, Found: n.tag}
	}
	return v, nil
}

func (n Node) Long() (int64, bool) {
	v, ok := n.v.(int64)
	return v, ok && n.tag == TagLong
}

func (n Node) AsLong() (int64, error) {
	v, ok := n.Long()
	if !ok {
		return 0, &TypeMismatchError{Func: "AsLong", Wanted: TagLong, Found: n.tag}
	}
	return v, nil
}

func (n Node) Float() (float32, bool) {
	v, ok := n.v.(float32)
	return v, ok && n.tag == TagFloat
}

func (n Node) AsFloat() (float32, error) {
	v, ok := n.Float()
	if !ok {
		return 0, &TypeMismatchError{Func: "AsFloat", Wanted: TagFloat, Found: n.tag}
	}
	return v, nil
}

func (n Node) Double() (float64, bool) {
	v, ok := n.v.(float64)
	return v, ok && n.tag == TagDouble
}

func (n Node) AsDouble() (float64, error) {
	v, ok := n.Double()
	if !ok {
		return 0, &TypeMismatchError{Func: "AsDouble", Wanted: TagDouble, Found: n.tag}
	}
	return v, nil
}

func (n Node) ByteArray() ([]int8, bool) {
	v, ok := n.v.([]int8)
	return v, ok && n.tag == TagByteArray
}

func (n Node) AsByteArray() ([]int8, error) {
	v, ok := n.ByteArray()
	if !ok {
		return nil, &TypeMismatchError{Func: "AsByteArray", Wanted: TagByteArray, Found: n.tag}
	}
	return v, nil
}

func (n Node) String_() (string, bool) {
	v, ok := n.v.(string)
	return v, ok && n.tag == TagString
}

// AsString extracts a TagString payload. (Named AsString rather than
// paired with a same-named boolean accessor because Node already
// defines String() as the debug pretty-printer required by fmt.Stringer;
// use Node.String_ for the boolean-check form.)
func (n Node) AsString() (string, error) {
	v, ok := n.String_()
	if !ok {
		return "", &TypeMismatchError{Func: "AsString", Wanted: TagString, Found: n.tag}
	}
	return v, nil
}

func (n Node) IntArray() ([]int32, bool) {
	v, ok := n.v.([]int32)
	return v, ok && n.tag == TagIntArray
}

func (n Node) AsIntArray() ([]int32, error) {
	v, ok := n.IntArray()
	if !ok {
		return nil, &TypeMismatchError{Func: "AsIntArray", Wanted: TagIntArray, Found: n.tag}
	}
	return v, nil
}

func (n Node) LongArray() ([]int64, bool) {
	v, ok := n.v.([]int64)
	return v, ok && n.tag == TagLongArray
}

func (n Node) AsLongArray() ([]int64, error) {
	v, ok := n.LongArray()
	if !ok {
		return nil, &TypeMismatchError{Func: "AsLongArray", Wanted: TagLongArray, Found: n.tag}
	}
	return v, nil
}
