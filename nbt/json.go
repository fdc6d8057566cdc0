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
	"bytes"
	"encoding/json"
)

// MarshalJSON renders n as JSON: scalars and arrays map onto their
// natural JSON counterparts, a List becomes a JSON array, and a
// Compound becomes a JSON object whose key order matches insertion
// (first-seen wire) order rather than encoding/json's usual
// alphabetical map-key sort.
//
// This is the materialized-tree counterpart of a streaming ion-to-JSON
// bridge: where that style writes JSON directly off raw TLV bytes, a
// Node here is already fully parsed, so rendering it is ordinary
// recursive json.Marshaler composition instead of a streaming writer.
func (n Node) MarshalJSON() ([]byte, error) {
	switch n.tag {
	case TagByte:
		return json.Marshal(n.v.(int8))
	case TagShort:
		return json.Marshal(n.v.(int16))
	case TagInt:
		return json.Marshal(n.v.(int32))
	case TagLong:
		return json.Marshal(n.v.(int64))
	case TagFloat:
		return json.Marshal(n.v.(float32))
	case TagDouble:
		return json.Marshal(n.v.(float64))
	case TagByteArray:
		return json.Marshal(n.v.([]int8))
	case TagString:
		return json.Marshal(n.v.(string))
	case TagIntArray:
		return json.Marshal(n.v.([]int32))
	case TagLongArray:
		return json.Marshal(n.v.([]int64))
	case TagList:
		return json.Marshal(n.v.(*listData).items)
	case TagCompound:
		return n.v.(*Compound).MarshalJSON()
	default:
		return []byte("null"), nil
	}
}

// MarshalJSON renders c as a JSON object, fields in insertion order.
func (c *Compound) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, f := range c.fields {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(f.Label)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
