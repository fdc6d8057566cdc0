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

import "fmt"

// Tag identifies the wire type of an NBT value. It is the one-byte
// discriminant that precedes every named entry in a Compound and every
// root value under the explicit parsing policy.
type Tag byte

const (
	TagEnd       Tag = 0x00
	TagByte      Tag = 0x01
	TagShort     Tag = 0x02
	TagInt       Tag = 0x03
	TagLong      Tag = 0x04
	TagFloat     Tag = 0x05
	TagDouble    Tag = 0x06
	TagByteArray Tag = 0x07
	TagString    Tag = 0x08
	TagList      Tag = 0x09
	TagCompound  Tag = 0x0A
	TagIntArray  Tag = 0x0B
	TagLongArray Tag = 0x0C
)

var tagNames = [...]string{
	TagEnd:       "End",
	TagByte:      "Byte",
	TagShort:     "Short",
	TagInt:       "Int",
	TagLong:      "Long",
	TagFloat:     "Float",
	TagDouble:    "Double",
	TagByteArray: "ByteArray",
	TagString:    "String",
	TagList:      "List",
	TagCompound:  "Compound",
	TagIntArray:  "IntArray",
	TagLongArray: "LongArray",
}

// String returns the tag's canonical name, e.g. "Compound", or a
// hex-escaped placeholder for a value outside 0x00..0x0C.
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(0x%02x)", byte(t))
}

// Valid reports whether t is one of the twelve wire tags or the
// structural End tag (0x00..0x0C).
func (t Tag) Valid() bool {
	return t <= TagLongArray
}

// Composite reports whether values of this tag own child Nodes.
func (t Tag) Composite() bool {
	return t == TagList || t == TagCompound
}
