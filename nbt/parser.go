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
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// parser turns a byte stream into a Node tree. It never seeks and never
// looks more than one byte ahead of the last byte it consumed.
type parser struct {
	r   *bufio.Reader
	off int64
}

func newParser(r io.Reader) *parser {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &parser{r: br}
}

func (p *parser) fail(kind Kind, context string, err error) error {
	return &ParseError{Kind: kind, Context: context, Offset: p.off, Err: err}
}

func (p *parser) readN(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := io.ReadFull(p.r, buf)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, p.fail(TruncatedInput, fmt.Sprintf("reading %d byte(s)", n), nil)
		}
		var ce flate.CorruptInputError
		if errors.As(err, &ce) || errors.Is(err, gzip.ErrChecksum) || errors.Is(err, gzip.ErrHeader) ||
			errors.Is(err, zlib.ErrChecksum) || errors.Is(err, zlib.ErrHeader) {
			return nil, p.fail(CorruptInput, "decompressing", err)
		}
		return nil, p.fail(IoError, "read", err)
	}
	p.off += int64(n)
	return buf, nil
}

func (p *parser) readTag() (Tag, error) {
	b, err := p.readN(1)
	if err != nil {
		return 0, err
	}
	t := Tag(b[0])
	if !t.Valid() {
		return 0, p.fail(UnknownTag, fmt.Sprintf("tag byte 0x%02X", b[0]), nil)
	}
	return t, nil
}

func (p *parser) readInt32() (int32, error) {
	b, err := p.readN(4)
	if err != nil {
		return 0, err
	}
	return decodeInt32BE(b), nil
}

func (p *parser) readString() (string, error) {
	lb, err := p.readN(2)
	if err != nil {
		return "", err
	}
	n := int(decodeUint16BE(lb))
	if n == 0 {
		return "", nil
	}
	sb, err := p.readN(n)
	if err != nil {
		return "", err
	}
	return string(sb), nil
}

// readScalar reads the payload of any non-composite tag. It never
// recurses and never touches the control stack; List and Compound are
// handled entirely by parseContainer.
func (p *parser) readScalar(tag Tag) (Node, error) {
	switch tag {
	case TagByte:
		b, err := p.readN(1)
		if err != nil {
			return Node{}, err
		}
		return newByte(int8(b[0])), nil
	case TagShort:
		b, err := p.readN(2)
		if err != nil {
			return Node{}, err
		}
		return newShort(decodeInt16BE(b)), nil
	case TagInt:
		b, err := p.readN(4)
		if err != nil {
			return Node{}, err
		}
		return newInt(decodeInt32BE(b)), nil
	case TagLong:
		b, err := p.readN(8)
		if err != nil {
			return Node{}, err
		}
		return newLong(decodeInt64BE(b)), nil
	case TagFloat:
		b, err := p.readN(4)
		if err != nil {
			return Node{}, err
		}
		return newFloat(decodeFloat32BE(b)), nil
	case TagDouble:
		b, err := p.readN(8)
		if err != nil {
			return Node{}, err
		}
		return newDouble(decodeFloat64BE(b)), nil
	case TagByteArray:
		n, err := p.readInt32()
		if err != nil {
			return Node{}, err
		}
		if n < 0 {
			n = 0
		}
		b, err := p.readN(int(n))
		if err != nil {
			return Node{}, err
		}
		out := make([]int8, len(b))
		for i, c := range b {
			out[i] = int8(c)
		}
		return newByteArray(out), nil
	case TagString:
		s, err := p.readString()
		if err != nil {
			return Node{}, err
		}
		return newString(s), nil
	case TagIntArray:
		n, err := p.readInt32()
		if err != nil {
			return Node{}, err
		}
		if n < 0 {
			n = 0
		}
		out := make([]int32, n)
		for i := range out {
			b, err := p.readN(4)
			if err != nil {
				return Node{}, err
			}
			out[i] = decodeInt32BE(b)
		}
		return newIntArray(out), nil
	case TagLongArray:
		n, err := p.readInt32()
		if err != nil {
			return Node{}, err
		}
		if n < 0 {
			n = 0
		}
		out := make([]int64, n)
		for i := range out {
			b, err := p.readN(8)
			if err != nil {
				return Node{}, err
			}
			out[i] = decodeInt64BE(b)
		}
		return newLongArray(out), nil
	default:
		return Node{}, p.fail(UnknownTag, "scalar dispatch", nil)
	}
}

// frameKind distinguishes the two recursive container states the
// pushdown engine tracks on its explicit stack.
type frameKind int

const (
	frameList frameKind = iota
	frameCompound
)

// frame is one level of the control stack: either a List mid-collection
// of its elements, or a Compound mid-collection of its fields. Nested
// Lists and Compounds are handled by pushing further frames rather than
// by native call recursion.
type frame struct {
	kind frameKind

	// frameList
	elem      Tag
	remaining int32
	items     []Node

	// frameCompound
	compound     *Compound
	pendingName  string
	implicitRoot bool // root body under the implicit-root policy
}

const maxPreallocate = 4096

func newListFrame(elem Tag, count int32) frame {
	if count < 0 {
		count = 0
	}
	prealloc := int(count)
	if prealloc > maxPreallocate {
		prealloc = maxPreallocate
	}
	return frame{kind: frameList, elem: elem, remaining: count, items: make([]Node, 0, prealloc)}
}

func newCompoundFrame() frame {
	return frame{kind: frameCompound, compound: newCompoundBuilder()}
}

// readListHeader reads a list's element tag and declared count
// immediately after the List tag byte has been consumed (either as a
// top-level value, a list element, or a compound entry's value).
func (p *parser) readListHeader() (frame, error) {
	elem, err := p.readTag()
	if err != nil {
		return frame{}, err
	}
	count, err := p.readInt32()
	if err != nil {
		return frame{}, err
	}
	if elem == TagEnd && count > 0 {
		return frame{}, p.fail(UnexpectedEnd, "list with element tag 0 and nonzero count", nil)
	}
	return newListFrame(elem, count), nil
}

// pushChild consumes whatever header a nested List needs (a Compound
// needs none beyond its own entries) and pushes the resulting frame.
func (p *parser) pushChild(stack *[]frame, tag Tag) error {
	switch tag {
	case TagList:
		f, err := p.readListHeader()
		if err != nil {
			return err
		}
		*stack = append(*stack, f)
	case TagCompound:
		*stack = append(*stack, newCompoundFrame())
	}
	return nil
}

// deliver incorporates a fully-built child Node into its parent frame:
// appended to a List's items (decrementing the remaining count), or
// inserted under the pending name of a Compound. A Compound that
// already holds that name silently discards the new value, per
// first-write-wins.
func deliver(parent *frame, child Node) {
	switch parent.kind {
	case frameList:
		parent.items = append(parent.items, child)
		parent.remaining--
	case frameCompound:
		parent.compound.insert(parent.pendingName, child)
		parent.pendingName = ""
	}
}

// parseContainer drives the pushdown automaton for a single top-level
// aggregate (root is always a List or Compound frame). One loop
// iteration either advances the frame on top of the stack by one wire
// element, or — when a frame is complete — pops it and delivers the
// finished Node to whatever is now on top, or returns it if the stack
// has emptied.
func (p *parser) parseContainer(root frame) (Node, error) {
	stack := []frame{root}

	for {
		top := &stack[len(stack)-1]

		switch top.kind {
		case frameList:
			if top.remaining <= 0 {
				node := newList(top.elem, top.items)
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					return node, nil
				}
				deliver(&stack[len(stack)-1], node)
				continue
			}
			if top.elem.Composite() {
				if err := p.pushChild(&stack, top.elem); err != nil {
					return Node{}, err
				}
				continue
			}
			v, err := p.readScalar(top.elem)
			if err != nil {
				return Node{}, err
			}
			top.items = append(top.items, v)
			top.remaining--

		case frameCompound:
			if top.implicitRoot {
				// A clean end of stream also closes the implicit root body.
				if _, err := p.r.Peek(1); err == io.EOF {
					return newCompound(top.compound), nil
				}
			}
			tag, err := p.readTag()
			if err != nil {
				return Node{}, err
			}
			if tag == TagEnd {
				node := newCompound(top.compound)
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					return node, nil
				}
				deliver(&stack[len(stack)-1], node)
				continue
			}
			name, err := p.readString()
			if err != nil {
				return Node{}, err
			}
			if tag.Composite() {
				top.pendingName = name
				if err := p.pushChild(&stack, tag); err != nil {
					return Node{}, err
				}
				continue
			}
			v, err := p.readScalar(tag)
			if err != nil {
				return Node{}, err
			}
			top.compound.insert(name, v)
		}
	}
}

// parseValue reads the payload belonging to an already-consumed tag,
// entering the stack machine for List/Compound and going straight
// through the scalar codecs for everything else.
func (p *parser) parseValue(tag Tag) (Node, error) {
	switch tag {
	case TagList:
		f, err := p.readListHeader()
		if err != nil {
			return Node{}, err
		}
		return p.parseContainer(f)
	case TagCompound:
		return p.parseContainer(newCompoundFrame())
	default:
		return p.readScalar(tag)
	}
}

// parseImplicit begins directly in the compound-body state, the
// on-disk convention where a tool has already peeled the outer
// tag+name wrapper off a document. The root body ends at its End tag
// or, when that tag is absent, at a clean end of stream.
func (p *parser) parseImplicit() (Node, error) {
	root := newCompoundFrame()
	root.implicitRoot = true
	return p.parseContainer(root)
}

// parseExplicit begins by reading a tag byte, then (for any non-End
// tag) the root's name, then the value itself — the full wire form of
// a document, wrapper included.
func (p *parser) parseExplicit() (Node, error) {
	tag, err := p.readTag()
	if err != nil {
		return Node{}, err
	}
	if tag == TagEnd {
		return Node{}, p.fail(UnexpectedEnd, "top-level tag", nil)
	}
	if _, err := p.readString(); err != nil {
		return Node{}, err
	}
	return p.parseValue(tag)
}
