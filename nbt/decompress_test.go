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
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

func TestDetectFramingRaw(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader([]byte{0x0A, 0x00, 0x00, 0x00}))
	f, err := detectFraming(r)
	if err != nil {
		t.Fatal(err)
	}
	if f != FramingRaw {
		t.Errorf("got %s, want raw", f)
	}
	// peeking must not consume input
	b, _ := r.ReadByte()
	if b != 0x0A {
		t.Error("detectFraming should not consume bytes")
	}
}

func TestDetectFramingGzip(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	w.Write([]byte{0x0A})
	w.Close()

	r := bufio.NewReader(bytes.NewReader(buf.Bytes()))
	f, err := detectFraming(r)
	if err != nil {
		t.Fatal(err)
	}
	if f != FramingGzip {
		t.Errorf("got %s, want gzip", f)
	}
}

func TestDetectFramingZlib(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write([]byte{0x0A})
	w.Close()

	r := bufio.NewReader(bytes.NewReader(buf.Bytes()))
	f, err := detectFraming(r)
	if err != nil {
		t.Fatal(err)
	}
	if f != FramingZlib {
		t.Errorf("got %s, want zlib", f)
	}
}

func TestAutoDecompressRoundTripsGzip(t *testing.T) {
	payload := []byte{0x01, 0x2A}
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	w.Write(payload)
	w.Close()

	r, framing, err := autoDecompress(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if framing != FramingGzip {
		t.Errorf("framing = %s, want gzip", framing)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("got %v, want %v", got, payload)
	}
}

func TestAutoDecompressPassesThroughRaw(t *testing.T) {
	payload := []byte{0x01, 0x2A}
	r, framing, err := autoDecompress(bytes.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	if framing != FramingRaw {
		t.Errorf("framing = %s, want raw", framing)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("got %v, want %v", got, payload)
	}
}
