// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cursor implements bounds-checked little-endian reads over an
// in-memory table.
//
// Reads never panic. A read that would run past the end of the buffer fails
// and leaves the cursor where it was. Scan drives a record decoder over the
// whole buffer and resynchronizes after a malformed record by moving one byte
// past the start of that record.
package cursor

import (
	"encoding/binary"
)

// Cursor reads from a byte slice starting at offset zero.
type Cursor struct {
	b   []byte
	pos int
}

// New returns a new Cursor over b.
func New(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Pos returns the current offset into the buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.b) - c.pos
}

// Done reports whether the cursor has reached the end of the buffer.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.b)
}

// Seek moves the cursor to pos. Offsets past the end of the buffer are clamped
// to the end.
func (c *Cursor) Seek(pos int) {
	c.pos = max(0, min(pos, len(c.b)))
}

// Skip advances the cursor by n bytes, stopping at the end of the buffer.
func (c *Cursor) Skip(n int) {
	c.Seek(c.pos + n)
}

// Uint16 reads a little-endian uint16.
func (c *Cursor) Uint16() (uint16, bool) {
	v, ok := c.PeekUint16()
	if ok {
		c.pos += 2
	}
	return v, ok
}

// PeekUint16 reads a little-endian uint16 without advancing the cursor.
func (c *Cursor) PeekUint16() (uint16, bool) {
	if c.Len() < 2 {
		return 0, false
	}
	return binary.LittleEndian.Uint16(c.b[c.pos:]), true
}

// Bytes reads the next n bytes. The returned slice aliases the buffer.
func (c *Cursor) Bytes(n int) ([]byte, bool) {
	if n < 0 || c.Len() < n {
		return nil, false
	}
	b := c.b[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, true
}

// Scan calls read until the cursor reaches the end of the buffer. read
// decodes a single record and reports whether the record was well formed.
// When read fails the cursor is moved to one byte past the start of the
// failed record and scanning resumes from there. A record that consumes no
// bytes is treated as malformed.
//
// Scan returns the number of records read successfully and the number of
// failed attempts.
func Scan(c *Cursor, read func(*Cursor) bool) (ok, faults int) {
	for !c.Done() {
		start := c.pos
		if read(c) && c.pos > start {
			ok++
			continue
		}
		faults++
		c.Seek(start + 1)
	}
	return ok, faults
}
