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

// Package pinyin implements decoding of the SCEL pinyin table.
//
// The pinyin table maps small integer indices to pinyin syllables. The word
// table refers to syllables by index. Each table record comes in three parts:
//  1. The index: a little-endian uint16.
//  2. The length: a little-endian uint16 byte length of the syllable.
//  3. The syllable: length bytes of little-endian 16-bit code units.
//
// Records are read back to back until the end of the table. A record that
// runs past the end of the table is skipped one byte at a time until the
// stream realigns.
package pinyin

import (
	"strings"

	"github.com/ianlewis/go-scel/internal/codeunit"
	"github.com/ianlewis/go-scel/internal/cursor"
)

// Table maps pinyin indices to syllables. A Table is read-only once Decode
// returns it.
type Table map[uint16]string

// Stats are diagnostic counts collected while decoding a pinyin table.
type Stats struct {
	// Syllables is the number of records decoded.
	Syllables int

	// Faults is the number of malformed or truncated records skipped.
	Faults int
}

// Decode decodes the pinyin table records in b. Later records replace earlier
// records with the same index.
func Decode(b []byte) (Table, Stats) {
	t := Table{}
	c := cursor.New(b)
	n, faults := cursor.Scan(c, func(c *cursor.Cursor) bool {
		index, ok := c.Uint16()
		if !ok {
			return false
		}
		size, ok := c.Uint16()
		if !ok {
			return false
		}
		data, ok := c.Bytes(int(size))
		if !ok {
			return false
		}
		t[index] = codeunit.Decode(data)
		return true
	})

	return t, Stats{
		Syllables: n,
		Faults:    faults,
	}
}

// Join resolves indices against the table and joins the syllables with a
// single space in index order. Indices missing from the table are dropped.
func (t Table) Join(indices []uint16) string {
	syllables := make([]string, 0, len(indices))
	for _, i := range indices {
		if s, ok := t[i]; ok {
			syllables = append(syllables, s)
		}
	}
	return strings.Join(syllables, " ")
}
