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

// Package phrase implements decoding of the SCEL word table.
//
// The word table is a sequence of homophone groups. Each group comes in four
// parts:
//  1. The count: a little-endian uint16 number of words in the group.
//  2. The index length: a little-endian uint16 byte length of the index list.
//  3. The index list: little-endian uint16 pinyin table indices.
//  4. The words: count word records.
//
// Each word record holds a uint16 byte length, the word as 16-bit code units,
// a uint16 extension length and an extension block that starts with the
// uint16 word frequency.
package phrase

import (
	"strconv"
	"unicode/utf8"

	"github.com/ianlewis/go-scel/internal/codeunit"
	"github.com/ianlewis/go-scel/internal/cursor"
	"github.com/ianlewis/go-scel/pinyin"
)

const (
	// MinWordLength is the minimum number of characters in a decoded word.
	MinWordLength = 1

	// MaxWordLength is the maximum number of characters in a decoded word.
	MaxWordLength = 8

	// unresolvedWordSize is the number of bytes skipped per word when none of
	// a group's pinyin indices resolve. It assumes 4 bytes of length fields
	// and 10 bytes of word and extension data, which does not hold for most
	// words.
	unresolvedWordSize = 4 + 10
)

// Entry is a decoded word.
type Entry struct {
	// Word is the word text.
	Word string

	// Pinyin is the space separated pinyin of the word.
	Pinyin string

	// Freq is the word frequency.
	Freq int
}

// Len returns the number of characters in the word.
func (e *Entry) Len() int {
	return utf8.RuneCountInString(e.Word)
}

// String returns the entry as a tab separated line without a line terminator.
func (e *Entry) String() string {
	return e.Word + "\t" + e.Pinyin + "\t" + strconv.Itoa(e.Freq)
}

// Stats are diagnostic counts collected while decoding a word table.
type Stats struct {
	// Entries is the number of entries decoded.
	Entries int

	// Groups is the number of groups read, including skipped groups.
	Groups int

	// Skipped is the number of groups skipped because none of their pinyin
	// indices resolved.
	Skipped int

	// Faults is the number of malformed or truncated groups.
	Faults int
}

// Decode decodes the word table in b, resolving pinyin indices against t.
//
// A malformed group is retried one byte past its start. Entries decoded from
// a group before it turned out to be malformed are kept.
func Decode(b []byte, t pinyin.Table) ([]*Entry, Stats) {
	var entries []*Entry
	var stats Stats

	c := cursor.New(b)
	stats.Groups, stats.Faults = cursor.Scan(c, func(c *cursor.Cursor) bool {
		count, ok := c.Uint16()
		if !ok {
			return false
		}
		indexLen, ok := c.Uint16()
		if !ok {
			return false
		}
		indices := make([]uint16, indexLen/2)
		for i := range indices {
			if indices[i], ok = c.Uint16(); !ok {
				return false
			}
		}

		py := t.Join(indices)
		if py == "" {
			c.Skip(int(count) * unresolvedWordSize)
			stats.Skipped++
			return true
		}

		for range count {
			wordLen, ok := c.Uint16()
			if !ok {
				return false
			}
			data, ok := c.Bytes(int(wordLen))
			if !ok {
				return false
			}
			extLen, ok := c.Uint16()
			if !ok {
				return false
			}
			freq, ok := c.PeekUint16()
			if !ok {
				return false
			}
			if _, ok := c.Bytes(int(extLen)); !ok {
				return false
			}

			e := &Entry{
				Word:   codeunit.Decode(data),
				Pinyin: py,
				Freq:   int(freq),
			}
			if n := e.Len(); n < MinWordLength || n > MaxWordLength {
				continue
			}
			entries = append(entries, e)
		}
		return true
	})
	stats.Entries = len(entries)

	return entries, stats
}
