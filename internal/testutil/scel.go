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

// Package testutil builds SCEL fixtures for tests.
package testutil

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"
)

// Layout of a SCEL file.
const (
	WordCountOffset   = 0x124
	NameOffset        = 0x130
	CategoryOffset    = 0x338
	DescriptionOffset = 0x540
	ExamplesOffset    = 0xd40
	PinyinOffset      = 0x1540
	PhraseOffset      = 0x2628
)

// Magic is the SCEL file signature.
var Magic = []byte{0x40, 0x15, 0x00, 0x00, 0x44, 0x43, 0x53, 0x01, 0x01, 0x00, 0x00, 0x00}

// Syllable is a pinyin table record.
type Syllable struct {
	Index  uint16
	Pinyin string
}

// Word is a word record in a word table group.
type Word struct {
	Word string
	Freq uint16

	// ExtLen is the length of the extension block holding the frequency.
	// Defaults to 10.
	ExtLen int
}

// Group is a word table group of homophones.
type Group struct {
	// Count overrides the encoded homophone count. Defaults to len(Words).
	Count int

	Indices []uint16
	Words   []Word
}

// Header is the SCEL header metadata.
type Header struct {
	Name        string
	Category    string
	Description string
	Examples    string
	WordCount   int32
}

// CodeUnits encodes s as little-endian UTF-16.
func CodeUnits(s string) []byte {
	var b []byte
	for _, u := range utf16.Encode([]rune(s)) {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return b
}

func appendUint16(b []byte, n int) []byte {
	if n < 0 || n > math.MaxUint16 {
		panic(fmt.Sprintf("value out of range for uint16: %d", n))
	}
	return binary.LittleEndian.AppendUint16(b, uint16(n))
}

// MakePinyinTable makes a pinyin table from the given syllables.
func MakePinyinTable(syllables []Syllable) []byte {
	b := []byte{}
	for _, s := range syllables {
		data := CodeUnits(s.Pinyin)
		b = binary.LittleEndian.AppendUint16(b, s.Index)
		b = appendUint16(b, len(data))
		b = append(b, data...)
	}
	return b
}

// MakePhraseTable makes a word table from the given groups.
func MakePhraseTable(groups []Group) []byte {
	b := []byte{}
	for _, g := range groups {
		count := g.Count
		if count == 0 {
			count = len(g.Words)
		}
		b = appendUint16(b, count)
		b = appendUint16(b, 2*len(g.Indices))
		for _, i := range g.Indices {
			b = binary.LittleEndian.AppendUint16(b, i)
		}
		for _, w := range g.Words {
			data := CodeUnits(w.Word)
			b = appendUint16(b, len(data))
			b = append(b, data...)

			extLen := w.ExtLen
			if extLen == 0 {
				extLen = 10
			}
			ext := make([]byte, max(extLen, 2))
			binary.LittleEndian.PutUint16(ext, w.Freq)
			b = appendUint16(b, extLen)
			b = append(b, ext[:extLen]...)
		}
	}
	return b
}

// MakeSCEL makes a SCEL file with the pinyin table at PinyinOffset and the
// word table at PhraseOffset.
func MakeSCEL(h *Header, syllables []Syllable, groups []Group) []byte {
	b := make([]byte, PhraseOffset)
	copy(b, Magic)

	if h != nil {
		binary.LittleEndian.PutUint32(b[WordCountOffset:], uint32(h.WordCount))
		putString(b, NameOffset, 0x200, h.Name)
		putString(b, CategoryOffset, 0x200, h.Category)
		putString(b, DescriptionOffset, 0x800, h.Description)
		putString(b, ExamplesOffset, 0x800, h.Examples)
	}

	py := MakePinyinTable(syllables)
	if len(py) > PhraseOffset-PinyinOffset {
		panic(fmt.Sprintf("pinyin table too large: %d", len(py)))
	}
	copy(b[PinyinOffset:], py)

	return append(b, MakePhraseTable(groups)...)
}

func putString(b []byte, offset, size int, s string) {
	data := CodeUnits(s)
	if len(data) > size {
		panic(fmt.Sprintf("string too long: %q", s))
	}
	copy(b[offset:offset+size], data)
}

// WriteTempSCEL writes b to a file with the given name in a temporary
// directory and returns its path.
func WriteTempSCEL(t *testing.T, name string, b []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
