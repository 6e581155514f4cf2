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

package scel

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Header metadata fields. Text fields are fixed size UTF-16 little-endian
// text padded with NUL characters.
const (
	wordCountOffset = 0x124

	nameOffset        = 0x130
	nameSize          = 0x200
	categoryOffset    = 0x338
	categorySize      = 0x200
	descriptionOffset = 0x540
	descriptionSize   = 0x800
	examplesOffset    = 0xd40
	examplesSize      = 0x800
)

// Info is the SCEL header metadata. Fields are empty when the file is too
// short to hold them.
type Info struct {
	// Name is the library name.
	Name string

	// Category is the library category.
	Category string

	// Description is the library description. Descriptions are entered on a
	// web form and may contain HTML markup.
	Description string

	// Examples is a list of sample words from the library.
	Examples string

	// WordCount is the word count declared in the header. It is not checked
	// against the word table.
	WordCount int
}

func readInfo(b []byte) Info {
	var info Info
	if wc := section(b, wordCountOffset, wordCountOffset+4); len(wc) == 4 {
		info.WordCount = int(int32(binary.LittleEndian.Uint32(wc)))
	}
	info.Name = readString(b, nameOffset, nameSize)
	info.Category = readString(b, categoryOffset, categorySize)
	info.Description = readString(b, descriptionOffset, descriptionSize)
	info.Examples = readString(b, examplesOffset, examplesSize)
	return info
}

// readString reads a NUL padded text field. Unlike table text, header text is
// decoded as UTF-16 with surrogate pairs combined.
func readString(b []byte, offset, size int) string {
	data := section(b, offset, offset+size)
	if len(data) == 0 {
		return ""
	}

	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	s, err := dec.String(string(data))
	if err != nil {
		return ""
	}
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
