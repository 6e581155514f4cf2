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
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-scel/internal/index"
	"github.com/ianlewis/go-scel/phrase"
	"github.com/ianlewis/go-scel/pinyin"
)

// Ext is the file extension of SCEL files.
const Ext = ".scel"

const (
	pinyinTableOffset = 0x1540
	phraseTableOffset = 0x2628
)

var magic = []byte{0x40, 0x15, 0x00, 0x00, 0x44, 0x43, 0x53, 0x01, 0x01, 0x00, 0x00, 0x00}

var (
	// ErrSCEL is a parent error for all SCEL errors.
	ErrSCEL = errors.New("scel")

	// ErrFormat indicates that the data does not start with the SCEL signature.
	ErrFormat = fmt.Errorf("%w: bad magic data", ErrSCEL)

	// ErrExtension indicates that a file does not have the SCEL extension.
	ErrExtension = fmt.Errorf("%w: bad extension", ErrSCEL)
)

// Stats are diagnostic counts collected while decoding a library.
type Stats struct {
	Pinyin pinyin.Stats
	Phrase phrase.Stats
}

// Dictionary is a decoded SCEL word library.
type Dictionary struct {
	info    Info
	entries []*phrase.Entry
	stats   Stats

	pinyinIndex *index.Index[*phrase.Entry]
	wordIndex   *index.Index[*phrase.Entry]
}

// HasExt reports whether path has the SCEL file extension.
func HasExt(path string) bool {
	ext := filepath.Ext(path)
	return ext == Ext || ext == ".SCEL"
}

// Open reads and decodes the SCEL file at path. The whole file is read into
// memory.
func Open(path string) (*Dictionary, error) {
	if !HasExt(path) {
		return nil, fmt.Errorf("%w: %q", ErrExtension, path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	d, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return d, nil
}

// CheckHeader returns ErrFormat if b does not start with
// the SCEL signature.
func CheckHeader(b []byte) error {
	if len(b) < len(magic) || !bytes.Equal(b[:len(magic)], magic) {
		return ErrFormat
	}
	return nil
}

// Decode decodes a SCEL library held in b. Only a bad signature is an error.
// Malformed table records are skipped and counted in the returned
// Dictionary's Stats.
func Decode(b []byte) (*Dictionary, error) {
	if err := CheckHeader(b); err != nil {
		return nil, err
	}

	d := &Dictionary{
		info: readInfo(b),
	}

	// The pinyin table ends where the word table starts.
	table, pyStats := pinyin.Decode(section(b, pinyinTableOffset, phraseTableOffset))
	d.entries, d.stats.Phrase = phrase.Decode(section(b, phraseTableOffset, len(b)), table)
	d.stats.Pinyin = pyStats

	return d, nil
}

// section returns b[start:end] clamped to the length of b.
func section(b []byte, start, end int) []byte {
	if start >= len(b) {
		return nil
	}
	return b[start:min(end, len(b))]
}

// Info returns the library's header metadata.
func (d *Dictionary) Info() Info {
	return d.info
}

// Entries returns the decoded entries in table order.
func (d *Dictionary) Entries() []*phrase.Entry {
	return d.entries
}

// Stats returns the decoding statistics.
func (d *Dictionary) Stats() Stats {
	return d.stats
}
