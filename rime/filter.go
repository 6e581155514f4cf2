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

package rime

import (
	"cmp"
	"slices"

	"github.com/ianlewis/go-scel/phrase"
)

// Filter selects the entries written to a dictionary.
type Filter struct {
	// MinFreq is the minimum word frequency.
	MinFreq int

	// MinLength is the minimum number of characters in a word.
	MinLength int

	// MaxLength is the maximum number of characters in a word.
	MaxLength int
}

// DefaultFilter drops zero frequency entries and keeps every word length the
// word table decoder produces.
var DefaultFilter = Filter{
	MinFreq:   1,
	MinLength: phrase.MinWordLength,
	MaxLength: phrase.MaxWordLength,
}

// Match reports whether e passes the filter.
func (f Filter) Match(e *phrase.Entry) bool {
	n := e.Len()
	return e.Freq >= f.MinFreq && f.MinLength <= n && n <= f.MaxLength
}

// Select returns the entries matching f ordered by descending frequency.
// Entries with equal frequency keep their relative order. entries is not
// modified.
func Select(entries []*phrase.Entry, f Filter) []*phrase.Entry {
	var selected []*phrase.Entry
	for _, e := range entries {
		if f.Match(e) {
			selected = append(selected, e)
		}
	}
	slices.SortStableFunc(selected, func(a, b *phrase.Entry) int {
		return cmp.Compare(b.Freq, a.Freq)
	})
	return selected
}
