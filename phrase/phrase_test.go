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

package phrase_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-scel/internal/testutil"
	"github.com/ianlewis/go-scel/phrase"
	"github.com/ianlewis/go-scel/pinyin"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	table := pinyin.Table{
		1: "ni",
		2: "hao",
		3: "ying",
		4: "xiong",
	}

	tests := []struct {
		name string
		data []byte

		expected []*phrase.Entry
		stats    phrase.Stats
	}{
		{
			name: "empty table",
		},
		{
			name: "single word",
			data: testutil.MakePhraseTable([]testutil.Group{
				{
					Indices: []uint16{1},
					Words:   []testutil.Word{{Word: "你", Freq: 100}},
				},
			}),
			expected: []*phrase.Entry{
				{Word: "你", Pinyin: "ni", Freq: 100},
			},
			stats: phrase.Stats{Entries: 1, Groups: 1},
		},
		{
			name: "homophones",
			data: testutil.MakePhraseTable([]testutil.Group{
				{
					Indices: []uint16{3, 4},
					Words: []testutil.Word{
						{Word: "英雄", Freq: 50},
						{Word: "应雄", Freq: 2},
					},
				},
				{
					Indices: []uint16{2},
					Words:   []testutil.Word{{Word: "好", Freq: 7}},
				},
			}),
			expected: []*phrase.Entry{
				{Word: "英雄", Pinyin: "ying xiong", Freq: 50},
				{Word: "应雄", Pinyin: "ying xiong", Freq: 2},
				{Word: "好", Pinyin: "hao", Freq: 7},
			},
			stats: phrase.Stats{Entries: 3, Groups: 2},
		},
		{
			name: "unknown index dropped",
			data: testutil.MakePhraseTable([]testutil.Group{
				{
					Indices: []uint16{3, 99, 4},
					Words:   []testutil.Word{{Word: "英雄", Freq: 50}},
				},
			}),
			expected: []*phrase.Entry{
				{Word: "英雄", Pinyin: "ying xiong", Freq: 50},
			},
			stats: phrase.Stats{Entries: 1, Groups: 1},
		},
		{
			name: "word length limits",
			data: testutil.MakePhraseTable([]testutil.Group{
				{
					Indices: []uint16{1},
					Words: []testutil.Word{
						{Word: "", Freq: 1},
						{Word: "一二三四五六七八", Freq: 2},
						{Word: "一二三四五六七八九", Freq: 3},
					},
				},
			}),
			expected: []*phrase.Entry{
				{Word: "一二三四五六七八", Pinyin: "ni", Freq: 2},
			},
			stats: phrase.Stats{Entries: 1, Groups: 1},
		},
		{
			name: "long extension block",
			data: testutil.MakePhraseTable([]testutil.Group{
				{
					Indices: []uint16{1},
					Words:   []testutil.Word{{Word: "你", Freq: 9, ExtLen: 20}},
				},
				{
					Indices: []uint16{2},
					Words:   []testutil.Word{{Word: "好", Freq: 8}},
				},
			}),
			expected: []*phrase.Entry{
				{Word: "你", Pinyin: "ni", Freq: 9},
				{Word: "好", Pinyin: "hao", Freq: 8},
			},
			stats: phrase.Stats{Entries: 2, Groups: 2},
		},
		{
			// A one character word with an 8 byte extension block is exactly
			// the 14 bytes skipped for a group without pinyin.
			name: "unresolved group skipped",
			data: testutil.MakePhraseTable([]testutil.Group{
				{
					Indices: []uint16{99},
					Words:   []testutil.Word{{Word: "你", Freq: 100, ExtLen: 8}},
				},
				{
					Indices: []uint16{2},
					Words:   []testutil.Word{{Word: "好", Freq: 7}},
				},
			}),
			expected: []*phrase.Entry{
				{Word: "好", Pinyin: "hao", Freq: 7},
			},
			stats: phrase.Stats{Entries: 1, Groups: 2, Skipped: 1},
		},
		{
			// The second word is truncated. The first word is kept and the
			// remaining bytes are rescanned one byte further on.
			name: "truncated group keeps decoded words",
			data: testutil.MakePhraseTable([]testutil.Group{
				{
					Indices: []uint16{1},
					Words: []testutil.Word{
						{Word: "你", Freq: 100},
						{Word: "呢", Freq: 1},
					},
				},
			})[:24],
			expected: []*phrase.Entry{
				{Word: "你", Pinyin: "ni", Freq: 100},
			},
			stats: phrase.Stats{Entries: 1, Groups: 1, Skipped: 1, Faults: 2},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			entries, stats := phrase.Decode(test.data, table)
			if diff := cmp.Diff(test.expected, entries); diff != "" {
				t.Errorf("Decode (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.stats, stats); diff != "" {
				t.Errorf("Stats (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_pinyinNeverEmpty(t *testing.T) {
	t.Parallel()

	// Groups whose indices all miss the table must not produce entries, no
	// matter how the following bytes are interpreted.
	var groups []testutil.Group
	for i := range 20 {
		groups = append(groups, testutil.Group{
			Indices: []uint16{uint16(100 + i)},
			Words:   []testutil.Word{{Word: strings.Repeat("字", i%9+1), Freq: uint16(i)}},
		})
	}
	groups = append(groups, testutil.Group{
		Indices: []uint16{1},
		Words:   []testutil.Word{{Word: "你", Freq: 1}},
	})

	entries, _ := phrase.Decode(testutil.MakePhraseTable(groups), pinyin.Table{1: "ni"})
	for _, e := range entries {
		if e.Pinyin == "" {
			t.Errorf("entry %q has empty pinyin", e.Word)
		}
		if n := e.Len(); n < phrase.MinWordLength || n > phrase.MaxWordLength {
			t.Errorf("entry %q has length %d", e.Word, n)
		}
	}
}

func TestEntry_String(t *testing.T) {
	t.Parallel()

	e := &phrase.Entry{Word: "英雄", Pinyin: "ying xiong", Freq: 50}
	if diff := cmp.Diff("英雄\tying xiong\t50", e.String()); diff != "" {
		t.Fatalf("String (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, e.Len()); diff != "" {
		t.Fatalf("Len (-want, +got):\n%s", diff)
	}
}
