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

package pinyin_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-scel/internal/testutil"
	"github.com/ianlewis/go-scel/pinyin"
)

func concat(parts ...[]byte) []byte {
	var b []byte
	for _, p := range parts {
		b = append(b, p...)
	}
	return b
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte

		expected pinyin.Table
		stats    pinyin.Stats
	}{
		{
			name:     "empty table",
			data:     nil,
			expected: pinyin.Table{},
		},
		{
			name: "well formed",
			data: testutil.MakePinyinTable([]testutil.Syllable{
				{Index: 1, Pinyin: "ni"},
				{Index: 2, Pinyin: "hao"},
			}),
			expected: pinyin.Table{
				1: "ni",
				2: "hao",
			},
			stats: pinyin.Stats{Syllables: 2},
		},
		{
			name: "duplicate index",
			data: testutil.MakePinyinTable([]testutil.Syllable{
				{Index: 1, Pinyin: "ni"},
				{Index: 1, Pinyin: "nin"},
			}),
			expected: pinyin.Table{
				1: "nin",
			},
			stats: pinyin.Stats{Syllables: 2},
		},
		{
			name: "empty syllable",
			data: testutil.MakePinyinTable([]testutil.Syllable{
				{Index: 7, Pinyin: ""},
			}),
			expected: pinyin.Table{
				7: "",
			},
			stats: pinyin.Stats{Syllables: 1},
		},
		{
			// The garbage bytes and the start of the next record read as
			// lengths that run past the end of the table, so each is
			// skipped until the stream realigns on the second record.
			name: "garbage between records",
			data: concat(
				testutil.MakePinyinTable([]testutil.Syllable{{Index: 1, Pinyin: "ni"}}),
				[]byte{0xff, 0xff, 0xff},
				testutil.MakePinyinTable([]testutil.Syllable{{Index: 413, Pinyin: "zuo"}}),
			),
			expected: pinyin.Table{
				1:   "ni",
				413: "zuo",
			},
			stats: pinyin.Stats{Syllables: 2, Faults: 3},
		},
		{
			name: "truncated record",
			data: concat(
				testutil.MakePinyinTable([]testutil.Syllable{{Index: 1, Pinyin: "ni"}}),
				[]byte{0x02, 0x00, 0x05},
			),
			expected: pinyin.Table{
				1: "ni",
			},
			stats: pinyin.Stats{Syllables: 1, Faults: 3},
		},
		{
			name:     "truncated syllable",
			data:     testutil.MakePinyinTable([]testutil.Syllable{{Index: 1, Pinyin: "ni"}})[:7],
			expected: pinyin.Table{},
			// Every start offset in the 7 bytes fails.
			stats: pinyin.Stats{Faults: 7},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			table, stats := pinyin.Decode(test.data)
			if diff := cmp.Diff(test.expected, table); diff != "" {
				t.Errorf("Decode (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.stats, stats); diff != "" {
				t.Errorf("Stats (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestTable_Join(t *testing.T) {
	t.Parallel()

	table := pinyin.Table{
		1: "ying",
		2: "xiong",
	}

	tests := []struct {
		name    string
		indices []uint16

		expected string
	}{
		{
			name:     "in order",
			indices:  []uint16{1, 2},
			expected: "ying xiong",
		},
		{
			name:     "index order is kept",
			indices:  []uint16{2, 1},
			expected: "xiong ying",
		},
		{
			name:     "unknown index dropped",
			indices:  []uint16{1, 99, 2},
			expected: "ying xiong",
		},
		{
			name:     "nothing resolved",
			indices:  []uint16{99},
			expected: "",
		},
		{
			name:     "no indices",
			indices:  nil,
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, table.Join(test.indices)); diff != "" {
				t.Fatalf("Join (-want, +got):\n%s", diff)
			}
		})
	}
}
