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
	"fmt"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-scel/internal/folding"
	"github.com/ianlewis/go-scel/internal/index"
	"github.com/ianlewis/go-scel/phrase"
)

// Search returns the entries whose word equals query or whose pinyin matches
// query. Pinyin matching ignores case, whitespace and apostrophes, so
// "yingxiong" and "Ying'Xiong" both match "ying xiong". Pinyin matches are
// returned before word matches, each in table order. Search builds its
// indexes on first use and is not safe for concurrent use.
func (d *Dictionary) Search(query string) ([]*phrase.Entry, error) {
	d.buildIndex()

	folded, _, err := transform.String(folding.Pinyin(), query)
	if err != nil {
		return nil, fmt.Errorf("folding query %q: %w", query, err)
	}

	var entries []*phrase.Entry
	if folded != "" {
		entries = append(entries, d.pinyinIndex.Search(folded)...)
	}
	for _, e := range d.wordIndex.Search(query) {
		if foldPinyin(e) != folded {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// SearchPrefix returns the entries whose folded pinyin starts with the folded
// prefix, ordered by pinyin. An empty prefix matches nothing. Like Search, it
// is not safe for concurrent use.
func (d *Dictionary) SearchPrefix(prefix string) ([]*phrase.Entry, error) {
	d.buildIndex()

	folded, _, err := transform.String(folding.Pinyin(), prefix)
	if err != nil {
		return nil, fmt.Errorf("folding prefix %q: %w", prefix, err)
	}
	if folded == "" {
		return nil, nil
	}
	return d.pinyinIndex.Prefix(folded), nil
}

func (d *Dictionary) buildIndex() {
	if d.pinyinIndex != nil {
		return
	}
	d.pinyinIndex = index.New(d.entries, foldPinyin)
	d.wordIndex = index.New(d.entries, func(e *phrase.Entry) string {
		return e.Word
	})
}

func foldPinyin(e *phrase.Entry) string {
	// Folding only fails on a transformer error, which neither the case
	// folder nor the separator folder returns at EOF.
	s, _, _ := transform.String(folding.Pinyin(), e.Pinyin)
	return s
}
