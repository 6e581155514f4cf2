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

package index

import (
	"slices"
	"sort"
	"strings"
)

type item[V any] struct {
	key   string
	value V
}

// Index is a generic sorted array index over string keys. Values with equal
// keys keep the order they were given in.
type Index[V any] struct {
	items []item[V]
}

// New creates an index of values keyed by key. key is called once per value.
func New[V any](values []V, key func(V) string) *Index[V] {
	items := make([]item[V], 0, len(values))
	for _, v := range values {
		items = append(items, item[V]{
			key:   key(v),
			value: v,
		})
	}
	slices.SortStableFunc(items, func(a, b item[V]) int {
		return strings.Compare(a.key, b.key)
	})

	return &Index[V]{
		items: items,
	}
}

// Search performs a binary search over the index and returns the values whose
// key equals query.
func (idx *Index[V]) Search(query string) []V {
	return idx.search(query, func(key string) bool {
		return key == query
	})
}

// Prefix returns the values whose key starts with prefix.
func (idx *Index[V]) Prefix(prefix string) []V {
	return idx.search(prefix, func(key string) bool {
		return strings.HasPrefix(key, prefix)
	})
}

func (idx *Index[V]) search(query string, match func(string) bool) []V {
	i := sort.Search(len(idx.items), func(i int) bool {
		return idx.items[i].key >= query
	})

	var values []V
	for ; i < len(idx.items) && match(idx.items[i].key); i++ {
		values = append(values, idx.items[i].value)
	}
	return values
}
