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

// Package folding implements text folding for pinyin lookups.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

// SeparatorFolder removes syllable separators from the input. Separators are
// whitespace, apostrophes (as in "xi'an") and NUL characters left over from
// padded fields.
type SeparatorFolder struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (SeparatorFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])
		if isSeparator(c) {
			nSrc += size
			continue
		}

		// NOTE: size cannot be used for the output length because c could be
		// utf8.RuneError in which case size is 1 but the encoded length is 3.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
	}

	return nDst, nSrc, nil
}

func isSeparator(c rune) bool {
	return c == '\'' || c == 0 || unicode.IsSpace(c)
}

// Pinyin returns a [transform.Transformer] that case folds the input and
// removes syllable separators so that "Ying Xiong", "ying'xiong" and
// "yingxiong" fold to the same value.
func Pinyin() transform.Transformer {
	return transform.Chain(cases.Fold(), SeparatorFolder{})
}
