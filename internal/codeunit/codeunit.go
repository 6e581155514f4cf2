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

// Package codeunit decodes SCEL text fields.
//
// SCEL stores text as little-endian 16-bit code units. Each code unit is
// decoded to exactly one character. Surrogate pairs are not combined, so a
// character outside the Basic Multilingual Plane decodes to two characters.
// Go strings cannot hold unpaired surrogates and each surrogate code unit is
// emitted as U+FFFD. The number of characters always equals the number of
// code units, which keeps word length checks stable.
package codeunit

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Decoder is a [transform.Transformer] that converts little-endian 16-bit
// code units to UTF-8. A trailing odd byte is dropped at EOF.
type Decoder struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (Decoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc+1 < len(src) {
		r := rune(binary.LittleEndian.Uint16(src[nSrc:]))
		if utf16.IsSurrogate(r) {
			r = utf8.RuneError
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += 2
	}

	if nSrc < len(src) {
		if !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		// Half a code unit at the end of the field carries no character.
		nSrc = len(src)
	}

	return nDst, nSrc, nil
}

// Decode decodes b as a sequence of code units. Decode never fails.
func Decode(b []byte) string {
	// Decoder only reports ErrShortDst and ErrShortSrc which transform.Bytes
	// handles by growing the buffers.
	s, _, _ := transform.Bytes(Decoder{}, b)
	return string(s)
}
