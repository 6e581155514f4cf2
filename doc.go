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

// Package scel implements a library for reading SCEL word libraries in pure
// Go.
//
// A SCEL file is a single binary file laid out at fixed offsets:
//  1. A 12 byte signature.
//  2. Header metadata: the declared word count and the library name,
//     category, description and examples as NUL padded UTF-16 text.
//  3. A pinyin table at 0x1540 that maps indices to pinyin syllables. See the
//     pinyin package.
//  4. A word table at 0x2628 that lists homophone groups referring to the
//     pinyin table. See the phrase package.
//
// Decoding is best effort. Malformed records are skipped and counted in
// [Stats] instead of failing the whole library.
package scel
