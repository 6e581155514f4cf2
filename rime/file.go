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
	"fmt"
	"io"
	"os"

	"github.com/ianlewis/go-dictzip"
)

// WriteOptions are options for WriteFile.
type WriteOptions struct {
	// DictZip compresses the dictionary in the dictzip format. Dictzip files
	// are gzip compatible.
	DictZip bool
}

// DefaultWriteOptions are the default options for WriteFile.
var DefaultWriteOptions = &WriteOptions{}

// WriteFile writes the dictionary to the file at path, replacing any existing
// file, and returns the size of the written file. If d.Name is empty it is
// derived from path. A failed write may leave a partially written file.
func WriteFile(path string, d *Dictionary, opts *WriteOptions) (int64, error) {
	if opts == nil {
		opts = DefaultWriteOptions
	}
	if d.Name == "" {
		d.Name = DictName(path)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	var w io.Writer = f
	var z *dictzip.Writer
	if opts.DictZip {
		z, err = dictzip.NewWriter(f)
		if err != nil {
			return 0, fmt.Errorf("creating dictzip writer: %w", err)
		}
		w = z
	}

	if err := Write(w, d); err != nil {
		return 0, fmt.Errorf("writing %q: %w", path, err)
	}

	if z != nil {
		if err := z.Close(); err != nil {
			return 0, fmt.Errorf("closing dictzip writer: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing %q: %w", path, err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("reading %q: %w", path, err)
	}
	return fi.Size(), nil
}
