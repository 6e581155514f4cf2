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

// Package rime implements writing Rime .dict.yaml dictionaries.
//
// A dictionary file starts with '#' comment lines, followed by a YAML front
// matter block between a "---" line and a "..." line, followed by one entry
// per line. Each entry line holds the word, the space separated pinyin and the
// weight separated by tabs.
package rime

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-scel"
	"github.com/ianlewis/go-scel/phrase"
)

// Ext is the file extension of Rime dictionaries.
const Ext = ".dict.yaml"

const (
	formatVersion = "1.0"
	sortByWeight  = "by_weight"
	timeLayout    = "2006-01-02 15:04:05"
)

// DefaultImportTables are the dictionaries imported by default.
var DefaultImportTables = []string{"luna_pinyin"}

// Dictionary is a Rime dictionary to be written.
type Dictionary struct {
	// Name is the dictionary name. It must match the file name without the
	// .dict.yaml extension for Rime to load it. See DictName.
	Name string

	// Source is the path of the SCEL file the entries came from. Only the
	// base name is written.
	Source string

	// Info is the source library's header metadata.
	Info scel.Info

	// Generated is the generation time.
	Generated time.Time

	// Original is the number of entries decoded before filtering.
	Original int

	// Filter is the filter the entries were selected with.
	Filter Filter

	// ImportTables are the dictionaries to import. Defaults to
	// DefaultImportTables when nil.
	ImportTables []string

	// Entries are the entries to write in order.
	Entries []*phrase.Entry
}

type frontMatter struct {
	Name                string   `yaml:"name"`
	Version             string   `yaml:"version"`
	Sort                string   `yaml:"sort"`
	UsePresetVocabulary bool     `yaml:"use_preset_vocabulary"`
	ImportTables        []string `yaml:"import_tables,omitempty"`
}

// DictName returns the dictionary name for the dictionary file at path.
func DictName(path string) string {
	base := filepath.Base(path)
	if strings.HasSuffix(base, Ext) {
		return strings.TrimSuffix(base, Ext)
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Write writes the dictionary to w.
func Write(w io.Writer, d *Dictionary) error {
	bw := bufio.NewWriter(w)

	for _, line := range header(d) {
		if _, err := fmt.Fprintf(bw, "# %s\n", line); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if _, err := bw.WriteString("\n---\n"); err != nil {
		return fmt.Errorf("writing front matter: %w", err)
	}
	importTables := d.ImportTables
	if importTables == nil {
		importTables = DefaultImportTables
	}
	enc := yaml.NewEncoder(bw)
	enc.SetIndent(2)
	if err := enc.Encode(&frontMatter{
		Name:                d.Name,
		Version:             formatVersion,
		Sort:                sortByWeight,
		UsePresetVocabulary: true,
		ImportTables:        importTables,
	}); err != nil {
		return fmt.Errorf("writing front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("writing front matter: %w", err)
	}
	if _, err := bw.WriteString("...\n\n"); err != nil {
		return fmt.Errorf("writing front matter: %w", err)
	}

	for _, e := range d.Entries {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%d\n", e.Word, e.Pinyin, e.Freq); err != nil {
			return fmt.Errorf("writing entry %q: %w", e.Word, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing dictionary: %w", err)
	}
	return nil
}

func header(d *Dictionary) []string {
	lines := []string{
		"Rime dictionary",
		"source: " + filepath.Base(d.Source),
	}
	if d.Info.Name != "" {
		lines = append(lines, "library: "+d.Info.Name)
	}
	if d.Info.Category != "" {
		lines = append(lines, "category: "+d.Info.Category)
	}
	return append(lines,
		"generated: "+d.Generated.Format(timeLayout),
		fmt.Sprintf("original entries: %d", d.Original),
		fmt.Sprintf("filtered entries: %d", len(d.Entries)),
		fmt.Sprintf("filter: freq >= %d, length %d-%d", d.Filter.MinFreq, d.Filter.MinLength, d.Filter.MaxLength),
	)
}
