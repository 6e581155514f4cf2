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

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-scel"
	"github.com/ianlewis/go-scel/rime"
)

// convertAction converts the SCEL file given as the first argument to a Rime
// dictionary at the path given as the second argument.
func convertAction(c *cli.Context) error {
	if c.Bool("help") {
		check(cli.ShowAppHelp(c))
		return nil
	}
	if c.Bool("version") {
		return printVersion(c)
	}

	if c.NArg() != 2 {
		check(cli.ShowAppHelp(c))
		return fmt.Errorf("%w: expected INPUT and OUTPUT arguments, got %d", ErrFlagParse, c.NArg())
	}

	log := newLogger(c)
	input, output := c.Args().Get(0), c.Args().Get(1)

	f := rime.Filter{
		MinFreq:   c.Int("freq"),
		MinLength: c.Int("min-length"),
		MaxLength: c.Int("max-length"),
	}

	d, err := openInput(input)
	if err != nil {
		return err
	}
	logStats(log, d)

	entries := d.Entries()
	if len(entries) == 0 {
		return fmt.Errorf("%w: %q", ErrNoEntries, input)
	}

	if !strings.HasSuffix(output, rime.Ext) {
		log.Warnf("output file %q does not end with %q; Rime may not load it", output, rime.Ext)
	}

	selected := rime.Select(entries, f)
	log.WithFields(logrus.Fields{
		"decoded":  len(entries),
		"selected": len(selected),
	}).Debug("filtered entries")

	size, err := rime.WriteFile(output, &rime.Dictionary{
		Source:       input,
		Info:         d.Info(),
		Generated:    time.Now(),
		Original:     len(entries),
		Filter:       f,
		ImportTables: c.StringSlice("import-table"),
		Entries:      selected,
	}, &rime.WriteOptions{
		DictZip: c.Bool("dictzip"),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSCEL2Rime, err)
	}

	log.Infof("wrote %d entries to %s (%.1f KB)", len(selected), output, float64(size)/1024)
	printNextSteps(c.App.Writer, output)
	return nil
}

// openInput opens and decodes the SCEL file at path.
func openInput(path string) (*scel.Dictionary, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrSCEL2Rime, err)
	}

	d, err := scel.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSCEL2Rime, err)
	}
	return d, nil
}

func logStats(log *logrus.Logger, d *scel.Dictionary) {
	s := d.Stats()
	log.WithFields(logrus.Fields{
		"syllables": s.Pinyin.Syllables,
		"faults":    s.Pinyin.Faults,
	}).Debug("decoded pinyin table")
	log.WithFields(logrus.Fields{
		"entries": s.Phrase.Entries,
		"groups":  s.Phrase.Groups,
		"skipped": s.Phrase.Skipped,
		"faults":  s.Phrase.Faults,
	}).Debug("decoded word table")

	if info := d.Info(); info.Name != "" {
		log.Debugf("library %q: %d words declared", info.Name, info.WordCount)
	}
}

func printNextSteps(w io.Writer, output string) {
	_, _ = fmt.Fprintln(w, "Next steps:")
	_, _ = fmt.Fprintf(w, "  1. Copy %s to your Rime user directory:\n", filepath.Base(output))
	for _, dir := range rimeUserDirs() {
		_, _ = fmt.Fprintf(w, "       %s\n", dir)
	}
	_, _ = fmt.Fprintf(w, "  2. Add %q to the import_tables of your main dictionary.\n", rime.DictName(output))
	_, _ = fmt.Fprintln(w, "  3. Redeploy Rime.")
}
