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
	"fmt"
	"strings"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var infoCommand = &cli.Command{
	Name:      "info",
	Usage:     "print SCEL library metadata",
	ArgsUsage: "FILE.scel",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			check(cli.ShowSubcommandHelp(c))
			return fmt.Errorf("%w: expected FILE argument, got %d", ErrFlagParse, c.NArg())
		}

		d, err := openInput(c.Args().First())
		if err != nil {
			return err
		}

		info := d.Info()
		stats := d.Stats()

		tbl := table.New("FIELD", "VALUE").WithWriter(c.App.Writer)
		tbl.AddRow("Name", info.Name)
		tbl.AddRow("Category", info.Category)
		tbl.AddRow("Description", plainText(info.Description))
		tbl.AddRow("Examples", oneLine(info.Examples))
		tbl.AddRow("Declared words", info.WordCount)
		tbl.AddRow("Syllables", stats.Pinyin.Syllables)
		tbl.AddRow("Entries", stats.Phrase.Entries)
		tbl.AddRow("Skipped groups", stats.Phrase.Skipped)
		tbl.AddRow("Faults", stats.Pinyin.Faults+stats.Phrase.Faults)
		tbl.Print()

		return nil
	},
}

// plainText renders HTML markup in s as a single line of text.
func plainText(s string) string {
	return oneLine(html2text.HTML2Text(s))
}

// oneLine folds all whitespace runs in s to a single space.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
