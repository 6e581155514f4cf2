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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "look up words by pinyin or by word",
	ArgsUsage: "FILE.scel QUERY",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "prefix",
			Usage:              "match pinyin starting with QUERY",
			Aliases:            []string{"p"},
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			check(cli.ShowSubcommandHelp(c))
			return fmt.Errorf("%w: expected FILE and QUERY arguments, got %d", ErrFlagParse, c.NArg())
		}

		d, err := openInput(c.Args().Get(0))
		if err != nil {
			return err
		}

		search := d.Search
		if c.Bool("prefix") {
			search = d.SearchPrefix
		}
		entries, err := search(c.Args().Get(1))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSCEL2Rime, err)
		}

		tbl := table.New("WORD", "PINYIN", "FREQ").WithWriter(c.App.Writer)
		for _, e := range entries {
			tbl.AddRow(e.Word, e.Pinyin, e.Freq)
		}
		tbl.Print()

		return nil
	},
}
