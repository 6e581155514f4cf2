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
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-scel/rime"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFailure is the exit code for any failed conversion.
	ExitCodeFailure
)

// ErrSCEL2Rime is a parent error for all command errors.
var ErrSCEL2Rime = errors.New("scel2rime")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrSCEL2Rime)

// ErrInputNotFound indicates that the input file does not exist.
var ErrInputNotFound = fmt.Errorf("%w: input file not found", ErrSCEL2Rime)

// ErrNoEntries indicates that no entries could be decoded from the input.
var ErrNoEntries = fmt.Errorf("%w: no entries decoded", ErrSCEL2Rime)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands for conversion.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "a9993e364706816aba3e",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// newLogger returns a logger writing to the app's error writer.
func newLogger(c *cli.Context) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(c.App.ErrWriter)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if c.Bool("verbose") {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, _ = fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s
`, c.App.Name, versionInfo.GitVersion, strings.Join(copyrightNames, ", "), versionInfo.String())
	return nil
}

func newSCEL2RimeApp() *cli.App {
	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Convert SCEL word libraries to Rime dictionaries.",
		UsageText: filepath.Base(os.Args[0]) + " [OPTIONS] INPUT.scel OUTPUT" + rime.Ext,
		Description: strings.Join([]string{
			"Converts a SCEL pinyin word library to a Rime .dict.yaml dictionary.",
			"Entries are filtered by frequency and word length and sorted by",
			"descending frequency.",
			"",
			"Options must come before INPUT and OUTPUT.",
			"http://github.com/ianlewis/go-scel",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "freq",
				Usage:   "minimum word frequency",
				Aliases: []string{"f"},
				Value:   rime.DefaultFilter.MinFreq,
				EnvVars: []string{"SCEL2RIME_FREQ"},
			},
			&cli.IntFlag{
				Name:    "min-length",
				Usage:   "minimum word length in characters",
				Aliases: []string{"min"},
				Value:   rime.DefaultFilter.MinLength,
				EnvVars: []string{"SCEL2RIME_MIN_LENGTH"},
			},
			&cli.IntFlag{
				Name:    "max-length",
				Usage:   "maximum word length in characters",
				Aliases: []string{"max"},
				Value:   rime.DefaultFilter.MaxLength,
				EnvVars: []string{"SCEL2RIME_MAX_LENGTH"},
			},
			&cli.StringSliceFlag{
				Name:  "import-table",
				Usage: "import the Rime dictionary `NAME`",
				Value: cli.NewStringSlice(rime.DefaultImportTables...),
			},
			&cli.BoolFlag{
				Name:               "dictzip",
				Usage:              "compress the output in dictzip format",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "print decoding diagnostics",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Action:          convertAction,
		Commands: []*cli.Command{
			infoCommand,
			lookupCommand,
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}
