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

//go:build !windows && !darwin

package main

import (
	"os"
	"path/filepath"
)

func rimeUserDirs() []string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			home = "~"
		}
		configDir = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(configDir, "fcitx/rime"),
		filepath.Join(configDir, "ibus/rime"),
	}
}
