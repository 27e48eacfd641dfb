// Copyright (c) 2020. Temple3x (temple3x@gmail.com)
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

// Package config loads TOML config files and fills default values.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/zaibyte/uphex/xerrors"
)

// Adjust sets v to def if v is the zero value.
func Adjust[T comparable](v *T, def T) {
	var zero T
	if *v == zero {
		*v = def
	}
}

// Load decodes the TOML file into v.
// Keys which don't belong to v are treated as error (usually typo).
func Load(path string, v interface{}) error {
	md, err := toml.DecodeFile(path, v)
	if err != nil {
		return xerrors.WithMsgf(err, "load config %s", path)
	}

	if ud := md.Undecoded(); len(ud) != 0 {
		keys := make([]string, len(ud))
		for i, k := range ud {
			keys[i] = k.String()
		}
		return fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}
