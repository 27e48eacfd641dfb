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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjust(t *testing.T) {
	s := ""
	Adjust(&s, "info")
	assert.Equal(t, "info", s)
	Adjust(&s, "debug")
	assert.Equal(t, "info", s)

	var d time.Duration
	Adjust(&d, time.Second)
	assert.Equal(t, time.Second, d)

	n := 3
	Adjust(&n, 5)
	assert.Equal(t, 3, n)
}

type testLog struct {
	Output string `toml:"output"`
	Level  string `toml:"level"`
}

type testConfig struct {
	Impl string  `toml:"impl"`
	Log  testLog `toml:"log"`
}

func writeFile(t *testing.T, content string) string {
	p := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoad(t *testing.T) {
	p := writeFile(t, `
impl = "generic"

[log]
output = "stderr"
level = "debug"
`)
	cfg := new(testConfig)
	require.NoError(t, Load(p, cfg))
	assert.Equal(t, "generic", cfg.Impl)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadUnknownKey(t *testing.T) {
	p := writeFile(t, `
impl = "generic"
imple = "scalar"
`)
	err := Load(p, new(testConfig))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imple")
}

func TestLoadMissing(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "none.toml"), new(testConfig))
	assert.Error(t, err)
}

func TestLoadIllegal(t *testing.T) {
	p := writeFile(t, `impl = `)
	assert.Error(t, Load(p, new(testConfig)))
}
