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

package main

import (
	"errors"

	"github.com/docker/go-units"

	"github.com/zaibyte/uphex/config"
	"github.com/zaibyte/uphex/metricutil"
	"github.com/zaibyte/uphex/xerrors"
	"github.com/zaibyte/uphex/xlog"
)

const (
	defaultImpl = "auto"
	// The whole input and its encoding (2x) are in memory.
	defaultMaxInputSize = "4GiB"
)

// Config is uphex's config, all fields are optional.
//
// e.g.
//
//	impl = "auto"
//	max_input_size = "4GiB"
//	[log]
//	output = "stderr"
//	level = "info"
//	[metrics]
//	push_address = "http://127.0.0.1:9091"
type Config struct {
	Impl         string            `toml:"impl"`
	MaxInputSize string            `toml:"max_input_size"`
	Log          xlog.Config       `toml:"log"`
	Metrics      metricutil.Config `toml:"metrics"`
}

func loadConfig(path string) (*Config, error) {
	cfg := new(Config)
	if path != "" {
		if err := config.Load(path, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) adjust() {
	config.Adjust(&c.Impl, defaultImpl)
	config.Adjust(&c.MaxInputSize, defaultMaxInputSize)
}

// check returns error if c has conflicts.
func (c *Config) check() error {
	// stdout is for the hex output.
	if c.Log.Output == xlog.StdoutOutput {
		return errors.New("log output can't be stdout, it's used by hex output")
	}
	return nil
}

// maxInput returns the max input size in bytes.
func (c *Config) maxInput() (int64, error) {
	n, err := units.RAMInBytes(c.MaxInputSize)
	if err != nil {
		return 0, xerrors.WithMsg(err, "illegal max_input_size")
	}
	return n, nil
}
