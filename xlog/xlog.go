/*
 * Copyright (c) 2020. Temple3x (temple3x@gmail.com)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package xlog provides logger features.
//
// All log entries are encoded in JSON,
// and time is epoch milliseconds.
package xlog

import (
	"github.com/zaibyte/uphex/config"
)

const (
	StderrOutput = "stderr"
	StdoutOutput = "stdout"

	defaultLevel = "info"
	// Unit is MB.
	defaultMaxSize = 128
)

// RotateConfig is partly copy from zaproll's Config,
// hiding details in zaproll.
// It's useless when output is stderr/stdout.
type RotateConfig struct {
	// Maximum size of a log file before it gets rotated.
	// Unit is MB.
	MaxSize int64 `toml:"max_size"`
	// Maximum number of backup log files to retain.
	MaxBackups int `toml:"max_backups"`
	// Timestamp in backup log file. Default(false) is UTC time.
	LocalTime bool `toml:"local_time"`
}

// Config is the log config of an application.
type Config struct {
	Output string       `toml:"output"`
	Level  string       `toml:"level"`
	Rotate RotateConfig `toml:"rotate"`
}

// MakeLogger fills default values, creates an ErrorLogger and
// sets it as the global logger.
func (c *Config) MakeLogger() (el *ErrorLogger, err error) {

	config.Adjust(&c.Output, StderrOutput)
	config.Adjust(&c.Level, defaultLevel)
	config.Adjust(&c.Rotate.MaxSize, defaultMaxSize)

	el, err = NewErrorLogger(c.Output, c.Level, &c.Rotate)
	if err != nil {
		return
	}

	InitGlobalLogger(el)
	return
}
