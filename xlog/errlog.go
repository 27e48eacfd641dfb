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

package xlog

import (
	"fmt"
	"os"

	"github.com/templexxx/tsc"
	"github.com/zaibyte/nanozap"
	"github.com/zaibyte/nanozap/zapcore"
	"github.com/zaibyte/nanozap/zaproll"
)

// ErrorLogger is used for recording the application log,
// xlog also provides global logger for more convenient.
//
// Entries are written before the logging method returns.
// uphex exits right after its last log, so the ring buffer and
// background loop of nanozap.Logger are not used: an entry still
// in the ring at exit would be lost.
type ErrorLogger struct {
	core zapcore.Core
	// rotation is nil when output is stderr/stdout.
	rotation *zaproll.Rotation
}

// ErrLogFields shows error logger output fields.
type ErrLogFields struct {
	Level string `json:"level"`
	Time  int64  `json:"time"`
	Msg   string `json:"msg"`
}

// NewErrorLogger returns a logger with its properties.
//
// outputPath could be "stderr", "stdout" or a file path,
// the file will be rotated by rCfg.
//
// Legal Levels:
// info: "info", "INFO", ""
// debug: "debug", "DEBUG"
// warn: "warn", "WARN"
// error: "error", "ERROR"
// panic: "panic", "PANIC"
// fatal: "fatal", "FATAL"
func NewErrorLogger(outputPath, level string, rCfg *RotateConfig) (logger *ErrorLogger, err error) {

	lvl := nanozap.NewAtomicLevel()
	err = lvl.UnmarshalText([]byte(level))
	if err != nil {
		return
	}

	var (
		ws       zapcore.WriteSyncer
		rotation *zaproll.Rotation
	)
	switch outputPath {
	case "", StderrOutput:
		ws = os.Stderr
	case StdoutOutput:
		ws = os.Stdout
	default:
		r, err2 := zaproll.New(&zaproll.Config{
			OutputPath: outputPath,
			MaxSize:    rCfg.MaxSize,
			MaxBackups: rCfg.MaxBackups,
			LocalTime:  rCfg.LocalTime,
		})
		if err2 != nil {
			return nil, err2
		}
		ws, rotation = r, r
	}

	return &ErrorLogger{
		core:     zapcore.NewCore(zapcore.NewJSONEncoder(defaultEncoderConf()), ws, lvl),
		rotation: rotation,
	}, nil
}

// default without caller and stack trace,
func defaultEncoderConf() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		ReqIDKey:       "reqid",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.EpochMillisTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// write encodes the entry and writes it to the output.
// There is no request in uphex, so reqid is always empty.
func (l *ErrorLogger) write(lvl zapcore.Level, msg string) {
	if !l.core.Enabled(lvl) {
		return
	}
	ent := zapcore.Entry{
		Time:    tsc.UnixNano(),
		Level:   lvl,
		Message: msg,
	}
	l.core.Check(ent, nil).Write()
}

func (l *ErrorLogger) Error(msg string) {
	l.write(zapcore.ErrorLevel, msg)
}

func (l *ErrorLogger) Warn(msg string) {
	l.write(zapcore.WarnLevel, msg)
}

func (l *ErrorLogger) Errorf(format string, args ...interface{}) {
	l.write(zapcore.ErrorLevel, fmt.Sprintf(format, args...))
}

func (l *ErrorLogger) Debugf(format string, args ...interface{}) {
	if !l.core.Enabled(zapcore.DebugLevel) {
		return
	}
	l.write(zapcore.DebugLevel, fmt.Sprintf(format, args...))
}

// Sync flushes the buffered output.
func (l *ErrorLogger) Sync() error {
	return l.core.Sync()
}

// Close flushes and closes the log file, stderr/stdout won't be closed.
func (l *ErrorLogger) Close() error {
	if l.rotation == nil {
		return nil
	}
	if err := l.Sync(); err != nil {
		return err
	}
	return l.rotation.Close()
}
