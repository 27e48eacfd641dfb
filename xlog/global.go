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

var _global *ErrorLogger

// InitGlobalLogger inits global var.
// warn: It's unsafe for concurrent use.
func InitGlobalLogger(logger *ErrorLogger) {
	_global = logger
}

func Error(msg string) {
	_global.Error(msg)
}

func Warn(msg string) {
	_global.Warn(msg)
}

func Debugf(format string, args ...interface{}) {
	_global.Debugf(format, args...)
}

// Close closes _global.
func Close() error {
	return _global.Close()
}
