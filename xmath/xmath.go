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

// Package xmath provides small numeric helpers for reports.
package xmath

import (
	"math"
	"time"
)

const mib = 1 << 20

// Round rounds f half away from zero, keeping n decimal places.
// e.g.
// f = 1.006, n = 2, return 1.01
func Round(f float64, n int) float64 {
	pow10n := math.Pow10(n)
	return math.Round(f*pow10n) / pow10n
}

// MiBps returns the throughput of processing n bytes in d,
// in MiB/s with 2 decimal places.
// It returns 0 if d <= 0.
func MiBps(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return Round(float64(n)/mib/d.Seconds(), 2)
}
