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

package xhex

import (
	"golang.org/x/sys/cpu"
)

func detectNative() (encs [implCnt]func(dst, src []byte)) {
	// ASIMD is in ARMv8-A base, check it anyway.
	if cpu.ARM64.HasASIMD {
		encs[NEON] = encodeNEON
	}
	return
}

func encodeNEON(dst, src []byte) {
	encodeNative(dst, src, 16, hexEncNEON)
}

// hexEncNEON encodes 16 bytes per round with TBL.
//go:noescape
func hexEncNEON(dst, src *byte, n int)
