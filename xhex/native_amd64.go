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
//
// The nibble lookup with PSHUFB is inspired by https://github.com/zbjornson/fast-hex.
// Copyright (c) 2017 Zach Bjornson

package xhex

import (
	"github.com/templexxx/cpu"
)

func detectNative() (encs [implCnt]func(dst, src []byte)) {
	if cpu.X86.HasSSSE3 {
		encs[SSSE3] = encodeSSSE3
	}
	if cpu.X86.HasAVX2 {
		encs[AVX2] = encodeAVX2
	}
	return
}

func encodeSSSE3(dst, src []byte) {
	encodeNative(dst, src, 16, hexEncSSSE3)
}

func encodeAVX2(dst, src []byte) {
	encodeNative(dst, src, 32, hexEncAVX2)
}

// hexEncSSSE3 encodes 16 bytes per round with PSHUFB.
//go:noescape
func hexEncSSSE3(dst, src *byte, n int)

// hexEncAVX2 encodes 32 bytes per round with VPSHUFB.
//go:noescape
func hexEncAVX2(dst, src *byte, n int)
