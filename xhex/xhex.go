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

// Package xhex implements uppercase hexadecimal encoding.
//
// There are three encoders, all produce the same output:
// 1. scalar: byte by byte, always available.
// 2. generic: 16 bytes per round with portable vector arithmetic,
// the lanes are emulated on two uint64 words (no SIMD instruction).
// 3. native: table lookup instructions (SSSE3/AVX2 on amd64, NEON on arm64).
//
// The fastest one is picked at init (see Best),
// set UPHEX_NO_SIMD=1 to disable the native encoders.
//
// Encoding never fails, every byte is legal input.
package xhex

import (
	"github.com/zaibyte/uphex/xstrconv"
)

// EncodedLen returns the length of an encoding of n source bytes.
func EncodedLen(n int) int { return n * 2 }

// Encode encodes src into EncodedLen(len(src)) bytes of dst,
// and returns the number of bytes written.
//
// Warn:
// dst must have enough space, Encode panics if not.
func Encode(dst, src []byte) int {
	n := EncodedLen(len(src))
	if len(dst) < n {
		panic("xhex: dst is too short")
	}
	if n == 0 {
		return 0
	}
	encode(dst[:n], src)
	return n
}

// EncodeToString returns the uppercase hexadecimal encoding of src.
func EncodeToString(src []byte) string {
	return encodeToString(encode, src)
}

// EncodeWith encodes src with the chosen implementation.
// It panics if impl isn't available on this machine.
func EncodeWith(impl Impl, src []byte) string {
	f := impl.encoder()
	if f == nil {
		panic("xhex: " + impl.String() + " is not available")
	}
	return encodeToString(f, src)
}

// Define encode as a variable for reducing branch (test has SIMD or not),
// see dispatch.go for details.
var encode = encodeGeneric

func encodeToString(f func(dst, src []byte), src []byte) string {
	if len(src) == 0 {
		return ""
	}
	dst := make([]byte, EncodedLen(len(src)))
	f(dst, src)
	return xstrconv.ToString(dst)
}
