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

// kernel is an assembly bulk encoder.
// It encodes n bytes from src into 2n bytes from dst, w bytes per round.
//
// Warn:
// The loop in kernel has no length checking,
// n must be a positive multiple of w,
// and dst must have 2n bytes at least.
type kernel func(dst, src *byte, n int)

// encodeNative encodes the head (len(src) % w bytes) by encodeScalar,
// then passes the rest to k.
//
// All the preconditions of k are checked here, before any raw pointer
// is handed out.
func encodeNative(dst, src []byte, w int, k kernel) {
	head := split(len(src), w)
	encodeScalar(dst, src[:head])

	n := len(src) - head
	if n == 0 {
		return
	}
	if n%w != 0 {
		panic("xhex: kernel input must be a multiple of chunk width")
	}
	_ = dst[len(src)*2-1] // dst must be able to hold all.

	k(&dst[head*2], &src[head], n)
}
