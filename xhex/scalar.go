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

// hextable maps a nibble to its digit,
// native kernels carry the same table in read-only data.
const hextable = "0123456789ABCDEF"

// encodeScalar encodes src byte by byte.
// dst must have 2 * len(src) bytes at least.
//
// It's also used by vector encoders for the bytes
// which can't fill a whole chunk.
func encodeScalar(dst, src []byte) {
	j := 0
	for _, v := range src {
		dst[j] = toDigit(v >> 4)
		dst[j+1] = toDigit(v & 0x0f)
		j += 2
	}
}

// toDigit converts a nibble (0-15) to its uppercase ASCII digit.
func toDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'A' + n - 10
}

// split returns the length of the head which must be encoded by encodeScalar
// before a loop with w bytes per round could take the rest.
//
// The rest (n - head) is always a multiple of w.
func split(n, w int) (head int) {
	return n % w
}
