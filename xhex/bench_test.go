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
	"encoding/hex"
	"fmt"
	"math/rand"
	"testing"

	txhex "github.com/templexxx/xhex"
)

var benchSizes = []int{16, 24, 1024, 12 * 1024 * 1024}

func benchSize(n int) string {
	if n >= 1024*1024 {
		return fmt.Sprintf("%dMB", n/1024/1024)
	}
	return fmt.Sprintf("%d", n)
}

func BenchmarkEncode(b *testing.B) {
	for _, impl := range Available() {
		f := impl.encoder()
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/%s", impl, benchSize(n)), func(b *testing.B) {
				src := make([]byte, n)
				rand.Read(src)
				dst := make([]byte, EncodedLen(n))
				b.SetBytes(int64(n))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					f(dst, src)
				}
			})
		}
	}
}

func BenchmarkEncodeToString(b *testing.B) {
	src := make([]byte, 1024)
	rand.Read(src)
	b.SetBytes(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = EncodeToString(src)
	}
}

// Lowercase baselines.

func BenchmarkStdEncode(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(benchSize(n), func(b *testing.B) {
			src := make([]byte, n)
			rand.Read(src)
			dst := make([]byte, hex.EncodedLen(n))
			b.SetBytes(int64(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				hex.Encode(dst, src)
			}
		})
	}
}

func BenchmarkTemplexxxEncode(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(benchSize(n), func(b *testing.B) {
			src := make([]byte, n)
			rand.Read(src)
			dst := make([]byte, hex.EncodedLen(n))
			b.SetBytes(int64(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				txhex.Encode(dst, src)
			}
		})
	}
}
