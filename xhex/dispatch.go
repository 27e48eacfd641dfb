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
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Impl is an encoder implementation.
type Impl uint8

const (
	Scalar Impl = iota
	Generic
	SSSE3
	AVX2
	NEON

	implCnt
)

var implNames = [implCnt]string{
	Scalar:  "scalar",
	Generic: "generic",
	SSSE3:   "ssse3",
	AVX2:    "avx2",
	NEON:    "neon",
}

var chunkWidths = [implCnt]int{
	Scalar:  1,
	Generic: vecSize,
	SSSE3:   16,
	AVX2:    32,
	NEON:    16,
}

// nativePriority is the order of trying native encoders, faster first.
var nativePriority = []Impl{AVX2, SSSE3, NEON}

// NoSIMDEnv is the environment variable disabling native encoders.
const NoSIMDEnv = "UPHEX_NO_SIMD"

var (
	natives = detectNative()
	best    = pickBest(natives, noSIMD())
)

func init() {
	encode = best.encoder()
}

func (i Impl) String() string {
	if i >= implCnt {
		return "impl(" + strconv.Itoa(int(i)) + ")"
	}
	return implNames[i]
}

// ChunkWidth returns the number of bytes encoded per loop round.
func (i Impl) ChunkWidth() int {
	if i >= implCnt {
		return 0
	}
	return chunkWidths[i]
}

// IsNative returns true if i uses table lookup instructions.
func (i Impl) IsNative() bool {
	return i > Generic && i < implCnt
}

// Available returns true if i could run on this machine.
func (i Impl) Available() bool {
	return i.encoder() != nil
}

func (i Impl) encoder() func(dst, src []byte) {
	switch {
	case i == Scalar:
		return encodeScalar
	case i == Generic:
		return encodeGeneric
	case i.IsNative():
		return natives[i]
	}
	return nil
}

// Best returns the implementation used by Encode & EncodeToString.
// It's picked once at init: a native encoder if there is one, generic otherwise.
func Best() Impl {
	return best
}

// Available returns all implementations which could run on this machine.
func Available() []Impl {
	impls := make([]Impl, 0, implCnt)
	for i := Scalar; i < implCnt; i++ {
		if i.Available() {
			impls = append(impls, i)
		}
	}
	return impls
}

// ParseImpl parses implementation's name (case insensitive).
// "auto" and "" return Best(), "native" returns the best native one
// even if NoSIMDEnv is set.
func ParseImpl(name string) (Impl, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "auto":
		return best, nil
	case "native":
		if i := pickBest(natives, false); i.IsNative() {
			return i, nil
		}
		return 0, fmt.Errorf("xhex: no native encoder on this machine")
	}
	for i := Scalar; i < implCnt; i++ {
		if implNames[i] == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("xhex: unknown impl: %q", name)
}

func pickBest(encs [implCnt]func(dst, src []byte), disableNative bool) Impl {
	if disableNative {
		return Generic
	}
	for _, i := range nativePriority {
		if encs[i] != nil {
			return i
		}
	}
	return Generic
}

// noSIMD returns true if NoSIMDEnv is set to a true value,
// any unparsable non-empty value is considered true.
func noSIMD() bool {
	v := os.Getenv(NoSIMDEnv)
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return true
}
