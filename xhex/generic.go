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

import "encoding/binary"

// vecSize is the number of byte lanes in vec.
const vecSize = 16

const (
	lsb = 0x0101010101010101 // lowest bit of each lane.
	msb = 0x8080808080808080 // highest bit of each lane.
)

// vec is a 16 lanes byte vector emulated on two uint64 words (SWAR).
// Lanes [0, 8) are in v[0] and lanes [8, 16) are in v[1],
// lane i is the (i%8)th byte of the word in little endian.
//
// All operations are lane-wise, there is no carry between lanes.
type vec [2]uint64

var (
	nibbleMask = splat(0x0f)
	ten        = splat(10)
	letterBias = splat('A' - 10)
	digitBias  = splat('0')
)

func splat(b byte) vec {
	w := lsb * uint64(b)
	return vec{w, w}
}

func load(p []byte) vec {
	_ = p[vecSize-1] // early bounds check
	return vec{
		binary.LittleEndian.Uint64(p[0:8]),
		binary.LittleEndian.Uint64(p[8:16]),
	}
}

func (v vec) store(p []byte) {
	_ = p[vecSize-1] // early bounds check
	binary.LittleEndian.PutUint64(p[0:8], v[0])
	binary.LittleEndian.PutUint64(p[8:16], v[1])
}

// shr shifts every lane right by n (n < 8) bits, zero-filled.
func (v vec) shr(n uint) vec {
	m := lsb * uint64(0xff>>n)
	return vec{(v[0] >> n) & m, (v[1] >> n) & m}
}

func (v vec) and(u vec) vec {
	return vec{v[0] & u[0], v[1] & u[1]}
}

// add adds lanes modulo 256.
func (v vec) add(u vec) vec {
	return vec{addLanes(v[0], u[0]), addLanes(v[1], u[1])}
}

func addLanes(a, b uint64) uint64 {
	return ((a &^ msb) + (b &^ msb)) ^ ((a ^ b) & msb)
}

// geq returns a mask with 0xff in the lanes where v >= u and 0x00 in others.
// Both v and u lanes must be < 0x80.
func (v vec) geq(u vec) vec {
	return vec{geqLanes(v[0], u[0]), geqLanes(v[1], u[1])}
}

func geqLanes(a, b uint64) uint64 {
	// a|msb is in [0x80, 0xff] and b is in [0, 0x7f],
	// so the subtraction never borrows across lanes,
	// and the msb survives iff a >= b.
	t := ((a | msb) - b) & msb
	return (t >> 7) * 0xff
}

// sel picks a's lane where mask is 0xff, b's lane otherwise.
func sel(mask, a, b vec) vec {
	return vec{
		(a[0] & mask[0]) | (b[0] &^ mask[0]),
		(a[1] & mask[1]) | (b[1] &^ mask[1]),
	}
}

// interleaveLo returns [a0, b0, a1, b1, ..., a7, b7].
func interleaveLo(a, b vec) vec {
	return vec{
		spread(a[0]) | spread(b[0])<<8,
		spread(a[0]>>32) | spread(b[0]>>32)<<8,
	}
}

// interleaveHi returns [a8, b8, a9, b9, ..., a15, b15].
func interleaveHi(a, b vec) vec {
	return vec{
		spread(a[1]) | spread(b[1])<<8,
		spread(a[1]>>32) | spread(b[1]>>32)<<8,
	}
}

// spread moves the low 4 bytes of x into the even bytes of the result.
func spread(x uint64) uint64 {
	x &= 0xffffffff
	x = (x | x<<16) & 0x0000ffff0000ffff
	x = (x | x<<8) & 0x00ff00ff00ff00ff
	return x
}

// toDigits converts nibble lanes to ASCII digits.
func toDigits(n vec) vec {
	return sel(n.geq(ten), letterBias, digitBias).add(n)
}

// encodeGeneric encodes src vecSize bytes per round,
// the head which can't fill a vec is encoded by encodeScalar.
func encodeGeneric(dst, src []byte) {
	head := split(len(src), vecSize)
	encodeScalar(dst, src[:head])
	dst, src = dst[head*2:], src[head:]

	for len(src) >= vecSize {
		x := load(src)
		hi := toDigits(x.shr(4))
		lo := toDigits(x.and(nibbleMask))

		interleaveLo(hi, lo).store(dst)
		interleaveHi(hi, lo).store(dst[vecSize:])

		src = src[vecSize:]
		dst = dst[vecSize*2:]
	}
}
