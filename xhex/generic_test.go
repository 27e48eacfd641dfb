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
	"testing"

	"github.com/stretchr/testify/assert"
)

func lanes(v vec) []byte {
	p := make([]byte, vecSize)
	v.store(p)
	return p
}

func iota16(start byte) []byte {
	p := make([]byte, vecSize)
	for i := range p {
		p[i] = start + byte(i)
	}
	return p
}

func TestVecLoadStore(t *testing.T) {
	p := iota16(0xf0)
	assert.Equal(t, p, lanes(load(p)))
	assert.Panics(t, func() {
		load(make([]byte, vecSize-1))
	})
}

func TestVecShr(t *testing.T) {
	p := iota16(0xf0)
	got := lanes(load(p).shr(4))
	for i := range p {
		assert.Equal(t, p[i]>>4, got[i])
	}
}

func TestVecAnd(t *testing.T) {
	p := iota16(0xf0)
	got := lanes(load(p).and(nibbleMask))
	for i := range p {
		assert.Equal(t, p[i]&0x0f, got[i])
	}
}

func TestVecAdd(t *testing.T) {
	p := iota16(0xf8) // Crosses 0xff.
	got := lanes(load(p).add(splat(0x10)))
	for i := range p {
		assert.Equal(t, p[i]+0x10, got[i])
	}
}

func TestVecGeq(t *testing.T) {
	p := iota16(0)
	got := lanes(load(p).geq(ten))
	for i := range p {
		if p[i] >= 10 {
			assert.Equal(t, byte(0xff), got[i])
		} else {
			assert.Equal(t, byte(0), got[i])
		}
	}
}

func TestVecSel(t *testing.T) {
	m := make([]byte, vecSize)
	for i := range m {
		if i%3 == 0 {
			m[i] = 0xff
		}
	}
	got := lanes(sel(load(m), splat('a'), splat('b')))
	for i := range got {
		if i%3 == 0 {
			assert.Equal(t, byte('a'), got[i])
		} else {
			assert.Equal(t, byte('b'), got[i])
		}
	}
}

func TestVecInterleave(t *testing.T) {
	a, b := iota16(0), iota16(0x80)
	lo := lanes(interleaveLo(load(a), load(b)))
	hi := lanes(interleaveHi(load(a), load(b)))
	for i := 0; i < vecSize/2; i++ {
		assert.Equal(t, a[i], lo[2*i])
		assert.Equal(t, b[i], lo[2*i+1])
		assert.Equal(t, a[i+8], hi[2*i])
		assert.Equal(t, b[i+8], hi[2*i+1])
	}
}

func TestToDigits(t *testing.T) {
	assert.Equal(t, []byte(hextable), lanes(toDigits(load(iota16(0)))))
	for n := byte(0); n < 16; n++ {
		assert.Equal(t, hextable[n], toDigit(n))
	}
}
