/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package intiter

import (
	"math"
	"testing"
)

func TestBounds(t *testing.T) {
	check := func(name string, gotMin, wantMin, gotMax, wantMax any, bits, wantBits int) {
		t.Helper()
		if gotMin != wantMin || gotMax != wantMax || bits != wantBits {
			t.Fatalf("%s: min=%v max=%v bits=%d; want %v %v %d", name, gotMin, gotMax, bits, wantMin, wantMax, wantBits)
		}
	}
	check("int8", MinOf[int8](), int8(math.MinInt8), MaxOf[int8](), int8(math.MaxInt8), BitSize[int8](), 8)
	check("int16", MinOf[int16](), int16(math.MinInt16), MaxOf[int16](), int16(math.MaxInt16), BitSize[int16](), 16)
	check("int32", MinOf[int32](), int32(math.MinInt32), MaxOf[int32](), int32(math.MaxInt32), BitSize[int32](), 32)
	check("int64", MinOf[int64](), int64(math.MinInt64), MaxOf[int64](), int64(math.MaxInt64), BitSize[int64](), 64)
	check("uint8", MinOf[uint8](), uint8(0), MaxOf[uint8](), uint8(math.MaxUint8), BitSize[uint8](), 8)
	check("uint16", MinOf[uint16](), uint16(0), MaxOf[uint16](), uint16(math.MaxUint16), BitSize[uint16](), 16)
	check("uint32", MinOf[uint32](), uint32(0), MaxOf[uint32](), uint32(math.MaxUint32), BitSize[uint32](), 32)
	check("uint64", MinOf[uint64](), uint64(0), MaxOf[uint64](), uint64(math.MaxUint64), BitSize[uint64](), 64)
}

func TestMul10_Exhaustive8(t *testing.T) {
	for i := math.MinInt8; i <= math.MaxInt8; i++ {
		got, ok := mul10(int8(i))
		want := i * 10
		inRange := want >= math.MinInt8 && want <= math.MaxInt8
		if ok != inRange || (ok && int(got) != want) {
			t.Fatalf("mul10(%d) = %d, %v", i, got, ok)
		}
	}
	for i := 0; i <= math.MaxUint8; i++ {
		got, ok := mul10(uint8(i))
		want := i * 10
		if ok != (want <= math.MaxUint8) || (ok && int(got) != want) {
			t.Fatalf("mul10(uint8 %d) = %d, %v", i, got, ok)
		}
	}
}

func TestAddSubDigit_Exhaustive8(t *testing.T) {
	for i := math.MinInt8; i <= math.MaxInt8; i++ {
		for d := 0; d <= 9; d++ {
			if got, ok := addDigit(int8(i), int8(d)); ok != (i+d <= math.MaxInt8) || (ok && int(got) != i+d) {
				t.Fatalf("addDigit(%d, %d) = %d, %v", i, d, got, ok)
			}
			if got, ok := subDigit(int8(i), int8(d)); ok != (i-d >= math.MinInt8) || (ok && int(got) != i-d) {
				t.Fatalf("subDigit(%d, %d) = %d, %v", i, d, got, ok)
			}
		}
	}
	for i := 0; i <= math.MaxUint8; i++ {
		for d := 0; d <= 9; d++ {
			if _, ok := addDigit(uint8(i), uint8(d)); ok != (i+d <= math.MaxUint8) {
				t.Fatalf("addDigit(uint8 %d, %d) ok = %v", i, d, ok)
			}
			if _, ok := subDigit(uint8(i), uint8(d)); ok != (i >= d) {
				t.Fatalf("subDigit(uint8 %d, %d) ok = %v", i, d, ok)
			}
		}
	}
}

func TestMul10_Wide(t *testing.T) {
	if _, ok := mul10(int64(math.MaxInt64 / 10)); !ok {
		t.Fatalf("MaxInt64/10 * 10 must fit")
	}
	if _, ok := mul10(int64(math.MaxInt64/10 + 1)); ok {
		t.Fatalf("MaxInt64/10+1 * 10 must overflow")
	}
	if _, ok := mul10(int64(math.MinInt64 / 10)); !ok {
		t.Fatalf("MinInt64/10 * 10 must fit")
	}
	if _, ok := mul10(int64(math.MinInt64/10 - 1)); ok {
		t.Fatalf("MinInt64/10-1 * 10 must underflow")
	}
	if _, ok := mul10(uint64(math.MaxUint64/10 + 1)); ok {
		t.Fatalf("MaxUint64/10+1 * 10 must overflow")
	}
}
