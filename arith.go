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

import "unsafe"

// Integer is the set of target types Parse can produce.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// The helpers below are the only arithmetic Parse performs. Each reports
// false instead of wrapping.

func isSigned[T Integer]() bool { return ^T(0) < 0 }

// BitSize returns the width of T in bits.
func BitSize[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// MinOf returns the smallest value of T.
func MinOf[T Integer]() T {
	if !isSigned[T]() {
		return 0
	}
	return T(1) << (BitSize[T]() - 1)
}

// MaxOf returns the largest value of T.
func MaxOf[T Integer]() T {
	if !isSigned[T]() {
		return ^T(0)
	}
	return ^MinOf[T]()
}

// mul10 returns a*10. A wrapped product never divides back to a.
func mul10[T Integer](a T) (T, bool) {
	r := a * 10
	return r, r/10 == a
}

// addDigit returns a+d for 0 <= d <= 9.
func addDigit[T Integer](a, d T) (T, bool) {
	r := a + d
	return r, r >= a
}

// subDigit returns a-d for 0 <= d <= 9.
func subDigit[T Integer](a, d T) (T, bool) {
	r := a - d
	return r, r <= a
}
