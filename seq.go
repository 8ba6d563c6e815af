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

import "iter"

// Runes yields the characters of s. Invalid UTF-8 yields utf8.RuneError,
// which Parse rejects.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// StringBytes yields the bytes of s.
func StringBytes(s string) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Skip drops every element equal to sep, e.g. the '_' in "1_000_000".
func Skip[E Element](seq iter.Seq[E], sep E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range seq {
			if e == sep {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}
