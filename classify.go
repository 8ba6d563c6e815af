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

import "strconv"

// Element is the kind of value a parse consumes: a character or a raw byte.
type Element interface {
	~rune | ~byte
}

// Class is the classifier's verdict on one element. Values 0..9 are digit
// values; the named constants cover everything else.
type Class uint8

const (
	PositiveSign Class = 10 + iota
	NegativeSign
	Unrecognized
)

// Classify maps e to a digit value, a sign marker or Unrecognized. Bytes are
// read as the ASCII character with the same value, so only '0'..'9', '+' and
// '-' are recognized for either element kind.
func Classify[E Element](e E) Class {
	switch c := rune(e); {
	case c >= '0' && c <= '9':
		return Class(c - '0')
	case c == '+':
		return PositiveSign
	case c == '-':
		return NegativeSign
	}
	return Unrecognized
}

// Digit returns the digit value of c.
func (c Class) Digit() (uint8, bool) {
	if c <= 9 {
		return uint8(c), true
	}
	return 0, false
}

// IsSign reports whether c is a sign marker.
func (c Class) IsSign() bool { return c == PositiveSign || c == NegativeSign }

// String returns "digit(N)", "+", "-" or "unrecognized".
func (c Class) String() string {
	switch c {
	case PositiveSign:
		return "+"
	case NegativeSign:
		return "-"
	case Unrecognized:
		return "unrecognized"
	}
	if c <= 9 {
		return "digit(" + strconv.Itoa(int(c)) + ")"
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}
