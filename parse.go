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

// Accumulator is the parser's state machine. It is fed one classified
// element at a time and reports the first failure; Result finishes the
// parse. The zero value is ready to use and holds no pointers, so an
// Accumulator on the stack never allocates.
//
// Use it to parse from a source that is neither a string nor a byte slice
// without going through an iter.Seq:
//
//	var a intiter.Accumulator[uint32]
//	for _, chunk := range chunks {
//	    for _, b := range chunk {
//	        if err := a.Feed(intiter.Classify(b)); err != nil {
//	            return 0, err
//	        }
//	    }
//	}
//	return a.Result()
//
// After Feed has returned an error the Accumulator must not be fed again.
type Accumulator[T Integer] struct {
	acc      T
	negative bool
	started  bool
	digits   bool
}

// Feed consumes one element. The first element may be a sign; every later
// element must be a digit. Overflow is detected on the element that
// causes it.
func (a *Accumulator[T]) Feed(c Class) error {
	if !a.started {
		a.started = true
		switch c {
		case PositiveSign:
			return nil
		case NegativeSign:
			a.negative = true
			return nil
		case Unrecognized:
			return ErrInvalidDigit
		}
		a.acc, a.digits = T(c), true
		return nil
	}

	d, ok := c.Digit()
	if !ok {
		return ErrInvalidDigit
	}
	a.digits = true

	if a.acc, ok = mul10(a.acc); !ok {
		if a.negative {
			return ErrUnderflow
		}
		return ErrOverflow
	}
	if a.negative {
		if a.acc, ok = subDigit(a.acc, T(d)); !ok {
			return ErrUnderflow
		}
	} else if a.acc, ok = addDigit(a.acc, T(d)); !ok {
		return ErrOverflow
	}
	return nil
}

// Result returns the parsed value once every element has been fed.
// Nothing fed is ErrEmpty; a lone sign is ErrInvalidDigit, as in strconv.
func (a *Accumulator[T]) Result() (T, error) {
	switch {
	case !a.started:
		return 0, ErrEmpty
	case !a.digits:
		return 0, ErrInvalidDigit
	}
	return a.acc, nil
}

// Parse reads an optionally signed decimal integer from seq into T.
//
// The first element may be '+' or '-'; every other element must be an ASCII
// digit. seq is consumed at most once and iteration stops at the first
// error.
//
// Ranging over an arbitrary seq needs a yield closure, which the compiler
// moves to the heap unless it can inline seq. ParseRunes, ParseBytes,
// ParseStringBytes and Accumulator never allocate.
func Parse[T Integer, E Element](seq iter.Seq[E]) (T, error) {
	var a Accumulator[T]
	for e := range seq {
		if err := a.Feed(Classify(e)); err != nil {
			return 0, err
		}
	}
	return a.Result()
}

// ParseRunes parses the characters of s. Invalid UTF-8 is ErrInvalidDigit.
func ParseRunes[T Integer](s string) (T, error) {
	var a Accumulator[T]
	for _, r := range s {
		if err := a.Feed(Classify(r)); err != nil {
			return 0, err
		}
	}
	return a.Result()
}

// ParseStringBytes parses the bytes of s.
func ParseStringBytes[T Integer](s string) (T, error) {
	var a Accumulator[T]
	for i := 0; i < len(s); i++ {
		if err := a.Feed(Classify(s[i])); err != nil {
			return 0, err
		}
	}
	return a.Result()
}

// ParseBytes parses b.
func ParseBytes[T Integer](b []byte) (T, error) {
	var a Accumulator[T]
	for _, c := range b {
		if err := a.Feed(Classify(c)); err != nil {
			return 0, err
		}
	}
	return a.Result()
}
