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

// Package intiter parses fixed-width integers straight from a sequence of
// runes or bytes, without first building a string.
//
// The caller hands over an iter.Seq of elements and names the target type:
//
//	n, err := intiter.Parse[int64](intiter.Runes("-9223372036854775808"))
//	u, err := intiter.Parse[uint16](slices.Values(buf))
//
// One generic driver serves all eight target types (int8..int64,
// uint8..uint64) and both element kinds. It accepts an optional leading '+'
// or '-' followed by ASCII decimal digits and nothing else: no whitespace,
// no radix prefixes, no digit separators (see Skip to drop those
// beforehand), no non-ASCII digits.
//
// # Errors
//
// Failures are reported with one of four shared sentinels, so a failed parse
// does not allocate:
//
//   - ErrEmpty: the sequence yielded nothing;
//   - ErrInvalidDigit: an element was not a digit, including a second sign
//     or a sign with no digits after it;
//   - ErrOverflow: a non-negative value exceeded the target maximum;
//   - ErrUnderflow: a negative value went below the target minimum.
//
// The classification matches strconv.ParseInt for signed targets. All
// values are *Error and carry a code and reason (see packages code and
// reason) so that transport adapters can map them to HTTP and gRPC statuses.
// Use errors.Is to test for a kind; enriched copies made with WithDetail
// still match their sentinel.
//
// Negative input for an unsigned target accumulates downwards from zero:
// "-0" is 0 and "-1" is ErrUnderflow.
//
// # Allocation
//
// ParseRunes, ParseStringBytes, ParseBytes and a stack Accumulator never
// allocate, on success or failure. Parse over a caller's iter.Seq needs a
// yield closure that escapes unless the compiler can inline the sequence;
// on hot paths feed an Accumulator from your own loop instead.
//
// # Concurrency
//
// Parsing keeps no shared state. Any number of goroutines may parse at once.
package intiter
