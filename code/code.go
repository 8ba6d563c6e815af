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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"slices"
	"strings"
)

// Code is the canonical, validated form of an error code such as "invalid"
// or "out_of_range".
//
// It is a distinct type rather than a plain string so that function
// signatures say which values have been normalized, and so that raw user
// input cannot be passed where a canonical code is expected without going
// through Parse.
//
// Every error produced by this module carries a non-empty Code. Transport
// adapters key their status tables on it.
type Code string

// Length bounds for a canonical code. They are exported so that tests and
// configuration validators can quote the same limits.
const (
	// MinLength is the shortest accepted code. Three characters keep out
	// ambiguous one- and two-letter codes like "x" or "e1".
	MinLength = 3

	// MaxLength is the longest accepted code. Codes name categories, not
	// individual failures (that is what reasons are for), so 32 characters
	// leave plenty of room.
	MaxLength = 32
)

// codeFmt is the pattern a canonical code must match.
//
// Pattern breakdown:
//
//	^                start of string;
//	[a-z]            a lowercase ASCII letter first;
//	[a-z0-9_]{2,31}  then lowercase letters, digits or underscores, making
//	                 the total length 3..32 (1 + 2..31);
//	$                end of string.
//
// The {2,31} quantifier is derived from MinLength and MaxLength. Change
// them together.
const codeFmt = `^[a-z][a-z0-9_]{2,31}$`

// codeRe is codeFmt compiled once at package init.
//
// Valid codes:
//   - "missing"
//   - "invalid"
//   - "out_of_range"
//
// Invalid codes:
//   - "Invalid"      (uppercase; Parse would fix it, Validate does not)
//   - "out-of-range" (dash; likewise)
//   - "ok"           (too short)
//   - "4xx"          (does not start with a letter)
var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed or validated as
// a canonical code. Callers can tell "bad code format" apart from other
// failures with errors.Is.
var ErrCodeInvalid = errors.New("intiter: invalid code")

// Code can be embedded in YAML, JSON or flag structs directly.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero code, meaning "not provided". It never validates and
// never appears on an error built by this module.
var Empty Code = ""

// Parse normalizes s and validates the result. On success it returns the
// canonical Code; otherwise Empty and ErrCodeInvalid.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if !codeRe.MatchString(s) {
		return Empty, ErrCodeInvalid
	}
	return Code(s), nil
}

// MustParse is like Parse but panics on invalid input. It is meant for
// package-level declarations whose input is a literal.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings s closer to canonical form using only lossless edits:
//
//   - surrounding space is trimmed;
//   - letters are lowercased;
//   - '-' and inner spaces become '_'.
//
// The result is not guaranteed to be valid; Parse validates it.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return '_'
		}
		return r
	}, s)
}

// Validate reports whether c is already canonical. It does not normalize,
// so "Invalid" fails here even though Parse accepts it.
func Validate(c Code) error {
	if !codeRe.MatchString(string(c)) {
		return ErrCodeInvalid
	}
	return nil
}

// Known reports whether c is one of the codes declared in this package.
// Unknown but well-formed codes are still legal; the mapper sends them to
// its fallback.
func Known(c Code) bool { return slices.Contains(All, c) }

// String returns the code as a plain string.
func (c Code) String() string { return string(c) }

// MarshalText implements encoding.TextMarshaler. Non-canonical codes fail
// rather than being written out in a form Parse might read differently.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is
// normalized and validated before it is assigned; on error c is left
// unchanged.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
