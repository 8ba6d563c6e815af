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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is the canonical, validated form of a dotted failure reason such
// as "intiter.range.overflow".
//
// Where a code names a broad category, a reason names the exact failure.
// Segments run from general to specific (package, area, failure), which is
// what lets the mapper attach statuses to whole families of reasons with a
// prefix rule like "intiter.range".
//
// Unlike codes, reasons are optional: Empty is a valid Reason.
type Reason string

// Bounds for a canonical reason.
const (
	// MinLength is the shortest non-empty reason, matching the code
	// package's minimum.
	MinLength = 3

	// MaxLength is the longest accepted reason. Reasons travel in
	// google.rpc.ErrorInfo and in log fields, so they are kept short.
	MaxLength = 128

	// MaxSegments is the deepest accepted reason. Four levels cover
	// "package.area.failure.detail"; anything deeper belongs in details.
	MaxSegments = 4
)

// reasonFmt is the pattern a canonical reason must match.
//
// Pattern breakdown:
//
//	^[a-z][a-z0-9_]*             first segment: a lowercase letter, then
//	                             lowercase letters, digits or underscores;
//	(\.[a-z][a-z0-9_]*){0,3}     up to three more segments of the same
//	                             shape, each introduced by a dot;
//	$                            end of string.
//
// The {0,3} quantifier is MaxSegments-1. Length is checked separately
// against MinLength and MaxLength.
const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

// reasonRe is reasonFmt compiled once at package init.
//
// Valid reasons:
//   - "intiter.input.empty"
//   - "ident.char.leading_digit"
//
// Invalid reasons:
//   - "intiter..empty"   (empty segment)
//   - "intiter.1st"      (segment starts with a digit)
//   - "a.b.c.d.e"        (five segments)
var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason does not match
	// reasonFmt after normalization.
	ErrReasonInvalidFormat = errors.New("intiter: invalid reason format")

	// ErrReasonInvalidLength is returned for non-empty reasons shorter than
	// MinLength or longer than MaxLength. It is checked before the format.
	ErrReasonInvalidLength = errors.New("intiter: invalid reason length")
)

// Reason can be embedded in YAML, JSON or flag structs directly.
var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty means "no reason provided". It is valid everywhere a Reason is
// accepted; errors without a reason are told apart by code alone.
var Empty Reason = ""

// Normalize brings s closer to canonical form using only lossless edits:
//
//   - surrounding space is trimmed;
//   - letters are lowercased;
//   - '/' becomes '.', so path-like "intiter/range" works;
//   - '-' becomes '_'.
//
// It does not validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/':
			return '.'
		case '-':
			return '_'
		}
		return r
	}, strings.ToLower(s))
}

// Parse normalizes and validates s. Blank input yields Empty and no error;
// anything else must satisfy the length bounds and reasonFmt.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is like Parse but panics on invalid input. It also panics on
// blank input, since a literal reason that normalizes to nothing is a bug.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("intiter: empty reason in MustParse")
	}
	return r
}

// Validate reports whether r is canonical. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Segments splits r on '.'. Empty yields nil.
func (r Reason) Segments() []string {
	if r == Empty {
		return nil
	}
	return strings.Split(string(r), ".")
}

// HasPrefix reports whether p is a segment-aligned prefix of r:
// "intiter.range" is a prefix of "intiter.range.overflow" but "intiter.ran" is not.
func (r Reason) HasPrefix(p Reason) bool {
	if p == Empty {
		return true
	}
	s := string(r)
	if !strings.HasPrefix(s, string(p)) {
		return false
	}
	return len(s) == len(p) || s[len(p)] == '.'
}

// String returns the reason as a plain string.
func (r Reason) String() string { return string(r) }

// MarshalText implements encoding.TextMarshaler. Non-canonical reasons
// fail; Empty marshals to empty text.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is
// normalized and validated first; blank input yields Empty. On error r is
// left unchanged.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// validate checks a normalized, non-empty reason.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
