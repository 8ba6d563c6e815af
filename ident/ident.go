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

package ident

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/intiter"
	"dirpx.dev/intiter/code"
	"dirpx.dev/intiter/reason"
)

// Escape is the marker that may wrap an identifier on both sides.
const Escape = '\\'

// Reasons attached to the recognizer's errors. They share the "ident"
// prefix so one mapper rule can cover all of them.
const (
	// ReasonEmpty: nothing was left to validate, either because the text
	// was empty or because it was only a pair of escape markers.
	ReasonEmpty reason.Reason = "ident.input.empty"

	// ReasonLeadingDigit: the first character is a Unicode number.
	ReasonLeadingDigit reason.Reason = "ident.char.leading_digit"

	// ReasonInvalidChar: a character is not a letter, number or '_'.
	ReasonInvalidChar reason.Reason = "ident.char.invalid"

	// ReasonUnbalancedEscape: an escape marker opens or closes the text
	// without a partner on the other side.
	ReasonUnbalancedEscape reason.Reason = "ident.escape.unbalanced"
)

// Recognizer failures. Like the parser's sentinels they are shared and
// must not be mutated. errors.Is matches them, and enriched copies of
// them, by code and reason.
var (
	// ErrEmpty is returned for empty text and for a bare "\\" pair.
	ErrEmpty = intiter.New(code.Missing, ReasonEmpty, "identifier is empty")

	// ErrLeadingDigit is returned when the identifier starts with a digit.
	ErrLeadingDigit = intiter.New(code.Invalid, ReasonLeadingDigit, "identifier must not start with a digit")

	// ErrInvalidChar is returned for punctuation, spaces, symbols and any
	// other character outside letters, numbers and '_'.
	ErrInvalidChar = intiter.New(code.Invalid, ReasonInvalidChar, "identifier contains an invalid character")

	// ErrUnbalancedEscape is returned when only one end carries the
	// escape marker, or the text is a single marker.
	ErrUnbalancedEscape = intiter.New(code.Invalid, ReasonUnbalancedEscape, "escape marker without a matching pair")
)

// identRe is checked after the leading-digit test, so a digit that reaches
// the first position here has already been reported.
var identRe = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*$`)

// Recognize strips an optional pair of escape markers from text and
// validates what remains. On success it returns that remainder.
func Recognize(text string) (string, error) {
	s, err := unescape(text)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", ErrEmpty
	}
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsNumber(r) {
		return "", ErrLeadingDigit
	}
	if !identRe.MatchString(s) {
		return "", ErrInvalidChar
	}
	return s, nil
}

// Valid reports whether Recognize would accept text.
func Valid(text string) bool {
	_, err := Recognize(text)
	return err == nil
}

// MustRecognize is like Recognize but panics on invalid input.
func MustRecognize(text string) string {
	s, err := Recognize(text)
	if err != nil {
		panic(err)
	}
	return s
}

func unescape(text string) (string, error) {
	n := len(text)
	if n == 0 {
		return text, nil
	}
	open, closed := text[0] == Escape, text[n-1] == Escape
	switch {
	case !open && !closed:
		return text, nil
	case open && closed && n >= 2:
		return text[1 : n-1], nil
	}
	return "", ErrUnbalancedEscape
}
