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
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim", "  invalid  ", "invalid"},
		{"lower", "MiSsInG", "missing"},
		{"dash", "out-of-range", "out_of_range"},
		{"inner space", "out of range", "out_of_range"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	valid := map[string]Code{
		"invalid":       Invalid,
		" OUT-OF-RANGE": OutOfRange,
		"Missing":       Missing,
		"abc":           Code("abc"),
	}
	for in, want := range valid {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("Parse(%q) = %q, want %q", in, got, want)
		}
	}

	invalid := []string{"", "ab", "1abc", "in.valid", strings.Repeat("a", MaxLength+1)}
	for _, in := range invalid {
		got, err := Parse(in)
		if err != ErrCodeInvalid {
			t.Fatalf("Parse(%q) err = %v, want ErrCodeInvalid", in, err)
		}
		if got != Empty {
			t.Fatalf("Parse(%q) on error must return Empty, got %q", in, got)
		}
	}
}

func TestLengthBoundaries(t *testing.T) {
	if _, err := Parse(strings.Repeat("a", MaxLength)); err != nil {
		t.Fatalf("max length code rejected: %v", err)
	}
	if _, err := Parse(strings.Repeat("a", MinLength)); err != nil {
		t.Fatalf("min length code rejected: %v", err)
	}
	if _, err := Parse(strings.Repeat("a", MinLength-1)); err == nil {
		t.Fatalf("short code accepted")
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("??")
}

func TestKnown(t *testing.T) {
	for _, c := range All {
		if !Known(c) {
			t.Fatalf("Known(%q) = false", c)
		}
		if err := Validate(c); err != nil {
			t.Fatalf("declared code %q is not canonical: %v", c, err)
		}
	}
	if Known("not_declared") {
		t.Fatalf("Known accepted an undeclared code")
	}
}

func TestText(t *testing.T) {
	b, err := OutOfRange.MarshalText()
	if err != nil || string(b) != "out_of_range" {
		t.Fatalf("MarshalText() = %q, %v", b, err)
	}
	if _, err := Code("Bad-Code").MarshalText(); err == nil {
		t.Fatalf("MarshalText() must reject non-canonical codes")
	}

	var c Code
	if err := c.UnmarshalText([]byte("  Out-Of-Range \n")); err != nil {
		t.Fatalf("UnmarshalText() error: %v", err)
	}
	if c != OutOfRange {
		t.Fatalf("UnmarshalText() = %q, want %q", c, OutOfRange)
	}
	if err := c.UnmarshalText([]byte("!!")); err == nil {
		t.Fatalf("UnmarshalText() must reject garbage")
	}
}
