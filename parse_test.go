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
	"errors"
	"iter"
	"math"
	"strings"
	"testing"
)

func TestParse_Int64Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr error
	}{
		{"plain", "123123", 123123, nil},
		{"empty", "", 0, ErrEmpty},
		{"letters", "asd", 0, ErrInvalidDigit},
		{"trailing letters", "123123asd", 0, ErrInvalidDigit},
		{"overflow", "12312331231253987192874998174", 0, ErrOverflow},
		{"underflow", "-12312331231253987192874998174", 0, ErrUnderflow},
		{"sign then sign", "+-a", 0, ErrInvalidDigit},
		{"explicit plus", "+42", 42, nil},
		{"negative", "-42", -42, nil},
		{"leading zeros", "000000000000000000000000007", 7, nil},
		{"negative zero", "-0", 0, nil},
		{"inner space", "12 3", 0, ErrInvalidDigit},
		{"leading space", " 1", 0, ErrInvalidDigit},
		{"trailing sign", "12-", 0, ErrInvalidDigit},
		{"separator", "1_000", 0, ErrInvalidDigit},
		{"hex prefix", "0x10", 0, ErrInvalidDigit},
		{"non-ascii digit", "1٣", 0, ErrInvalidDigit},
		{"fullwidth digit", "１", 0, ErrInvalidDigit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRunes[int64](tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseRunes(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseRunes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// A sign with nothing after it used to yield 0; it is now rejected so that
// Parse agrees with strconv.
func TestParse_BareSignRejected(t *testing.T) {
	for _, in := range []string{"+", "-"} {
		if _, err := ParseRunes[int32](in); !errors.Is(err, ErrInvalidDigit) {
			t.Fatalf("ParseRunes(%q) err = %v, want ErrInvalidDigit", in, err)
		}
		if _, err := ParseStringBytes[uint8](in); !errors.Is(err, ErrInvalidDigit) {
			t.Fatalf("ParseStringBytes(%q) err = %v, want ErrInvalidDigit", in, err)
		}
	}
}

func TestParse_RepeatedSignRejected(t *testing.T) {
	for _, in := range []string{"--", "++", "+-", "-+1", "--1"} {
		if _, err := ParseRunes[int64](in); !errors.Is(err, ErrInvalidDigit) {
			t.Fatalf("ParseRunes(%q) err = %v, want ErrInvalidDigit", in, err)
		}
	}
}

func TestParse_Boundaries(t *testing.T) {
	t.Run("int8", boundaryTest[int8]("127", "128", "-128", "-129"))
	t.Run("int16", boundaryTest[int16]("32767", "32768", "-32768", "-32769"))
	t.Run("int32", boundaryTest[int32]("2147483647", "2147483648", "-2147483648", "-2147483649"))
	t.Run("int64", boundaryTest[int64]("9223372036854775807", "9223372036854775808",
		"-9223372036854775808", "-9223372036854775809"))
	t.Run("uint8", boundaryTest[uint8]("255", "256", "0", "-1"))
	t.Run("uint16", boundaryTest[uint16]("65535", "65536", "0", "-1"))
	t.Run("uint32", boundaryTest[uint32]("4294967295", "4294967296", "0", "-1"))
	t.Run("uint64", boundaryTest[uint64]("18446744073709551615", "18446744073709551616", "0", "-1"))
}

func boundaryTest[T Integer](maxS, pastMax, minS, pastMin string) func(*testing.T) {
	return func(t *testing.T) {
		for name, parse := range parsers[T]() {
			if got, err := parse(maxS); err != nil || got != MaxOf[T]() {
				t.Fatalf("%s(%q) = %v, %v; want %v", name, maxS, got, err, MaxOf[T]())
			}
			if _, err := parse(pastMax); !errors.Is(err, ErrOverflow) {
				t.Fatalf("%s(%q) err = %v, want ErrOverflow", name, pastMax, err)
			}
			if got, err := parse(minS); err != nil || got != MinOf[T]() {
				t.Fatalf("%s(%q) = %v, %v; want %v", name, minS, got, err, MinOf[T]())
			}
			if _, err := parse(pastMin); !errors.Is(err, ErrUnderflow) {
				t.Fatalf("%s(%q) err = %v, want ErrUnderflow", name, pastMin, err)
			}
		}
	}
}

func parsers[T Integer]() map[string]func(string) (T, error) {
	return map[string]func(string) (T, error){
		"ParseRunes":       ParseRunes[T],
		"ParseStringBytes": ParseStringBytes[T],
		"ParseBytes":       func(s string) (T, error) { return ParseBytes[T]([]byte(s)) },
		"Parse(Runes)":     func(s string) (T, error) { return Parse[T](Runes(s)) },
		"Parse(Bytes)":     func(s string) (T, error) { return Parse[T](StringBytes(s)) },
	}
}

func TestParse_UnsignedNegative(t *testing.T) {
	if got, err := ParseRunes[uint32]("-0000"); err != nil || got != 0 {
		t.Fatalf("ParseRunes(-0000) = %d, %v; want 0, nil", got, err)
	}
	if _, err := ParseRunes[uint64]("-18446744073709551616"); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("err = %v, want ErrUnderflow", err)
	}
	if got, err := ParseRunes[uint8]("+255"); err != nil || got != 255 {
		t.Fatalf("ParseRunes(+255) = %d, %v; want 255, nil", got, err)
	}
}

func TestParse_OverflowBeforeTrailingGarbage(t *testing.T) {
	// The first failing element decides the error.
	if _, err := ParseRunes[int8]("128x"); !errors.Is(err, ErrOverflow) {
		t.Fatalf("err = %v, want ErrOverflow", err)
	}
	if _, err := ParseRunes[int8]("12x8"); !errors.Is(err, ErrInvalidDigit) {
		t.Fatalf("err = %v, want ErrInvalidDigit", err)
	}
}

func TestParse_StopsAtFirstError(t *testing.T) {
	pulled := 0
	seq := func(yield func(rune) bool) {
		for _, r := range "1a23456" {
			pulled++
			if !yield(r) {
				return
			}
		}
	}
	if _, err := Parse[int64](iter.Seq[rune](seq)); !errors.Is(err, ErrInvalidDigit) {
		t.Fatalf("err = %v, want ErrInvalidDigit", err)
	}
	if pulled != 2 {
		t.Fatalf("pulled %d elements, want 2", pulled)
	}
}

func TestParse_NonContiguousSource(t *testing.T) {
	// Digits spread over several chunks never need to be joined.
	chunks := [][]byte{[]byte("-92233"), []byte("72036854"), []byte("775808")}
	seq := func(yield func(byte) bool) {
		for _, c := range chunks {
			for _, b := range c {
				if !yield(b) {
					return
				}
			}
		}
	}
	got, err := Parse[int64](iter.Seq[byte](seq))
	if err != nil || got != math.MinInt64 {
		t.Fatalf("Parse() = %d, %v; want MinInt64", got, err)
	}
}

func TestParse_Skip(t *testing.T) {
	const data = "11232123745_1111111116123"
	got, err := Parse[int64](Skip(Runes(data), '_'))
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("Parse(%q) = %d, %v; want ErrOverflow", data, got, err)
	}
	got, err = Parse[int64](Skip(StringBytes("1_000_000"), '_'))
	if err != nil || got != 1_000_000 {
		t.Fatalf("Parse(1_000_000) = %d, %v", got, err)
	}
	if _, err := Parse[int64](Skip(Runes("___"), '_')); !errors.Is(err, ErrEmpty) {
		t.Fatalf("only separators: err = %v, want ErrEmpty", err)
	}
}

func TestParse_KindsAgree(t *testing.T) {
	inputs := []string{"", "0", "+", "-", "-7", "+7", "99999999999", "-99999999999", "12a", strings.Repeat("9", 40)}
	for _, in := range inputs {
		r, rerr := ParseRunes[int32](in)
		b, berr := ParseStringBytes[int32](in)
		if r != b || kindOf(rerr) != kindOf(berr) {
			t.Fatalf("%q: runes = %d, %v; bytes = %d, %v", in, r, rerr, b, berr)
		}
	}
}

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

func TestAccumulator_Chunks(t *testing.T) {
	chunks := [][]byte{[]byte("-92233"), []byte("72036854"), []byte("775808")}
	var a Accumulator[int64]
	for _, c := range chunks {
		for _, b := range c {
			if err := a.Feed(Classify(b)); err != nil {
				t.Fatalf("Feed(%q) = %v", b, err)
			}
		}
	}
	if got, err := a.Result(); err != nil || got != math.MinInt64 {
		t.Fatalf("Result() = %d, %v; want MinInt64", got, err)
	}

	var empty Accumulator[uint8]
	if _, err := empty.Result(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("zero Accumulator: err = %v, want ErrEmpty", err)
	}

	var sign Accumulator[int8]
	if err := sign.Feed(NegativeSign); err != nil {
		t.Fatalf("Feed(-) = %v", err)
	}
	if err := sign.Feed(NegativeSign); !errors.Is(err, ErrInvalidDigit) {
		t.Fatalf("second sign: err = %v, want ErrInvalidDigit", err)
	}
}

var (
	sinkI64 int64
	sinkI8  int8
	sinkErr error
)

func TestParse_ZeroAllocs(t *testing.T) {
	chunk := []byte("-9223372036854775808")
	bad := []byte("12x")
	tests := []struct {
		name string
		fn   func()
	}{
		{"ParseStringBytes ok", func() { sinkI64, sinkErr = ParseStringBytes[int64]("-9223372036854775808") }},
		{"ParseStringBytes invalid", func() { sinkI8, sinkErr = ParseStringBytes[int8]("12x") }},
		{"ParseStringBytes overflow", func() { sinkI8, sinkErr = ParseStringBytes[int8]("128") }},
		{"ParseRunes ok", func() { sinkI64, sinkErr = ParseRunes[int64]("9223372036854775807") }},
		{"ParseRunes invalid", func() { sinkI8, sinkErr = ParseRunes[int8]("1٣") }},
		{"ParseRunes underflow", func() { sinkI8, sinkErr = ParseRunes[int8]("-129") }},
		{"ParseBytes ok", func() { sinkI64, sinkErr = ParseBytes[int64](chunk) }},
		{"ParseBytes invalid", func() { sinkI8, sinkErr = ParseBytes[int8](bad) }},
		{"ParseBytes empty", func() { sinkI8, sinkErr = ParseBytes[int8](nil) }},
		{"Accumulator skip", func() {
			var a Accumulator[int64]
			for i := 0; i < len(chunk); i++ {
				if chunk[i] == '_' {
					continue
				}
				if sinkErr = a.Feed(Classify(chunk[i])); sinkErr != nil {
					return
				}
			}
			sinkI64, sinkErr = a.Result()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n := testing.AllocsPerRun(100, tt.fn); n != 0 {
				t.Fatalf("%s: %v allocs per run, want 0", tt.name, n)
			}
		})
	}
}
