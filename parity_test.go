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
	"strconv"
	"strings"
	"testing"
	"testing/quick"
)

// refKind classifies a strconv failure the way Parse classifies its own.
func refKind(s string, err error) Kind {
	if err == nil {
		return KindNone
	}
	if s == "" {
		return KindEmpty
	}
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return KindUnderflow
		}
		return KindOverflow
	}
	return KindInvalidDigit
}

func agreesSigned[T Integer](s string) bool {
	want, werr := strconv.ParseInt(s, 10, BitSize[T]())
	for _, parse := range parsers[T]() {
		got, err := parse(s)
		if kindOf(err) != refKind(s, werr) {
			return false
		}
		if err == nil && int64(got) != want {
			return false
		}
	}
	return true
}

// agreesUnsigned compares against strconv.ParseUint for unsigned-looking
// input. strconv rejects any sign on unsigned input, so signs are covered by
// their own tests.
func agreesUnsigned[T Integer](s string) bool {
	want, werr := strconv.ParseUint(s, 10, BitSize[T]())
	for _, parse := range parsers[T]() {
		got, err := parse(s)
		if kindOf(err) != refKind(s, werr) {
			return false
		}
		if err == nil && uint64(got) != want {
			return false
		}
	}
	return true
}

func agreesAll(s string) bool {
	ok := agreesSigned[int8](s) && agreesSigned[int16](s) &&
		agreesSigned[int32](s) && agreesSigned[int64](s)
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return ok
	}
	return ok && agreesUnsigned[uint8](s) && agreesUnsigned[uint16](s) &&
		agreesUnsigned[uint32](s) && agreesUnsigned[uint64](s)
}

func TestParity_QuickSigned(t *testing.T) {
	cfg := &quick.Config{MaxCount: 2000}
	err := quick.Check(func(v int64, shift uint8) bool {
		return agreesAll(strconv.FormatInt(v>>(shift%64), 10))
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestParity_QuickUnsigned(t *testing.T) {
	cfg := &quick.Config{MaxCount: 2000}
	err := quick.Check(func(v uint64, shift uint8, extra uint8) bool {
		s := strconv.FormatUint(v>>(shift%64), 10)
		// Push some values past 64 bits.
		s += strings.Repeat("9", int(extra%3))
		return agreesAll(s)
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestParity_Table(t *testing.T) {
	inputs := []string{
		"", "0", "00", "-0", "+0", "1", "-1", "+1",
		"a", "-a", "1a", "1 ", "\t1", "1.0", "1e3", "0x1F", "0b1", "1_0",
		"+", "-", "++1", "--1",
		"127", "128", "-128", "-129",
		"255", "256", "32767", "32768", "65535", "65536",
		"2147483647", "2147483648", "-2147483649", "4294967295", "4294967296",
		"9223372036854775807", "9223372036854775808", "-9223372036854775808", "-9223372036854775809",
		"18446744073709551615", "18446744073709551616", "99999999999999999999999999",
		"-99999999999999999999999999",
	}
	for _, in := range inputs {
		if !agreesAll(in) {
			t.Fatalf("parity broken for %q", in)
		}
	}
}
