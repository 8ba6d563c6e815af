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

package intiter_test

import (
	"errors"
	"fmt"
	"slices"

	"dirpx.dev/intiter"
)

func ExampleParse() {
	n, err := intiter.Parse[int16](intiter.Runes("-32768"))
	fmt.Println(n, err)

	_, err = intiter.Parse[uint8](slices.Values([]byte("256")))
	fmt.Println(errors.Is(err, intiter.ErrOverflow))
	// Output:
	// -32768 <nil>
	// true
}

func ExampleSkip() {
	n, _ := intiter.Parse[int32](intiter.Skip(intiter.StringBytes("1_000_000"), '_'))
	fmt.Println(n)
	// Output: 1000000
}

func ExampleError_WithDetail() {
	_, err := intiter.ParseRunes[int8]("-129")
	var e *intiter.Error
	if errors.As(err, &e) {
		e = e.WithDetail("target", "int8")
		fmt.Println(e.Code, e.Reason, e.Details["target"])
	}
	// Output: out_of_range intiter.range.underflow int8
}
