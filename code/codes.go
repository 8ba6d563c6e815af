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

const (
	// Missing means the input was absent: the element sequence ended before
	// yielding anything. Typically 400 / InvalidArgument.
	Missing Code = "missing"

	// Invalid means an element could not be used where it appeared, e.g. a
	// letter in a run of digits or a second sign marker.
	// Typically 400 / InvalidArgument.
	Invalid Code = "invalid"

	// OutOfRange means the digits form a number the target integer type
	// cannot represent, in either direction.
	// Typically 422 / OutOfRange.
	OutOfRange Code = "out_of_range"

	// Internal is the fallback for failures that carry no classification.
	Internal Code = "internal"
)

// All lists every code declared above, in declaration order.
var All = []Code{Missing, Invalid, OutOfRange, Internal}
