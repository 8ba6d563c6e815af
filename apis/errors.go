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

package apis

// CodedError is an error classified by a canonical code such as "invalid"
// or "out_of_range". Adapters treat an empty or unknown code as internal.
type CodedError interface {
	error
	// ErrorCode returns the normalized code. Never empty.
	ErrorCode() string
}

// ReasonedError refines a code with a dotted reason such as
// "intiter.range.underflow".
type ReasonedError interface {
	error
	// ErrorReason returns the reason, or "" when the code says it all.
	ErrorReason() string
}

// DetailedError exposes structured details, for example the offending
// element position or the bounds of the target type.
type DetailedError interface {
	error
	// ErrorDetails returns details the caller may iterate but not modify.
	// May return nil.
	ErrorDetails() []Detail
}

// Detail is one structured fact attached to an error.
type Detail struct {
	// Type classifies the detail: "position", "bounds", "input".
	Type string `json:"type,omitempty"`
	// Field names the logical input the detail is about, if any.
	Field string `json:"field,omitempty"`
	// Reason is a short explanation, e.g. "not_a_digit".
	Reason string `json:"reason,omitempty"`
	// Info carries string-valued extras (min, max, offset, ...).
	Info map[string]string `json:"info,omitempty"`
}
