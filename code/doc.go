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

// Package code defines the top-level classification attached to every
// intiter error.
//
// A code answers "what kind of failure is this" in a form that survives
// transport: it is short, lowercase, underscore-separated and stable. The
// integer parser uses three of them:
//
//   - missing: the input carried no elements at all;
//   - invalid: an element was not a digit where a digit was required;
//   - out_of_range: the value does not fit the requested integer type.
//
// The empty code ("") is never valid on an error.
package code
