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

// Package reason defines the dotted sub-classification that refines an
// error code, e.g. "intiter.range.overflow" under code "out_of_range".
//
// Reasons have one to four segments. Each segment starts with a lowercase
// letter and continues with lowercase letters, digits or underscores. The
// first segment names the package that produced the error, so transport
// mappers can match whole families by prefix.
//
// Unlike codes, the empty reason is allowed and means "no refinement".
package reason
