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

// Package ident recognizes identifier-shaped text.
//
// An identifier starts with a letter or an underscore and continues with
// letters, digits or underscores; letters and digits may come from any
// script. Text may be wrapped in a pair of escape markers (a leading and a
// trailing backslash), which are stripped before validation:
//
//	ident.Recognize("abc")   // "abc", nil
//	ident.Recognize(`\abc\`) // "abc", nil
//	ident.Recognize("1abc")  // "", ErrLeadingDigit
//
// The result is always a substring of the input; nothing is copied.
// Failures are *intiter.Error values with KindNone, told apart by reason.
package ident
