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

// Package apis holds the small contracts shared by the intiter error model
// and its transport adapters.
//
// The parser, the identifier recognizer, the status mapper and the HTTP and
// gRPC adapters all talk through these interfaces and view types, so the
// adapters never need the concrete error type and the error type never needs
// the adapters. Keep this package free of heavy dependencies.
package apis
