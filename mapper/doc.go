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

// Package mapper turns an error's code and reason into the HTTP and gRPC
// statuses a server should answer with.
//
// # Resolution
//
// Both transports are resolved with the same rules, first match wins:
//
//  1. an exact override registered for the code;
//  2. the most specific reason-prefix rule registered for the code;
//  3. the default for the code (built in, or replaced by an option);
//  4. the fallback (500 / codes.Internal).
//
// Prefix rules work on whole reason segments. "intiter.range" matches
// "intiter.range.overflow" but not "intiter.ranges"; "*" stands for exactly
// one segment, so "*.range" matches any package's range reasons.
//
// # Defaults
//
//	missing       400  InvalidArgument
//	invalid       400  InvalidArgument
//	out_of_range  422  OutOfRange
//	internal      500  Internal
//
// # Example
//
//	m, err := mapper.New(
//	    mapper.WithHTTPPrefix(code.OutOfRange, "intiter.range.underflow", 400),
//	)
//	st := m.Status(intiter.ErrUnderflow.Code, intiter.ErrUnderflow.Reason)
//	// st.HTTP == 400, st.GRPC == codes.OutOfRange
//
// A Mapper is immutable once built and safe for concurrent use. Explain
// reports which of the four tiers produced each status, for debugging and
// for the command line tool.
package mapper
