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

import (
	"dirpx.dev/intiter/code"
	"dirpx.dev/intiter/reason"
	"google.golang.org/grpc/codes"
)

// Mapper resolves a (code, reason) pair into transport statuses.
//
// Resolution is the same for both transports and stops at the first match:
//
//  1. an exact override for the code;
//  2. the longest segment-aligned reason prefix registered for the code;
//  3. the default for the code;
//  4. the fallback.
//
// Implementations are immutable once built and safe for concurrent use.
// The package mapper provides the standard implementation.
type Mapper interface {
	// HTTPStatus returns the HTTP status for c and r. It never returns
	// zero: unknown codes resolve to the fallback.
	HTTPStatus(c code.Code, r reason.Reason) int

	// GRPCStatus returns the gRPC status for c and r. Like HTTPStatus it
	// always returns a usable code.
	GRPCStatus(c code.Code, r reason.Reason) codes.Code

	// Status resolves both transports at once. It is equivalent to calling
	// HTTPStatus and GRPCStatus with the same arguments.
	Status(c code.Code, r reason.Reason) Status

	// Explain describes, one line per transport, which rule produced each
	// status. The format is meant for people and golden tests, not for
	// parsing.
	Explain(c code.Code, r reason.Reason) string
}

// Status is a resolved pair of transport statuses for one error.
type Status struct {
	// HTTP is a net/http status code, e.g. http.StatusUnprocessableEntity.
	HTTP int

	// GRPC is the gRPC status code carried by status.Status.
	GRPC codes.Code
}
