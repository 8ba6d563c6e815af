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

package mapper

import (
	"net/http"

	"dirpx.dev/intiter/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP is the built-in HTTP status per code, used when neither an
// override nor a prefix rule matches. WithHTTPDefault replaces entries in a
// builder's copy; this map is never written.
var defaultHTTP = map[code.Code]int{
	// Nothing to parse: the client omitted the value.
	code.Missing: http.StatusBadRequest,

	// Malformed input: a stray character, a second sign, a lone sign.
	code.Invalid: http.StatusBadRequest,

	// Well-formed digits whose value the target type cannot hold. 422
	// separates "fix the value" from "fix the syntax".
	code.OutOfRange: http.StatusUnprocessableEntity,

	// Anything unclassified, including errors lifted from other packages.
	code.Internal: http.StatusInternalServerError,
}

// defaultGRPC is the gRPC counterpart of defaultHTTP.
var defaultGRPC = map[code.Code]codes.Code{
	// InvalidArgument: the request itself is wrong, whatever the state.
	code.Missing: codes.InvalidArgument,
	code.Invalid: codes.InvalidArgument,

	// OutOfRange is the canonical code for "valid syntax, value outside the
	// accepted range".
	code.OutOfRange: codes.OutOfRange,

	code.Internal: codes.Internal,
}
