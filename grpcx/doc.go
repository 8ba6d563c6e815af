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

// Package grpcx maps errors from this module onto gRPC statuses.
//
// The server side is a unary interceptor: handler errors carrying an
// *intiter.Error (directly or wrapped) become a status whose code comes
// from an apis.Mapper and whose details are the standard google.rpc
// ErrorInfo, BadRequest and RequestInfo messages. Clients recover the
// error itself with FromError.
package grpcx
