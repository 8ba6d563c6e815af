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

// Package httpx writes errors from this module as HTTP responses.
//
// The body is the JSON form of google.rpc.Status, the same shape gRPC
// gateways emit, so HTTP and gRPC clients decode one error model:
//
//	{
//	  "code": 11,
//	  "message": "number too large to fit in target type",
//	  "details": [{
//	    "@type": "type.googleapis.com/google.rpc.ErrorInfo",
//	    "reason": "intiter.range.overflow",
//	    "domain": "intiter.dirpx.dev",
//	    "metadata": {"code": "out_of_range", "kind": "overflow"}
//	  }]
//	}
package httpx
