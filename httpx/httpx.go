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

package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"dirpx.dev/intiter/adapter"
	"dirpx.dev/intiter/apis"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// ContentType is set on every error response.
const ContentType = "application/json"

// Meta carries request-scoped extras added on top of the error.
type Meta struct {
	RequestID         string
	RetryAfterSeconds int
}

// Writer turns errors into HTTP responses using Mapper for the status.
type Writer struct {
	Mapper apis.Mapper
}

// Write writes err as a google.rpc.Status JSON body. Errors that do not
// carry an *intiter.Error are written as internal errors without their
// message. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	e := adapter.Lift(err)
	if e == nil {
		return
	}
	st := w.Mapper.Status(e.Code, e.Reason)

	body := &spb.Status{Code: int32(st.GRPC), Message: strings.ToValidUTF8(e.Message, "\uFFFD")}
	add := func(m proto.Message) {
		if a, err := anypb.New(m); err == nil {
			body.Details = append(body.Details, a)
		}
	}
	add(adapter.ErrorInfo(e))
	if br := adapter.BadRequest(e); br != nil {
		add(br)
	}
	if meta.RequestID != "" {
		add(&errdetails.RequestInfo{RequestId: meta.RequestID})
	}

	b, err := protojson.Marshal(body)
	if err != nil {
		// Status and its details are all valid UTF-8 by now; keep the
		// status code even if a future detail type fails to encode.
		b, err = protojson.Marshal(&spb.Status{Code: body.GetCode(), Message: body.GetMessage()})
		if err != nil {
			b = fallbackBody
		}
	}

	rw.Header().Set("Content-Type", ContentType)
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(b)
}

var fallbackBody = []byte(`{"code":13,"message":"internal error"}`)

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handle adapts h into an http.Handler that writes h's error with w.
// The request ID is taken from the X-Request-Id header.
func (w Writer) Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.Write(rw, err, Meta{RequestID: r.Header.Get("X-Request-Id")})
		}
	})
}

// Decode parses a body written by Write back into a google.rpc.Status.
func Decode(b []byte) (*spb.Status, error) {
	st := new(spb.Status)
	if err := protojson.Unmarshal(b, st); err != nil {
		return nil, err
	}
	return st, nil
}
