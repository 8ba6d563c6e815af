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

package grpcx

import (
	"context"
	"errors"
	"strings"

	"dirpx.dev/intiter"
	"dirpx.dev/intiter/adapter"
	"dirpx.dev/intiter/apis"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// Extras holds optional request metadata attached to the status.
type Extras struct {
	// RequestID is copied into a RequestInfo detail when set.
	RequestID string

	// ServingData is free-form RequestInfo payload (for example a trace ID).
	ServingData string
}

// MetaFn extracts Extras from the request context and the error.
type MetaFn func(ctx context.Context, e *intiter.Error) Extras

// UnaryServerInterceptor returns an interceptor that converts handler
// errors carrying an *intiter.Error into gRPC statuses resolved by m.
// Other errors pass through untouched. metaFn may be nil.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *intiter.Error) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var e *intiter.Error
		if !errors.As(err, &e) || e == nil {
			return nil, err
		}
		return nil, Status(m, e, metaFn(ctx, e)).Err()
	}
}

// Status builds the gRPC status for e. If the details cannot be attached
// the bare status is returned.
func Status(m apis.Mapper, e *intiter.Error, ex Extras) *gstatus.Status {
	base := gstatus.New(m.GRPCStatus(e.Code, e.Reason), strings.ToValidUTF8(e.Message, "\uFFFD"))

	details := []protoadapt.MessageV1{adapter.ErrorInfo(e)}
	if br := adapter.BadRequest(e); br != nil {
		details = append(details, br)
	}
	if ex.RequestID != "" || ex.ServingData != "" {
		details = append(details, &errdetails.RequestInfo{
			RequestId:   ex.RequestID,
			ServingData: ex.ServingData,
		})
	}

	with, err := base.WithDetails(details...)
	if err != nil {
		return base
	}
	return with
}

// ExtractErrorInfo returns the ErrorInfo detail of a gRPC error, if any.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	return extract[*errdetails.ErrorInfo](err)
}

// ExtractBadRequest returns the BadRequest detail of a gRPC error, if any.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	return extract[*errdetails.BadRequest](err)
}

// FromError rebuilds the *intiter.Error carried by a gRPC error produced
// by this package. The second result is false for any other error.
func FromError(err error) (*intiter.Error, bool) {
	info, ok := ExtractErrorInfo(err)
	if !ok || info.GetDomain() != adapter.Domain {
		return nil, false
	}
	st, _ := gstatus.FromError(err)
	return adapter.FromErrorInfo(info, st.Message()), true
}

func extract[T any](err error) (T, bool) {
	var zero T
	if err == nil {
		return zero, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return zero, false
	}
	for _, d := range st.Details() {
		if v, ok := d.(T); ok {
			return v, true
		}
	}
	return zero, false
}
