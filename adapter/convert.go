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

package adapter

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/intiter"
	"dirpx.dev/intiter/apis"
	"dirpx.dev/intiter/code"
	"dirpx.dev/intiter/reason"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// Domain is the ErrorInfo domain attached to every error detail.
const Domain = "intiter.dirpx.dev"

// FieldKey is the detail key naming the request field an error refers to.
// Errors carrying it produce a BadRequest detail.
const FieldKey = "field"

// Metadata keys set on ErrorInfo in addition to the error's own details.
const (
	MetaCode = "code"
	MetaKind = "kind"
)

var errInternal = intiter.New(code.Internal, reason.Empty, "internal error")

// Lift returns the *intiter.Error found in err's chain. Any other error
// becomes an internal error whose cause is err and whose message hides it.
// Lift(nil) is nil.
func Lift(err error) *intiter.Error {
	if err == nil {
		return nil
	}
	var e *intiter.Error
	if errors.As(err, &e) && e != nil {
		return e
	}
	return errInternal.WithCause(err)
}

// ToDescriptor flattens e together with its resolved statuses.
func ToDescriptor(e *intiter.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:       string(e.Code),
		Reason:     string(e.Reason),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
	}
}

// Describe lifts err and resolves its statuses with m.
func Describe(m apis.Mapper, err error) apis.ErrorDescriptor {
	e := Lift(err)
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return ToDescriptor(e, m.Status(e.Code, e.Reason))
}

// ToView returns the client view of e. Nothing is redacted.
func ToView(e *intiter.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return e.ErrorView()
}

// ErrorInfo builds the google.rpc.ErrorInfo detail for e. The reason is
// the dotted reason, or the code when e has none; details become string
// metadata. Invalid UTF-8 in details is replaced with U+FFFD, since proto
// strings must be valid UTF-8 and raw parser input often is not.
func ErrorInfo(e *intiter.Error) *errdetails.ErrorInfo {
	md := make(map[string]string, len(e.Details)+2)
	for k, v := range e.Details {
		md[validUTF8(k)] = validUTF8(fmt.Sprint(v))
	}
	md[MetaCode] = string(e.Code)
	if e.Kind != intiter.KindNone {
		md[MetaKind] = e.Kind.String()
	}
	r := string(e.Reason)
	if r == "" {
		r = string(e.Code)
	}
	return &errdetails.ErrorInfo{Reason: r, Domain: Domain, Metadata: md}
}

// BadRequest builds a google.rpc.BadRequest detail when e names the field
// it refers to, and returns nil otherwise.
func BadRequest(e *intiter.Error) *errdetails.BadRequest {
	field, ok := e.Details[FieldKey].(string)
	if !ok || field == "" {
		return nil
	}
	return &errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{
			Field:       validUTF8(field),
			Description: validUTF8(e.Message),
		}},
	}
}

// FromErrorInfo rebuilds an error from a detail produced by ErrorInfo.
// Parser reasons map back onto their sentinel, so errors.Is keeps working
// across a transport boundary.
func FromErrorInfo(info *errdetails.ErrorInfo, msg string) *intiter.Error {
	if info == nil {
		return nil
	}
	r := reason.Reason(info.GetReason())
	for _, s := range sentinels {
		if s.Reason == r {
			return s.WithMessage(msg).WithDetails(metadata(info))
		}
	}
	c, err := code.Parse(info.GetMetadata()[MetaCode])
	if err != nil || c == code.Empty {
		c = code.Internal
	}
	if string(r) == string(c) {
		r = reason.Empty
	}
	return intiter.New(c, r, msg).WithDetails(metadata(info))
}

func validUTF8(s string) string { return strings.ToValidUTF8(s, "\uFFFD") }

var sentinels = []*intiter.Error{
	intiter.ErrEmpty,
	intiter.ErrInvalidDigit,
	intiter.ErrOverflow,
	intiter.ErrUnderflow,
}

func metadata(info *errdetails.ErrorInfo) map[string]any {
	out := make(map[string]any, len(info.GetMetadata()))
	for k, v := range info.GetMetadata() {
		if k == MetaCode || k == MetaKind {
			continue
		}
		out[k] = v
	}
	return out
}
