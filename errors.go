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

package intiter

import (
	"fmt"
	"maps"

	"dirpx.dev/intiter/apis"
	"dirpx.dev/intiter/code"
	"dirpx.dev/intiter/reason"
)

// Kind is the parser's error taxonomy. The four kinds are mutually
// exclusive; KindNone marks errors raised outside the integer parser.
type Kind uint8

const (
	KindNone Kind = iota
	// KindEmpty: the sequence yielded no elements.
	KindEmpty
	// KindInvalidDigit: an element was neither a digit nor a leading sign.
	KindInvalidDigit
	// KindOverflow: a positive value exceeded the target maximum.
	KindOverflow
	// KindUnderflow: a negative value went below the target minimum.
	KindUnderflow
)

// Reasons attached to the parser's errors.
const (
	ReasonEmpty        reason.Reason = "intiter.input.empty"
	ReasonInvalidDigit reason.Reason = "intiter.digit.invalid"
	ReasonOverflow     reason.Reason = "intiter.range.overflow"
	ReasonUnderflow    reason.Reason = "intiter.range.underflow"
)

// String returns the kind's name as accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInvalidDigit:
		return "invalid digit"
	case KindOverflow:
		return "overflow"
	case KindUnderflow:
		return "underflow"
	default:
		return "none"
	}
}

// Code returns the transport code for k.
func (k Kind) Code() code.Code {
	switch k {
	case KindEmpty:
		return code.Missing
	case KindInvalidDigit:
		return code.Invalid
	case KindOverflow, KindUnderflow:
		return code.OutOfRange
	default:
		return code.Internal
	}
}

// Reason returns the reason for k, or reason.Empty for KindNone.
func (k Kind) Reason() reason.Reason {
	switch k {
	case KindEmpty:
		return ReasonEmpty
	case KindInvalidDigit:
		return ReasonInvalidDigit
	case KindOverflow:
		return ReasonOverflow
	case KindUnderflow:
		return ReasonUnderflow
	default:
		return reason.Empty
	}
}

// ParseKind maps the names produced by Kind.String back to a Kind.
// Dashes and underscores are accepted in place of the space.
func ParseKind(s string) (Kind, bool) {
	switch code.Normalize(s) {
	case "empty":
		return KindEmpty, true
	case "invalid_digit":
		return KindInvalidDigit, true
	case "overflow":
		return KindOverflow, true
	case "underflow":
		return KindUnderflow, true
	}
	return KindNone, false
}

// Parser failures. These values are shared and must not be mutated; use the
// WithX methods to derive an enriched copy. errors.Is matches copies by Kind.
var (
	ErrEmpty        = E(KindEmpty, "cannot parse integer from empty sequence")
	ErrInvalidDigit = E(KindInvalidDigit, "invalid digit found in sequence")
	ErrOverflow     = E(KindOverflow, "number too large to fit in target type")
	ErrUnderflow    = E(KindUnderflow, "number too small to fit in target type")
)

// Error is the error type returned by every package in this module.
//
// Parser errors carry a Kind; errors from other packages (for example the
// identifier recognizer) use KindNone and are told apart by Code and Reason.
// WithX methods return shallow copies, so values can be shared freely.
type Error struct {
	Kind    Kind
	Code    code.Code
	Reason  reason.Reason
	Message string

	// Details is treated as immutable. WithDetail and WithDetails copy it.
	Details map[string]any

	Cause error
}

var (
	_ apis.CodedError    = (*Error)(nil)
	_ apis.ReasonedError = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ apis.ViewProvider  = (*Error)(nil)
)

// E builds a parser error of kind k, deriving Code and Reason from k.
func E(k Kind, msg string, opts ...Option) *Error {
	return apply(&Error{Kind: k, Code: k.Code(), Reason: k.Reason(), Message: msg}, opts)
}

// New builds an error outside the parser taxonomy.
func New(c code.Code, r reason.Reason, msg string, opts ...Option) *Error {
	return apply(&Error{Code: c, Reason: r, Message: msg}, opts)
}

func apply(e *Error, opts []Option) *Error {
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error formats as "<code>: <message>" or "<code>:<reason>: <message>".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != reason.Empty {
		return fmt.Sprintf("%s:%s: %s", e.Code, e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the cause, so errors.Is and errors.As see through e.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind. For KindNone
// targets the Code must match, and the Reason too when target has one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if t.Kind != KindNone {
		return e.Kind == t.Kind
	}
	if e.Code != t.Code {
		return false
	}
	return t.Reason == reason.Empty || e.Reason == t.Reason
}

// ErrorCode returns the transport code, or "" for a nil receiver.
func (e *Error) ErrorCode() string {
	if e == nil {
		return ""
	}
	return string(e.Code)
}

// ErrorReason returns the dotted reason, or "" when there is none or the
// receiver is nil.
func (e *Error) ErrorReason() string {
	if e == nil {
		return ""
	}
	return string(e.Reason)
}

// ErrorDetails renders Details as a single "context" detail with
// stringified values, or nil when there are none.
func (e *Error) ErrorDetails() []apis.Detail {
	if e == nil || len(e.Details) == 0 {
		return nil
	}
	info := make(map[string]string, len(e.Details))
	for k, v := range e.Details {
		info[k] = fmt.Sprint(v)
	}
	return []apis.Detail{{Type: "context", Reason: string(e.Reason), Info: info}}
}

// ErrorView returns the client-facing rendering of e. A nil receiver
// yields the zero view.
func (e *Error) ErrorView() apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Code:    string(e.Code),
		Reason:  string(e.Reason),
		Message: e.Message,
		Details: e.ErrorDetails(),
	}
}

// WithReason returns a copy of e with Reason r.
func (e *Error) WithReason(r reason.Reason) *Error {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithMessage returns a copy of e with a new message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a copy of e with k set to v in Details.
func (e *Error) WithDetail(k string, v any) *Error {
	return e.WithDetails(map[string]any{k: v})
}

// WithDetails returns a copy of e with kv merged into Details; kv wins on
// conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	cp.Details = make(map[string]any, len(e.Details)+len(kv))
	maps.Copy(cp.Details, e.Details)
	maps.Copy(cp.Details, kv)
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
