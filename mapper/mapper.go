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
	"fmt"
	"strings"

	"dirpx.dev/intiter/apis"
	"dirpx.dev/intiter/code"
	"dirpx.dev/intiter/reason"
	"google.golang.org/grpc/codes"
)

// New applies opts on top of the built-in defaults and returns an immutable
// Mapper. It fails only on malformed prefix rules.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpTable, err := compile("HTTP", b.http, func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTable, err := compile("gRPC", b.grpc, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, err
	}
	return &mapper{http: httpTable, grpc: grpcTable}, nil
}

// Must is like New but panics on error.
func Must(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

type mapper struct {
	http *table[int]
	grpc *table[codes.Code]
}

var _ apis.Mapper = (*mapper)(nil)

func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _, _ := m.http.resolve(c, r)
	return v
}

func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _, _ := m.grpc.resolve(c, r)
	return v
}

func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{HTTP: m.HTTPStatus(c, r), GRPC: m.GRPCStatus(c, r)}
}

// Explain renders one line per transport:
//
//	code="out_of_range" reason="intiter.range.overflow"
//	http: source=prefix pattern="intiter.range" -> 400
//	grpc: source=default -> OutOfRange(11)
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	fmt.Fprintf(&b, "code=%q reason=%q\n", c, r)

	v, src, pat := m.http.resolve(c, r)
	fmt.Fprintf(&b, "http: %s -> %d\n", describe(src, pat), v)

	g, src, pat := m.grpc.resolve(c, r)
	fmt.Fprintf(&b, "grpc: %s -> %s(%d)", describe(src, pat), g, uint32(g))
	return b.String()
}

func describe(source, pattern string) string {
	if source == sourcePrefix {
		return fmt.Sprintf("source=%s pattern=%q", source, pattern)
	}
	return "source=" + source
}
