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
	"dirpx.dev/intiter/code"
	"google.golang.org/grpc/codes"
)

// Option adjusts the rules before New freezes them.
type Option func(*builder)

// WithHTTPDefault replaces the default HTTP status for c.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.http.defaults[c] = status }
}

// WithGRPCDefault replaces the default gRPC status for c.
func WithGRPCDefault(c code.Code, status codes.Code) Option {
	return func(b *builder) { b.grpc.defaults[c] = int(status) }
}

// WithHTTPOverride forces the HTTP status for c regardless of reason.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.http.overrides[c] = status }
}

// WithGRPCOverride forces the gRPC status for c regardless of reason.
func WithGRPCOverride(c code.Code, status codes.Code) Option {
	return func(b *builder) { b.grpc.overrides[c] = int(status) }
}

// WithHTTPPrefix adds a reason-prefix rule for c. The prefix is normalized
// like a reason and may use "*" for one segment.
func WithHTTPPrefix(c code.Code, prefix string, status int) Option {
	return func(b *builder) {
		b.http.prefixes[c] = append(b.http.prefixes[c], prefixRule{prefix, status})
	}
}

// WithGRPCPrefix is the gRPC counterpart of WithHTTPPrefix.
func WithGRPCPrefix(c code.Code, prefix string, status codes.Code) Option {
	return func(b *builder) {
		b.grpc.prefixes[c] = append(b.grpc.prefixes[c], prefixRule{prefix, int(status)})
	}
}

// WithFallback replaces the statuses used for codes with no rule at all.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.http.fallback = http
		b.grpc.fallback = int(grpc)
	}
}
