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
	"maps"
	"net/http"

	"dirpx.dev/intiter/code"
	"dirpx.dev/intiter/mapper/internal/prefixtrie"
	"dirpx.dev/intiter/reason"
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	prefix string
	val    int
}

// rules collects the options for one transport. gRPC statuses are kept as
// ints until compile converts them.
type rules struct {
	defaults  map[code.Code]int
	overrides map[code.Code]int
	prefixes  map[code.Code][]prefixRule
	fallback  int
}

func newRules[V ~int | ~uint32](defaults map[code.Code]V, fallback int) rules {
	r := rules{
		defaults:  make(map[code.Code]int, len(defaults)),
		overrides: make(map[code.Code]int),
		prefixes:  make(map[code.Code][]prefixRule),
		fallback:  fallback,
	}
	for c, v := range defaults {
		r.defaults[c] = int(v)
	}
	return r
}

type builder struct {
	http rules
	grpc rules
}

func newBuilder() *builder {
	return &builder{
		http: newRules(defaultHTTP, http.StatusInternalServerError),
		grpc: newRules(defaultGRPC, int(codes.Internal)),
	}
}

// table is the frozen form of rules for one transport.
type table[V any] struct {
	defaults  map[code.Code]V
	overrides map[code.Code]V
	prefixes  map[code.Code]*prefixtrie.Trie[V]
	fallback  V
}

// Resolution tiers, as reported by Explain.
const (
	sourceOverride = "override"
	sourcePrefix   = "prefix"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

func compile[V any](transport string, r rules, conv func(int) V) (*table[V], error) {
	t := &table[V]{
		defaults:  convert(r.defaults, conv),
		overrides: convert(r.overrides, conv),
		prefixes:  make(map[code.Code]*prefixtrie.Trie[V], len(r.prefixes)),
		fallback:  conv(r.fallback),
	}
	for c, list := range r.prefixes {
		trie := prefixtrie.New[V]()
		for _, rule := range list {
			p := reason.Normalize(rule.prefix)
			if err := trie.Insert(p, conv(rule.val)); err != nil {
				return nil, fmt.Errorf("mapper: invalid %s reason prefix %q for code %q: %w", transport, rule.prefix, c, err)
			}
		}
		t.prefixes[c] = trie
	}
	return t, nil
}

func convert[V any](src map[code.Code]int, conv func(int) V) map[code.Code]V {
	dst := make(map[code.Code]V, len(src))
	for c, v := range maps.All(src) {
		dst[c] = conv(v)
	}
	return dst
}

func (t *table[V]) resolve(c code.Code, r reason.Reason) (v V, source, pattern string) {
	if v, ok := t.overrides[c]; ok {
		return v, sourceOverride, ""
	}
	if trie := t.prefixes[c]; trie != nil {
		if v, pat, ok := trie.Match(string(r)); ok {
			return v, sourcePrefix, pat
		}
	}
	if v, ok := t.defaults[c]; ok {
		return v, sourceDefault, ""
	}
	return t.fallback, sourceFallback, ""
}
