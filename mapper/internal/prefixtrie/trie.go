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

// Package prefixtrie stores values under dot-separated prefixes and finds
// the most specific prefix of a key, one whole segment at a time.
package prefixtrie

import (
	"errors"
	"strings"
)

// Wildcard matches exactly one segment.
const Wildcard = "*"

// ErrInvalidPrefix is returned by Insert for empty prefixes, empty or
// malformed segments, and prefixes made only of wildcards.
var ErrInvalidPrefix = errors.New("prefixtrie: invalid prefix")

// Trie is built once and then only read; reads are safe for concurrent use.
type Trie[V any] struct {
	root node[V]
}

type node[V any] struct {
	next    map[string]*node[V]
	set     bool
	val     V
	pattern string
}

// New returns an empty Trie. A Trie with no prefixes matches nothing.
func New[V any]() *Trie[V] { return &Trie[V]{} }

// Insert stores v under prefix, replacing any earlier value for the same
// prefix. Segments match [a-z][a-z0-9_]* or are the wildcard.
func (t *Trie[V]) Insert(prefix string, v V) error {
	if prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == Wildcard {
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		concrete = true
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	n := &t.root
	for _, s := range segs {
		if n.next == nil {
			n.next = make(map[string]*node[V])
		}
		child, ok := n.next[s]
		if !ok {
			child = &node[V]{}
			n.next[s] = child
		}
		n = child
	}
	n.set, n.val, n.pattern = true, v, prefix
	return nil
}

// Match returns the value stored under the deepest prefix of key, together
// with that prefix as inserted. At equal depth a literal segment beats the
// wildcard.
func (t *Trie[V]) Match(key string) (v V, pattern string, ok bool) {
	best := 0
	var walk func(n *node[V], rest string, depth int)
	walk = func(n *node[V], rest string, depth int) {
		if n.set && depth > best {
			best, v, pattern, ok = depth, n.val, n.pattern, true
		}
		if rest == "" || n.next == nil {
			return
		}
		seg, tail, _ := strings.Cut(rest, ".")
		if child := n.next[seg]; child != nil {
			walk(child, tail, depth+1)
		}
		if child := n.next[Wildcard]; child != nil {
			walk(child, tail, depth+1)
		}
	}
	walk(&t.root, key, 0)
	return v, pattern, ok
}

// Len reports how many prefixes hold a value.
func (t *Trie[V]) Len() int {
	var count func(n *node[V]) int
	count = func(n *node[V]) int {
		c := 0
		if n.set {
			c++
		}
		for _, child := range n.next {
			c += count(child)
		}
		return c
	}
	return count(&t.root)
}

func validSegment(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
