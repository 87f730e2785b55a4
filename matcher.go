// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumsup

import (
	"sync/atomic"

	set "github.com/hashicorp/go-set/v3"
)

// Handler is the handler for one tag. When Func is non-nil it takes
// precedence over Value and receives the instance's members positionally.
type Handler[R any] struct {
	Value R
	Func  func(members ...any) R
}

// Matcher is a single-use matching session over one [Variant].
//
// Dispatch methods return the Matcher itself for chaining. The first
// misuse (duplicate tag, dispatch after the wildcard, unknown tag) is
// recorded at the offending call and is sticky: [Matcher.Err] reports it
// immediately, later dispatches are ignored, and [Matcher.Result] returns it.
//
// A Matcher is not safe for concurrent use.
type Matcher[R any] struct {
	variant  Variant
	table    *dispatchTable
	matched  *set.Set[string]
	wildcard bool
	resolved bool
	result   R
	err      error
	fetched  atomic.Uintptr
}

// Match opens a matching session on v.
// The session's dispatch surface is the closed tag set of v; the tag v
// carries is the single exact entry. Match never mutates v.
func Match[R any](v Variant) *Matcher[R] {
	m := &Matcher[R]{variant: v}
	if ts := v.Tags(); ts != nil {
		m.table = ts.table(v.Tag())
	}
	if m.table == nil {
		m.matched = set.New[string](0)
		m.err = &UnknownVariantError{Tag: v.Tag()}
		return m
	}
	m.matched = set.New[string](m.table.size())
	return m
}

// MatchWith opens a session on v, lets build chain its dispatches,
// and returns the finalized result.
func MatchWith[R any](v Variant, build func(m *Matcher[R])) (R, error) {
	m := Match[R](v)
	build(m)
	return m.Result()
}

// Case dispatches tag with a literal value.
func (m *Matcher[R]) Case(tag string, value R) *Matcher[R] {
	return m.Handle(tag, Handler[R]{Value: value})
}

// CaseFunc dispatches tag with a callback over the instance's members.
// The callback runs only when tag is the instance's actual tag.
func (m *Matcher[R]) CaseFunc(tag string, f func(members ...any) R) *Matcher[R] {
	return m.Handle(tag, Handler[R]{Func: f})
}

// Handle dispatches tag with h.
//
// For the instance's actual tag the handler's result becomes the session
// result. For any other legal tag the handler is ignored and the tag is
// only marked as addressed.
//
// Dispatching after the wildcard records a [*MatchAfterWildcardError].
// If that dispatch is the actual tag and no exact handler ran before, its
// result still replaces the wildcard's: the exact handler outranks the
// wildcard regardless of call order.
func (m *Matcher[R]) Handle(tag string, h Handler[R]) *Matcher[R] {
	if m.err != nil {
		return m
	}
	kind, ok := m.table.lookup(tag)
	if !ok {
		m.err = &UnknownVariantError{Tag: tag}
		return m
	}
	if m.wildcard && kind == caseExact && !m.resolved {
		// Rejected below, but the exact handler still outranks the wildcard.
		m.resolve(h)
	}
	if !m.admit(tag) {
		return m
	}
	m.matched.Insert(tag)
	if kind == caseExact {
		m.resolve(h)
	}
	return m
}

func (m *Matcher[R]) resolve(h Handler[R]) {
	m.resolved = true
	if h.Func != nil {
		m.result = h.Func(m.variant.Members()...)
		return
	}
	m.result = h.Value
}

// Wildcard dispatches the catch-all handler with a literal value.
func (m *Matcher[R]) Wildcard(value R) *Matcher[R] {
	return m.matchWildcard(value, nil)
}

// WildcardFunc dispatches the catch-all handler with a callback over the
// whole instance. The callback runs only when the actual tag has not
// been matched yet.
func (m *Matcher[R]) WildcardFunc(f func(v Variant) R) *Matcher[R] {
	var zero R
	return m.matchWildcard(zero, f)
}

func (m *Matcher[R]) matchWildcard(value R, f func(Variant) R) *Matcher[R] {
	if m.err != nil {
		return m
	}
	if !m.admit(WildcardTag) {
		return m
	}
	m.wildcard = true
	if m.resolved {
		return m
	}
	if f != nil {
		m.result = f(m.variant)
	} else {
		m.result = value
	}
	return m
}

// admit applies the guards shared by every dispatch and records the
// first violation. The wildcard guard runs before the duplicate guard.
func (m *Matcher[R]) admit(tag string) bool {
	if m.wildcard {
		m.err = &MatchAfterWildcardError{Tag: tag}
		return false
	}
	if tag != WildcardTag && m.matched.Contains(tag) {
		m.err = &DuplicateMatchError{Tag: tag}
		return false
	}
	return true
}

// Err returns the first dispatch error recorded by the session, or nil.
func (m *Matcher[R]) Err() error { return m.err }

// Pending returns the tags not yet addressed, in canonical order.
// A session closed by the wildcard has no pending tags.
func (m *Matcher[R]) Pending() []string {
	if m.table == nil || m.wildcard {
		return nil
	}
	return m.table.tags.Missing(m.matched)
}

// Result finalizes the session.
//
// If a dispatch error was recorded, Result returns it together with the
// result selected so far. Otherwise it returns the selected result when
// the wildcard matched or every tag was addressed, and an
// [*UnmatchedVariantError] naming the missing tags when not.
// Result is one-shot: later calls return ErrResultFetched.
func (m *Matcher[R]) Result() (R, error) {
	var zero R
	if m.fetched.Add(1) != 1 {
		return zero, ErrResultFetched
	}
	if m.err != nil {
		return m.result, m.err
	}
	if m.wildcard || m.matched.Size() == m.table.size() {
		return m.result, nil
	}
	return zero, &UnmatchedVariantError{Tags: m.table.tags.Missing(m.matched)}
}

// MustResult is like Result but panics on error.
func (m *Matcher[R]) MustResult() R {
	r, err := m.Result()
	if err != nil {
		panic(err)
	}
	return r
}
