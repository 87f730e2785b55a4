// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumsup

// Tags of [Maybe].
const (
	TagJust    = "just"
	TagNothing = "nothing"
)

var maybeTags = MustTagSet(TagJust, TagNothing)

// Maybe is an optional value: Just a value, or Nothing.
// Maybe implements [Variant] with the tags just and nothing.
type Maybe[A any] struct {
	ok    bool
	value A
}

// Just creates a Maybe holding a.
func Just[A any](a A) Maybe[A] { return Maybe[A]{ok: true, value: a} }

// Nothing creates an empty Maybe.
func Nothing[A any]() Maybe[A] { return Maybe[A]{} }

// Tag returns TagJust or TagNothing.
func (m Maybe[A]) Tag() string {
	if m.ok {
		return TagJust
	}
	return TagNothing
}

// Members returns the held value for Just and no members for Nothing.
func (m Maybe[A]) Members() []any {
	if m.ok {
		return []any{m.value}
	}
	return nil
}

// Tags returns the tag set {just, nothing}.
func (m Maybe[A]) Tags() *TagSet { return maybeTags }

// IsJust reports whether m holds a value.
func (m Maybe[A]) IsJust() bool { return m.ok }

// IsNothing reports whether m is empty.
func (m Maybe[A]) IsNothing() bool { return !m.ok }

// Get returns the held value and true, or zero and false.
func (m Maybe[A]) Get() (A, bool) { return m.value, m.ok }

// OrElse returns the held value, or fallback for Nothing.
func (m Maybe[A]) OrElse(fallback A) A {
	if m.ok {
		return m.value
	}
	return fallback
}

// MatchMaybe matches on m exhaustively, calling onJust or onNothing.
func MatchMaybe[A, T any](m Maybe[A], onJust func(A) T, onNothing func() T) T {
	return Match[T](m).
		CaseFunc(TagJust, func(members ...any) T { return onJust(member[A](members, 0)) }).
		CaseFunc(TagNothing, func(...any) T { return onNothing() }).
		MustResult()
}

// MapMaybe applies f to the held value.
func MapMaybe[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if m.ok {
		return Just(f(m.value))
	}
	return Nothing[B]()
}
