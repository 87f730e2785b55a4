// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumsup_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"code.hybscloud.com/sumsup"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

// randType returns a sum type with 1 to 6 single-field tags.
func randType(rng *rand.Rand) *sumsup.Type {
	n := rng.IntN(6) + 1
	cases := make([]sumsup.Case, n)
	for i := range cases {
		cases[i] = sumsup.Case{Tag: "t" + strconv.Itoa(i), Fields: []string{"v"}}
	}
	return sumsup.MustType("Rand", cases...)
}

// randChain returns a random subset of tags in random order.
func randChain(rng *rand.Rand, tags []string) []string {
	chain := slices.Clone(tags)
	rng.Shuffle(len(chain), func(i, j int) { chain[i], chain[j] = chain[j], chain[i] })
	return chain[:rng.IntN(len(chain)+1)]
}

// --- Group 1: Matching ---

// TestPropertyExhaustiveChain: without a wildcard, a chain succeeds iff it
// covers every tag, and then yields the exact handler's result.
func TestPropertyExhaustiveChain(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		typ := randType(rng)
		tags := typ.Tags().Tags()
		actual := tags[rng.IntN(len(tags))]
		payload := randInt(rng)
		chain := randChain(rng, tags)

		m := sumsup.Match[int](typ.Must(actual, payload))
		for _, tag := range chain {
			m.CaseFunc(tag, func(members ...any) int { return members[0].(int) + 1 })
		}
		got, err := m.Result()

		if len(chain) == len(tags) {
			if err != nil {
				t.Fatalf("chain %v on %s: unexpected error %v", chain, actual, err)
			}
			if got != payload+1 {
				t.Fatalf("chain %v on %s: got %d, want %d", chain, actual, got, payload+1)
			}
			continue
		}

		var uerr *sumsup.UnmatchedVariantError
		if !errors.As(err, &uerr) {
			t.Fatalf("chain %v on %s: got %v, want UnmatchedVariantError", chain, actual, err)
		}
		want := slices.DeleteFunc(slices.Clone(tags), func(tag string) bool {
			return slices.Contains(chain, tag)
		})
		if !slices.Equal(uerr.Tags, want) {
			t.Fatalf("chain %v: missing %v, want %v", chain, uerr.Tags, want)
		}
	}
}

// TestPropertyTrailingWildcard: a chain closed by a wildcard always succeeds,
// yielding the exact result if the actual tag was dispatched and the
// wildcard result otherwise.
func TestPropertyTrailingWildcard(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		typ := randType(rng)
		tags := typ.Tags().Tags()
		actual := tags[rng.IntN(len(tags))]
		chain := randChain(rng, tags)

		m := sumsup.Match[string](typ.Must(actual, 0))
		for _, tag := range chain {
			m.Case(tag, "case:"+tag)
		}
		got, err := m.Wildcard("wildcard").Result()
		if err != nil {
			t.Fatalf("chain %v on %s: unexpected error %v", chain, actual, err)
		}

		want := "wildcard"
		if slices.Contains(chain, actual) {
			want = "case:" + actual
		}
		if got != want {
			t.Fatalf("chain %v on %s: got %q, want %q", chain, actual, got, want)
		}
	}
}

// TestPropertyPending: Pending is the canonical complement of the dispatched tags.
func TestPropertyPending(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		typ := randType(rng)
		tags := typ.Tags().Tags()
		chain := randChain(rng, tags)

		m := sumsup.Match[int](typ.Must(tags[0], 0))
		for _, tag := range chain {
			m.Case(tag, 0)
		}
		for i, tag := range m.Pending() {
			if slices.Contains(chain, tag) {
				t.Fatalf("pending tag %s was dispatched", tag)
			}
			if i > 0 && typ.Tags().Index(tag) < typ.Tags().Index(m.Pending()[i-1]) {
				t.Fatalf("pending %v not in canonical order", m.Pending())
			}
		}
		if len(m.Pending())+len(chain) != len(tags) {
			t.Fatalf("pending %v and chain %v do not partition %v", m.Pending(), chain, tags)
		}
	}
}

// TestPropertyDuplicate: repeating any dispatched tag reports that tag.
func TestPropertyDuplicate(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		typ := randType(rng)
		tags := typ.Tags().Tags()
		chain := randChain(rng, tags)
		if len(chain) == 0 {
			continue
		}
		dup := chain[rng.IntN(len(chain))]

		m := sumsup.Match[int](typ.Must(tags[rng.IntN(len(tags))], 0))
		for _, tag := range chain {
			m.Case(tag, 0)
		}
		if m.Err() != nil {
			t.Fatalf("chain %v: unexpected error %v", chain, m.Err())
		}
		m.Case(dup, 0)

		var derr *sumsup.DuplicateMatchError
		if !errors.As(m.Err(), &derr) || derr.Tag != dup {
			t.Fatalf("chain %v + %s: got %v, want duplicate %s", chain, dup, m.Err(), dup)
		}
	}
}

// --- Group 2: Either Monad Laws ---

// TestPropertyEitherLeftIdentity: FlatMapEither(Right(a), f) ≡ f(a)
func TestPropertyEitherLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		f := func(x int) sumsup.Either[string, int] { return sumsup.Right[string](x * 3) }
		left := sumsup.FlatMapEither(sumsup.Right[string](a), f)
		right := f(a)
		lv, _ := left.GetRight()
		rv, _ := right.GetRight()
		if lv != rv {
			t.Fatalf("either left identity: %d != %d (a=%d)", lv, rv, a)
		}
	}
}

// TestPropertyEitherLeftPropagation: FlatMapEither(Left(e), f) ≡ Left(e)
func TestPropertyEitherLeftPropagation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		e := randString(rng)
		m := sumsup.Left[string, int](e)
		result := sumsup.FlatMapEither(m, func(x int) sumsup.Either[string, int] {
			return sumsup.Right[string](x * 2)
		})
		if result.IsRight() {
			t.Fatalf("left should propagate (e=%q)", e)
		}
		got, _ := result.GetLeft()
		if got != e {
			t.Fatalf("left propagation: %q != %q", got, e)
		}
	}
}

// TestPropertyMatchEitherAgreesWithAccessors: MatchEither selects the
// same branch the accessors report.
func TestPropertyMatchEitherAgreesWithAccessors(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		var e sumsup.Either[string, int]
		if rng.IntN(2) == 0 {
			e = sumsup.Left[string, int](randString(rng))
		} else {
			e = sumsup.Right[string](randInt(rng))
		}
		got := sumsup.MatchEither(e,
			func(s string) string { return "L" + s },
			func(x int) string { return "R" + strconv.Itoa(x) },
		)
		var want string
		if v, ok := e.GetRight(); ok {
			want = "R" + strconv.Itoa(v)
		} else {
			s, _ := e.GetLeft()
			want = "L" + s
		}
		if got != want {
			t.Fatalf("MatchEither: got %q, want %q", got, want)
		}
	}
}
