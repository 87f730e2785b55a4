// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sumsup provides runtime-enforced exhaustive matching over
// closed sum types in Go.
//
// Go has no compile-time exhaustiveness check for tagged unions. sumsup
// moves the check to the call: a [Matcher] session is opened on a
// [Variant], the caller chains one handler per tag and optionally a
// wildcard, and [Matcher.Result] yields the handler result for the
// variant's actual tag, or fails if a tag was left unaddressed.
//
// # Variants
//
// A [Variant] exposes three facts:
//
//   - Tag: the tag it carries
//   - Members: the ordered payload
//   - Tags: the closed [TagSet] of its type, in canonical order
//
// [Type] and [Instance] are a minimal model for declaring named sum types
// at runtime. [Either] and [Maybe] are generic sum types that implement
// [Variant] directly.
//
// # Matching
//
//   - [Match]: Open a session on a variant
//   - [Matcher.Case]: Dispatch a tag with a literal value
//   - [Matcher.CaseFunc]: Dispatch a tag with a callback over the members
//   - [Matcher.Handle]: Dispatch a tag with a [Handler] (callback wins over value)
//   - [Matcher.Wildcard], [Matcher.WildcardFunc]: Catch-all handler
//   - [Matcher.Result]: Finalize (one-shot)
//   - [Matcher.MustResult]: Finalize, panicking on error
//   - [MatchWith]: Open, build, and finalize in one call
//
// Each session carries a dispatch table chosen by the variant's tag: the
// actual tag is the exact entry, every other legal tag an incorrect one.
// Dispatching an incorrect tag only marks it as addressed; its handler is
// never called. Calls may be chained in any order.
//
// Precedence: the exact handler always wins over the wildcard, whether it
// is dispatched before or after it. The wildcard result is used only
// when the actual tag is never dispatched.
//
// # Errors
//
// Misuse is detected at the offending call and recorded; the first error
// is sticky and returned by [Matcher.Err] and [Matcher.Result]:
//
//   - [DuplicateMatchError]: A tag dispatched twice ([ErrDuplicateMatch])
//   - [MatchAfterWildcardError]: Any dispatch after the wildcard ([ErrMatchAfterWildcard])
//   - [UnknownVariantError]: A tag outside the tag set ([ErrUnknownVariant])
//
// Incomplete coverage is detectable only at finalization:
//
//   - [UnmatchedVariantError]: Missing tags in canonical order ([ErrUnmatchedVariant])
//
// # Example
//
//	shape := sumsup.MustType("Shape",
//		sumsup.Case{Tag: "circle", Fields: []string{"r"}},
//		sumsup.Case{Tag: "rect", Fields: []string{"w", "h"}},
//		sumsup.Case{Tag: "empty"},
//	)
//
//	area, err := sumsup.Match[float64](shape.Must("rect", 2.0, 3.0)).
//		CaseFunc("circle", func(m ...any) float64 { r := m[0].(float64); return 3.14 * r * r }).
//		CaseFunc("rect", func(m ...any) float64 { return m[0].(float64) * m[1].(float64) }).
//		Wildcard(0).
//		Result()
//	// area == 6, err == nil
package sumsup
