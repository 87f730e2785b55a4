// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumsup

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Typed errors below report their sentinel through Is,
// so callers can use either errors.Is or errors.As.
var (
	ErrDuplicateMatch     = errors.New("sumsup: duplicate match")
	ErrMatchAfterWildcard = errors.New("sumsup: match after wildcard")
	ErrUnmatchedVariant   = errors.New("sumsup: unmatched variant")
	ErrUnknownVariant     = errors.New("sumsup: unknown variant")
	ErrResultFetched      = errors.New("sumsup: match result already fetched")
	ErrArity              = errors.New("sumsup: wrong number of members")
	ErrEmptyTagSet        = errors.New("sumsup: empty tag set")
	ErrInvalidTag         = errors.New("sumsup: invalid tag")
	ErrDuplicateTag       = errors.New("sumsup: duplicate tag")
)

// DuplicateMatchError reports a tag dispatched more than once in one session.
type DuplicateMatchError struct {
	Tag string
}

func (e *DuplicateMatchError) Error() string {
	return "sumsup: duplicated match for variant: " + e.Tag
}

func (e *DuplicateMatchError) Is(target error) bool { return target == ErrDuplicateMatch }

// MatchAfterWildcardError reports a dispatch after the wildcard matched.
// Tag is [WildcardTag] when the offending call was a second wildcard.
type MatchAfterWildcardError struct {
	Tag string
}

func (e *MatchAfterWildcardError) Error() string {
	return "sumsup: attempted to match variant after wildcard (_): " + e.Tag
}

func (e *MatchAfterWildcardError) Is(target error) bool { return target == ErrMatchAfterWildcard }

// UnmatchedVariantError reports the tags left unaddressed at finalization,
// in canonical order.
type UnmatchedVariantError struct {
	Tags []string
}

func (e *UnmatchedVariantError) Error() string {
	return "sumsup: did not match the following variants: " + strings.Join(e.Tags, ", ")
}

func (e *UnmatchedVariantError) Is(target error) bool { return target == ErrUnmatchedVariant }

// UnknownVariantError reports a tag outside the closed tag set of a type.
type UnknownVariantError struct {
	Type string
	Tag  string
}

func (e *UnknownVariantError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("sumsup: unknown variant: %q", e.Tag)
	}
	return fmt.Sprintf("sumsup: unknown variant for %s: %q", e.Type, e.Tag)
}

func (e *UnknownVariantError) Is(target error) bool { return target == ErrUnknownVariant }
