// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumsup

import (
	"slices"

	set "github.com/hashicorp/go-set/v3"
)

// WildcardTag is the name reserved for the wildcard handler.
// It cannot be used as a variant tag.
const WildcardTag = "_"

// TagSet is the closed, ordered set of legal tags for a sum type.
// A TagSet is immutable once constructed and safe for concurrent use.
//
// The declaration order is the canonical order: it is the order of
// [TagSet.Tags], of [TagSet.Others], and of the tags reported by
// [UnmatchedVariantError].
type TagSet struct {
	order   []string
	members *set.Set[string]
	tables  []*dispatchTable
}

// NewTagSet creates a TagSet from tags in canonical order.
// Returns ErrEmptyTagSet for no tags, ErrInvalidTag for an empty or
// reserved tag, and ErrDuplicateTag for a tag listed twice.
func NewTagSet(tags ...string) (*TagSet, error) {
	if len(tags) == 0 {
		return nil, ErrEmptyTagSet
	}
	members := set.New[string](len(tags))
	for _, tag := range tags {
		if tag == "" || tag == WildcardTag {
			return nil, ErrInvalidTag
		}
		if !members.Insert(tag) {
			return nil, ErrDuplicateTag
		}
	}
	ts := &TagSet{
		order:   slices.Clone(tags),
		members: members,
	}
	ts.tables = make([]*dispatchTable, len(ts.order))
	for i, tag := range ts.order {
		ts.tables[i] = buildTable(ts, tag, ts.Others(tag))
	}
	return ts, nil
}

// MustTagSet is like NewTagSet but panics on error.
func MustTagSet(tags ...string) *TagSet {
	ts, err := NewTagSet(tags...)
	if err != nil {
		panic(err)
	}
	return ts
}

// Len returns the number of tags.
func (ts *TagSet) Len() int { return len(ts.order) }

// Tags returns a copy of the tags in canonical order.
func (ts *TagSet) Tags() []string { return slices.Clone(ts.order) }

// Contains reports whether tag is legal for this set.
func (ts *TagSet) Contains(tag string) bool { return ts.members.Contains(tag) }

// Index returns the canonical position of tag, or -1.
func (ts *TagSet) Index(tag string) int { return slices.Index(ts.order, tag) }

// Others returns every tag except tag, in canonical order.
func (ts *TagSet) Others(tag string) []string {
	others := make([]string, 0, len(ts.order))
	for _, t := range ts.order {
		if t != tag {
			others = append(others, t)
		}
	}
	return others
}

// Missing returns the tags not in covered, in canonical order.
func (ts *TagSet) Missing(covered *set.Set[string]) []string {
	var missing []string
	for _, t := range ts.order {
		if covered == nil || !covered.Contains(t) {
			missing = append(missing, t)
		}
	}
	return missing
}

// table returns the dispatch table whose exact entry is tag,
// or nil if tag is not in the set.
func (ts *TagSet) table(tag string) *dispatchTable {
	i := ts.Index(tag)
	if i < 0 {
		return nil
	}
	return ts.tables[i]
}
