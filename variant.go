// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumsup

import (
	"fmt"
	"slices"
	"strings"
)

// Variant is a value tagged as exactly one of a closed set of alternatives.
//
// Implementations must be immutable for the lifetime of a match:
// Tag must be a member of Tags, and Members must return the payload
// in declared order.
type Variant interface {
	Tag() string
	Members() []any
	Tags() *TagSet
}

// Case declares one variant of a [Type]: its tag and payload field names.
type Case struct {
	Tag    string
	Fields []string
}

// Type is a named closed sum type.
type Type struct {
	name   string
	tags   *TagSet
	fields map[string][]string
}

// NewType declares a sum type with the given cases in canonical order.
func NewType(name string, cases ...Case) (*Type, error) {
	tags := make([]string, len(cases))
	fields := make(map[string][]string, len(cases))
	for i, c := range cases {
		tags[i] = c.Tag
		fields[c.Tag] = slices.Clone(c.Fields)
	}
	ts, err := NewTagSet(tags...)
	if err != nil {
		return nil, fmt.Errorf("sumsup: type %s: %w", name, err)
	}
	return &Type{name: name, tags: ts, fields: fields}, nil
}

// MustType is like NewType but panics on error.
func MustType(name string, cases ...Case) *Type {
	t, err := NewType(name, cases...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Tags returns the closed tag set of the type.
func (t *Type) Tags() *TagSet { return t.tags }

// Fields returns the payload field names declared for tag.
func (t *Type) Fields(tag string) []string { return slices.Clone(t.fields[tag]) }

// New constructs an instance tagged tag carrying members in declared order.
func (t *Type) New(tag string, members ...any) (Instance, error) {
	if !t.tags.Contains(tag) {
		return Instance{}, &UnknownVariantError{Type: t.name, Tag: tag}
	}
	if want := len(t.fields[tag]); len(members) != want {
		return Instance{}, fmt.Errorf("%w: %s.%s takes %d, got %d", ErrArity, t.name, tag, want, len(members))
	}
	return Instance{typ: t, tag: tag, members: slices.Clone(members)}, nil
}

// Must is like New but panics on error.
func (t *Type) Must(tag string, members ...any) Instance {
	v, err := t.New(tag, members...)
	if err != nil {
		panic(err)
	}
	return v
}

// Instance is an immutable value of a [Type].
type Instance struct {
	typ     *Type
	tag     string
	members []any
}

// Tag returns the instance's tag.
func (v Instance) Tag() string { return v.tag }

// Members returns a copy of the payload in declared order.
func (v Instance) Members() []any { return slices.Clone(v.members) }

// Tags returns the closed tag set of the instance's type.
func (v Instance) Tags() *TagSet { return v.typ.tags }

// Type returns the instance's type.
func (v Instance) Type() *Type { return v.typ }

// Is reports whether the instance carries tag.
func (v Instance) Is(tag string) bool { return v.tag == tag }

// Field returns the payload member declared under name.
func (v Instance) Field(name string) (any, bool) {
	i := slices.Index(v.typ.fields[v.tag], name)
	if i < 0 {
		return nil, false
	}
	return v.members[i], true
}

// String renders the instance as Name.tag(field=value, ...).
func (v Instance) String() string {
	if v.typ == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(v.typ.name)
	b.WriteByte('.')
	b.WriteString(v.tag)
	fields := v.typ.fields[v.tag]
	if len(fields) == 0 {
		return b.String()
	}
	b.WriteByte('(')
	for i, name := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", name, v.members[i])
	}
	b.WriteByte(')')
	return b.String()
}
