// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sumsup

// caseKind selects how a session treats a dispatch for one tag.
type caseKind uint8

const (
	// caseIncorrect: the tag is legal but not the instance's actual tag.
	caseIncorrect caseKind = iota
	// caseExact: the tag is the instance's actual tag.
	caseExact
)

// dispatchTable is the dispatch surface of every session opened on an
// instance carrying one particular tag. Exactly one entry is exact;
// the remaining entries, one per other tag, are incorrect.
//
// Tables are built once per tag when the TagSet is constructed and are
// shared read-only by all sessions.
type dispatchTable struct {
	tags  *TagSet
	exact string
	kinds map[string]caseKind
}

func buildTable(ts *TagSet, exact string, others []string) *dispatchTable {
	kinds := make(map[string]caseKind, len(others)+1)
	kinds[exact] = caseExact
	for _, other := range others {
		kinds[other] = caseIncorrect
	}
	return &dispatchTable{tags: ts, exact: exact, kinds: kinds}
}

// lookup returns the kind of tag and whether tag is legal at all.
func (t *dispatchTable) lookup(tag string) (caseKind, bool) {
	k, ok := t.kinds[tag]
	return k, ok
}

// size returns the number of tags the table covers.
func (t *dispatchTable) size() int { return len(t.kinds) }
