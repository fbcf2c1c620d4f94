package models

// TagSet is an ordered set of free-text category tags (regions, triggers).
// Insertion order is preserved; membership is exact string equality.
type TagSet struct {
	values []string
	seen   map[string]struct{}
}

// NewTagSet creates a TagSet seeded with the given values.
func NewTagSet(seed ...string) *TagSet {
	ts := &TagSet{seen: make(map[string]struct{}, len(seed))}
	for _, v := range seed {
		ts.Add(v)
	}
	return ts
}

// Add inserts v if it is not already present. It reports whether the
// set grew. Empty strings are ignored.
func (ts *TagSet) Add(v string) bool {
	if v == "" {
		return false
	}
	if _, ok := ts.seen[v]; ok {
		return false
	}
	ts.seen[v] = struct{}{}
	ts.values = append(ts.values, v)
	return true
}

// Contains reports whether v is in the set.
func (ts *TagSet) Contains(v string) bool {
	_, ok := ts.seen[v]
	return ok
}

// Values returns a copy of the tags in insertion order.
func (ts *TagSet) Values() []string {
	out := make([]string, len(ts.values))
	copy(out, ts.values)
	return out
}

// Len returns the number of tags in the set.
func (ts *TagSet) Len() int {
	return len(ts.values)
}
