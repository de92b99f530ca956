package alert

// Filter selects records by independent dimensions. Each field is a set
// of acceptable values; an empty set places no constraint on that
// dimension.
//
// Matching is AND across dimensions and OR within one: a record matches
// iff, for every non-empty dimension, the record's value for that
// dimension is one of the requested values. Tags is multi-valued on the
// record side, so a non-empty tag filter matches when the record's tag
// set intersects it. A record with an absent field never matches a
// non-empty filter on that dimension.
type Filter struct {
	Tags       []string
	Sources    []string
	Sessions   []string
	Kinds      []string
	DedupeKeys []string
}

// Empty reports whether the filter places no constraint at all.
func (f Filter) Empty() bool {
	return len(f.Tags) == 0 &&
		len(f.Sources) == 0 &&
		len(f.Sessions) == 0 &&
		len(f.Kinds) == 0 &&
		len(f.DedupeKeys) == 0
}

// Matches reports whether the record satisfies every non-empty dimension.
func (f Filter) Matches(a *Alert) bool {
	if len(f.Tags) > 0 && !intersects(a.Tags, f.Tags) {
		return false
	}
	if !memberOf(a.Source, f.Sources) {
		return false
	}
	if !memberOf(a.Session, f.Sessions) {
		return false
	}
	if !memberOf(a.Kind, f.Kinds) {
		return false
	}
	if !memberOf(a.DedupeKey, f.DedupeKeys) {
		return false
	}
	return true
}

// memberOf reports whether value is in want. An empty want set is no
// constraint; an absent (empty) value never matches a non-empty set.
func memberOf(value string, want []string) bool {
	if len(want) == 0 {
		return true
	}
	if value == "" {
		return false
	}
	for _, w := range want {
		if value == w {
			return true
		}
	}
	return false
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
