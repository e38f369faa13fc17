package dataset

import "github.com/google/uuid"

// Selection tracks the active group signature across imports and regroupings.
// It is an explicit state object so the reset policy stays a pure function
// of (old state, new grouping, new dataset identity).
type Selection struct {
	dataset uuid.UUID
	keys    []string
	active  string
}

// Active returns the currently selected signature, or "" before any update.
func (s *Selection) Active() string { return s.active }

// Update reconciles the selection with a new grouping and the identity of
// the dataset it was derived from, returning the resulting active signature.
// Rules:
//   - dataset identity changed (wholesale replace): active = first key,
//     regardless of whether the old signature still exists;
//   - key set changed and the old active is gone: active = first key;
//   - otherwise the previous selection is preserved.
func (s *Selection) Update(g *Grouping, dataset uuid.UUID) string {
	keys := g.Keys()
	defer func() {
		s.dataset = dataset
		s.keys = append(s.keys[:0], keys...)
	}()

	if len(keys) == 0 {
		s.active = ""
		return s.active
	}
	if dataset != s.dataset {
		s.active = keys[0]
		return s.active
	}
	if !sameKeySet(s.keys, keys) && !contains(keys, s.active) {
		s.active = keys[0]
		return s.active
	}
	if s.active == "" || !contains(keys, s.active) {
		s.active = keys[0]
	}
	return s.active
}

func sameKeySet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, k := range a {
		set[k] = struct{}{}
	}
	for _, k := range b {
		if _, ok := set[k]; !ok {
			return false
		}
	}
	return true
}

func contains(keys []string, k string) bool {
	if k == "" {
		return false
	}
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}
