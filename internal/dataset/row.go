package dataset

import "strings"

// Value is a tagged scalar cell decoded from a source file: either a number
// or a piece of text. Numeric-looking text stays text until a resolver asks
// for a number.
type Value struct {
	Raw     string
	Num     float64
	Numeric bool
}

// NumberValue returns a numeric Value.
func NumberValue(f float64) Value { return Value{Num: f, Numeric: true} }

// TextValue returns a textual Value.
func TextValue(s string) Value { return Value{Raw: s} }

// String returns the cell's string form. Numeric cells are not re-formatted;
// decoders always carry the source text in Raw.
func (v Value) String() string { return v.Raw }

// Row is one decoded data line: an ordered mapping of arbitrary source
// column names to cell values. Key enumeration order follows the source
// header order, which is what the resolver's first-match-wins rule scans.
type Row struct {
	keys  []string
	cells map[string]Value
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{cells: make(map[string]Value)}
}

// Set stores a cell under key, appending the key to the enumeration order on
// first use. Setting an existing key overwrites the cell in place.
func (r *Row) Set(key string, v Value) {
	if _, ok := r.cells[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.cells[key] = v
}

// Keys returns the row's keys in source order.
func (r *Row) Keys() []string { return r.keys }

// Get returns the cell stored under key.
func (r *Row) Get(key string) (Value, bool) {
	v, ok := r.cells[key]
	return v, ok
}

// Len returns the number of cells.
func (r *Row) Len() int { return len(r.keys) }

// match returns the first key (in source order) whose lowercased form
// contains keyPart lowercased. No scoring among multiple matches.
func (r *Row) match(keyPart string) (string, bool) {
	part := strings.ToLower(keyPart)
	for _, k := range r.keys {
		if strings.Contains(strings.ToLower(k), part) {
			return k, true
		}
	}
	return "", false
}
