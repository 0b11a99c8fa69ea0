// Package table provides the in-memory tabular representation shared by
// all pipeline stages. Cell values are canonical strings; the empty
// string means absent. Every row keeps the 0-based position it had in
// the raw source sheet, which is what lets rejected rows be reported
// with their pre-normalization values later on.
package table

// Row is a single record. Source is the row's position in the raw
// sheet and survives every transformation.
type Row struct {
	Source int
	Cells  map[string]string
}

// Get returns the value of the named field, or "" when absent.
func (r Row) Get(col string) string {
	return r.Cells[col]
}

// Empty reports whether the named field is absent or blank.
func (r Row) Empty(col string) bool {
	return r.Cells[col] == ""
}

// Table is an ordered set of rows with a fixed column order.
type Table struct {
	Columns []string
	Rows    []Row
}

// New returns an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Append adds a row bound to the given source position.
func (t *Table) Append(source int, cells map[string]string) {
	if cells == nil {
		cells = make(map[string]string)
	}
	t.Rows = append(t.Rows, Row{Source: source, Cells: cells})
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Clone returns a deep copy. Stages that mutate cells work on a clone
// so the raw table stays untouched.
func (t *Table) Clone() *Table {
	out := New(t.Columns...)
	out.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		cells := make(map[string]string, len(r.Cells))
		for k, v := range r.Cells {
			cells[k] = v
		}
		out.Rows[i] = Row{Source: r.Source, Cells: cells}
	}
	return out
}

// Column returns the values of one column in row order.
func (t *Table) Column(col string) []string {
	vals := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		vals[i] = r.Cells[col]
	}
	return vals
}

// SetColumn overwrites one column from a same-length value slice.
func (t *Table) SetColumn(col string, vals []string) {
	for i := range t.Rows {
		t.Rows[i].Cells[col] = vals[i]
	}
}

// Apply replaces each value of a column with fn(value).
func (t *Table) Apply(col string, fn func(string) string) {
	for i := range t.Rows {
		t.Rows[i].Cells[col] = fn(t.Rows[i].Cells[col])
	}
}

// Sources returns the set of source positions present in the table.
func (t *Table) Sources() map[int]bool {
	set := make(map[int]bool, len(t.Rows))
	for _, r := range t.Rows {
		set[r.Source] = true
	}
	return set
}

// RowBySource returns the row bound to the given source position.
func (t *Table) RowBySource(source int) (Row, bool) {
	for _, r := range t.Rows {
		if r.Source == source {
			return r, true
		}
	}
	return Row{}, false
}

// Remove drops every row whose source position is in the given set and
// returns the surviving table. Row order is preserved.
func (t *Table) Remove(sources map[int]bool) *Table {
	out := New(t.Columns...)
	for _, r := range t.Rows {
		if !sources[r.Source] {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}
