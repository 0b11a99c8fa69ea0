// Package chargeblock reconstructs the charge grouping of TM detail
// lines. Detail lines are written as a fixed per-dose pattern repeated
// once per charge; the first reoccurrence of the leading product code
// marks the pattern length.
package chargeblock

import (
	"sort"
	"strconv"

	"github.com/dkrause/famrecon/internal/table"
)

// BlockLength infers the repeating-block length of an ordered product
// code sequence. A group of fewer than two lines is its own block; a
// group whose first code never repeats collapses to one block.
func BlockLength(codes []string) int {
	if len(codes) < 2 {
		return 1
	}
	first := codes[0]
	for i, c := range codes[1:] {
		if c == first {
			return i + 1
		}
	}
	return len(codes)
}

// Assign rewrites the charge_nr and position columns of a TM table.
// Rows are grouped by vo_id; each group is chunked into blocks of the
// inferred length, duplicate (vo_id, charge_nr, pzn) rows are dropped
// keeping the first occurrence, and position is the 1-based running
// count of surviving rows per block. Groups are emitted in ascending
// vo_id order, rows inside a group keep source order. The input table
// is left untouched. The operation is idempotent.
func Assign(t *table.Table) *table.Table {
	out := table.New(t.Columns...)

	groups := make(map[string][]int)
	var order []string
	for i, r := range t.Rows {
		id := r.Get("vo_id")
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], i)
	}
	sort.Strings(order)

	for _, id := range order {
		idx := groups[id]
		codes := make([]string, len(idx))
		for j, i := range idx {
			codes[j] = t.Rows[i].Get("pzn")
		}
		length := BlockLength(codes)

		seen := make(map[string]bool)
		positions := make(map[int]int)
		for j, i := range idx {
			chargeNr := j/length + 1
			key := strconv.Itoa(chargeNr) + "\x00" + codes[j]
			if seen[key] {
				continue
			}
			seen[key] = true
			positions[chargeNr]++

			src := t.Rows[i]
			cells := make(map[string]string, len(src.Cells))
			for k, v := range src.Cells {
				cells[k] = v
			}
			cells["charge_nr"] = strconv.Itoa(chargeNr)
			cells["position"] = strconv.Itoa(positions[chargeNr])
			out.Rows = append(out.Rows, table.Row{Source: src.Source, Cells: cells})
		}
	}
	return out
}
