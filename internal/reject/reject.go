// Package reject separates invalid rows from the active dataset while
// keeping them reportable with their raw, pre-normalization values.
//
// Rules are an explicit ordered list evaluated against a shrinking
// active set: a row is attributed to the first rule that flags it and
// is never evaluated again, so rules are mutually exclusive in effect
// even when their predicates overlap.
package reject

import "github.com/dkrause/famrecon/internal/table"

// Rule is a named row predicate.
type Rule struct {
	Reason string
	Match  func(table.Row) bool
}

// Buckets collects rejected raw rows grouped by the rule that flagged
// them, in first-flagged order. Repeated applications with the same
// reason merge into one bucket.
type Buckets struct {
	order    []string
	byReason map[string]*table.Table
}

// NewBuckets returns an empty bucket collection.
func NewBuckets() *Buckets {
	return &Buckets{byReason: make(map[string]*table.Table)}
}

// Reasons returns the rule labels in first-flagged order.
func (b *Buckets) Reasons() []string {
	return b.order
}

// Rows returns the raw rows rejected under the given reason.
func (b *Buckets) Rows(reason string) *table.Table {
	return b.byReason[reason]
}

// Total returns the number of rejected rows across all buckets.
func (b *Buckets) Total() int {
	n := 0
	for _, t := range b.byReason {
		n += t.Len()
	}
	return n
}

func (b *Buckets) add(reason string, raw *table.Table, sources map[int]bool) {
	bucket, ok := b.byReason[reason]
	if !ok {
		bucket = table.New(raw.Columns...)
		b.byReason[reason] = bucket
		b.order = append(b.order, reason)
	}
	for _, r := range raw.Rows {
		if sources[r.Source] {
			bucket.Rows = append(bucket.Rows, r)
		}
	}
}

// Apply evaluates the rules in order against either the raw or the
// processed view and returns the surviving processed table. Matched
// rows are materialized from the raw table into buckets; only rows
// still active when a rule runs can match, which keeps active and
// rejected positions an exact partition of the raw positions across
// any number of Apply calls sharing one bucket collection.
func Apply(raw, processed *table.Table, rules []Rule, againstRaw bool, buckets *Buckets) *table.Table {
	active := processed

	for _, rule := range rules {
		activeSet := active.Sources()

		view := active
		if againstRaw {
			view = raw
		}

		matched := make(map[int]bool)
		for _, r := range view.Rows {
			if !activeSet[r.Source] {
				continue
			}
			if rule.Match(r) {
				matched[r.Source] = true
			}
		}
		if len(matched) == 0 {
			continue
		}

		buckets.add(rule.Reason, raw, matched)
		active = active.Remove(matched)
	}
	return active
}
