package model

import "time"

// RunSummary captures metrics from a single reconciliation run.
type RunSummary struct {
	RunID      string
	InputPath  string
	OutputPath string

	FAMRowsRead     int
	FAMRowsActive   int
	FAMRowsRejected int
	TMRowsRead      int
	TMRowsActive    int
	TMRowsRejected  int

	PriceType        string // "GP" or "EP"
	PriceConsistency string // "Yes" or "No"
	DateFormat       string

	DurationLoad    time.Duration
	DurationClean   time.Duration
	DurationReject  time.Duration
	DurationAnalyze time.Duration
	DurationExport  time.Duration
	DurationTotal   time.Duration
}
