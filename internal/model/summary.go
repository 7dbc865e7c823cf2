package model

import "time"

// RunSummary captures metrics from a single consolidation run.
type RunSummary struct {
	RunID string

	FilesProcessed int
	FilesFailed    int
	LinesRepaired  int64
	RowsDropped    int64
	RecordsByType  map[string]int

	HospitalStays    int
	ConsolidatedRows int
	AffiliationKeys  int
	Unaffiliated     int

	DurationParse       time.Duration
	DurationLink        time.Duration
	DurationConsolidate time.Duration
	DurationWrite       time.Duration
	DurationTotal       time.Duration
}
