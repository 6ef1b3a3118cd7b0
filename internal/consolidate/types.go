package consolidate

// ShowDirectory is one discovered candidate directory. Records are created
// by the analyzer and never mutated afterwards. A zero Season or Year means
// the value could not be determined.
type ShowDirectory struct {
	Path            string
	RawTitle        string
	Season          int
	Year            int
	NormalizedTitle string

	// Confidence is reserved for future scoring of the title extraction; the
	// grouping predicate does not consult it yet.
	Confidence float64
}

// ShowGroup collects the directories that represent the same show. Members
// are appended during grouping and frozen afterwards; the identity fields
// may be overwritten exactly once by the enhance stage.
type ShowGroup struct {
	CanonicalTitle string
	Year           int
	ExternalID     string
	Members        []ShowDirectory
}

// ConsolidationOperation records the outcome for one (group, member) pair.
// Failed operations never carry a destination.
type ConsolidationOperation struct {
	Source      string `json:"source"`
	Destination string `json:"destination,omitempty"`
	Season      int    `json:"season,omitempty"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
}

// ConsolidationResult reports one consolidated group. Groups with a single
// member are never consolidated and never appear here.
type ConsolidationResult struct {
	ShowTitle        string                   `json:"show_title"`
	UnifiedDirectory string                   `json:"unified_directory"`
	ExternalID       string                   `json:"external_id,omitempty"`
	Operations       []ConsolidationOperation `json:"operations"`
}
