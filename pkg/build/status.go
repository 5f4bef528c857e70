package build

// Status is the outcome of building one output.
type Status string

const (
	StatusReady   Status = "ready"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// TargetStatus is the aggregated outcome of one target's outputs.
type TargetStatus string

const (
	// TargetSuccess means every attempted output was written
	TargetSuccess TargetStatus = "success"

	// TargetPartial means some outputs were written and some failed
	TargetPartial TargetStatus = "partial"

	// TargetError means every attempted output failed
	TargetError TargetStatus = "error"

	// TargetSkipped means nothing was attempted
	TargetSkipped TargetStatus = "skipped"
)
