package models

// Application status values. Transitions are not constrained; these are the
// two states the dashboard aggregates on.
const (
	ApplicationStatusProcessing = "processing"
	ApplicationStatusCompleted  = "completed"
)

// Applications are schema-flexible: beyond userEmail and applicationStatus
// the submitted form fields vary per scholarship, so the 'applied'
// collection is handled as raw documents rather than a fixed struct.
