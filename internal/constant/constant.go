package constant

import "time"

const (
	// RequestIDHeader carries the per-request xid on responses.
	RequestIDHeader = "X-Fieldtrack-Request-ID"

	ContextKeyRequestID = "requestid"
)

// PredatorRecordEpoch is the floor date for predator monitoring records.
// Date ranges submitted with an earlier start or end are clamped to it.
var PredatorRecordEpoch = time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)

// Predator sub-type names, matched case-insensitively against the catalog.
const (
	PredatorSubTypeTrapsEstablished = "traps established"
	PredatorSubTypeTrapsChecked     = "traps checked"
	PredatorSubTypeCatches          = "catches"
)
