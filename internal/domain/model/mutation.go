package model

// MutationResult reports the outcome of a write statement.
type MutationResult struct {
	// InsertID is set only by create operations.
	InsertID     int64
	RowsAffected int64
}
