package dto

import "github.com/polkiloo/customersystem/internal/domain/model"

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Failure builds an error envelope with the given message.
func Failure(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// MutationResponse reports the outcome of a write.
type MutationResponse struct {
	InsertID     int64 `json:"insert_id,omitempty"`
	AffectedRows int64 `json:"affected_rows"`
}

// UpdateResponse is returned by customer updates.
type UpdateResponse struct {
	Success      bool  `json:"success"`
	AffectedRows int64 `json:"affected_rows"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewMutationResponse converts domain mutation result.
func NewMutationResponse(r model.MutationResult) MutationResponse {
	return MutationResponse{InsertID: r.InsertID, AffectedRows: r.RowsAffected}
}
