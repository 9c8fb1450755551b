package dto

// MessageResponse is the uniform body for error and status responses
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessage creates a message response
func NewMessage(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// InsertResponse reports the id of a newly inserted document. InsertedID
// is null when the insert was skipped (duplicate user email).
type InsertResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

// UpdateResponse reports how many documents an update matched and modified
type UpdateResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResponse reports how many documents a delete removed. A zero count
// is still a success.
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
