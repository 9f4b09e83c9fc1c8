package dto

// CreateRatingRequest represents an anonymous rating submission. SessionID is
// optional; callers without one are keyed by client IP.
type CreateRatingRequest struct {
	PracticeID string `json:"practiceId" binding:"required"`
	Value      int    `json:"value" binding:"required,min=1,max=5"`
	SessionID  string `json:"sessionId"`
}

// UserRatingResponse carries the caller's own rating, null when absent
type UserRatingResponse struct {
	Rating *int `json:"rating"`
}
