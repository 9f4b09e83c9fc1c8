package dto

// CreateCommentRequest represents a public comment submission
type CreateCommentRequest struct {
	PracticeID string `json:"practiceId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Content    string `json:"content" binding:"required,max=1000"`
}
