package dto

// APIResponse is the envelope every endpoint answers with
type APIResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination carries page math for list endpoints
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"totalPages" example:"5"`
}

// NewSuccessResponse wraps data in a success envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// NewSuccessMessage builds a success envelope that carries only a message
func NewSuccessMessage(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewPaginatedResponse wraps a list and its pagination in a success envelope
func NewPaginatedResponse(data interface{}, pagination Pagination) APIResponse {
	return APIResponse{
		Success:    true,
		Data:       data,
		Pagination: &pagination,
	}
}

// NewErrorResponse builds a failure envelope
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}
