package dto

// ResetRequest confirms a reset of all transaction data.
type ResetRequest struct {
	Confirmation string `json:"confirmation" binding:"required" example:"RESET"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
