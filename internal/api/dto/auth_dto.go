package dto

// RegisterRequest payload for new accounts. Accepts JSON bodies and
// classic form posts.
type RegisterRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginRequest payload for session creation.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// ResetRequest payload for requesting a password reset token.
type ResetRequest struct {
	Email string `json:"email" form:"email"`
}

// ResetConfirmRequest payload for consuming a reset token.
type ResetConfirmRequest struct {
	Email       string `json:"email" form:"email"`
	ResetToken  string `json:"reset_token" form:"reset_token"`
	NewPassword string `json:"new_password" form:"new_password"`
}

// MessageResponse is the envelope used by the auth endpoints.
type MessageResponse struct {
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

// ResetTokenResponse carries a freshly minted reset token.
type ResetTokenResponse struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}
