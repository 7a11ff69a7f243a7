package models

// SendEmailRequest is the POST /api/send-email body.
type SendEmailRequest struct {
	To               string `json:"to" validate:"required,email"`
	Name             string `json:"name" validate:"required,min=1"`
	VerificationLink string `json:"verificationLink,omitempty"`
	Template         string `json:"template,omitempty" validate:"omitempty,oneof=welcome"`
}

// SendEmailResponse wraps the provider message id.
type SendEmailResponse struct {
	Message string        `json:"message"`
	Data    *EmailReceipt `json:"data,omitempty"`
}

// EmailReceipt is what the provider returned for an accepted message.
type EmailReceipt struct {
	ID string `json:"id"`
}
