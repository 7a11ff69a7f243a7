package handlers

import (
	"errors"
	"net/http"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/apperrors"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EmailHandler serves POST /api/send-email. Its response bodies use "message"
// rather than "error", matching what the web client already parses.
type EmailHandler struct {
	svc services.EmailService
}

func NewEmailHandler(svc services.EmailService) *EmailHandler {
	return &EmailHandler{svc: svc}
}

func (h *EmailHandler) Send(c *gin.Context) {
	var req models.SendEmailRequest
	if err := bind(c, &req); err != nil {
		var ve *apperrors.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": ve.Fields})
			return
		}
		writeError(c, err)
		return
	}

	id, err := h.svc.SendWelcome(c.Request.Context(), req)
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("to", req.To).Msg("send email failed")
		c.JSON(http.StatusInternalServerError, models.SendEmailResponse{Message: "Failed to send email"})
		return
	}
	c.JSON(http.StatusOK, models.SendEmailResponse{
		Message: "Email sent successfully",
		Data:    &models.EmailReceipt{ID: id},
	})
}
