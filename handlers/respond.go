package handlers

import (
	"errors"
	"net/http"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/apperrors"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// fieldErrors is the 400 body used by the JSON API.
func fieldErrors(ve *apperrors.ValidationError) gin.H {
	return gin.H{"error": "Validation Error", "details": gin.H{"fieldErrors": ve.Fields}}
}

// writeError maps the apperrors taxonomy to a status and a body. Anything unexpected is
// logged and answered with a generic 500; internal detail never reaches the client.
func writeError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, fieldErrors(ve))
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrInvalidLogin):
		msg := "Unauthorized"
		if errors.Is(err, apperrors.ErrInvalidLogin) {
			msg = "Invalid email or password"
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bind decodes the JSON body into req and runs the shared validation rules.
// A malformed body is reported as a validation error on "body".
func bind(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperrors.NewValidationError("body", "Invalid JSON body")
	}
	return validation.Struct(req)
}
