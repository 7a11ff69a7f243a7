package services

import (
	"context"
	"strings"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/apperrors"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils/mailer"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils/redislog"
)

// EmailService renders templates and hands them to the mail provider.
type EmailService interface {
	// SendWelcome returns the provider message id.
	SendWelcome(ctx context.Context, req models.SendEmailRequest) (string, error)
}

type emailService struct {
	mail    mailer.Mailer
	baseURL string
	log     *redislog.Logger
}

// NewEmailService uses baseURL to build the default verification link.
func NewEmailService(m mailer.Mailer, baseURL string, rlog *redislog.Logger) EmailService {
	return &emailService{mail: m, baseURL: strings.TrimRight(baseURL, "/"), log: rlog}
}

func (s *emailService) SendWelcome(ctx context.Context, req models.SendEmailRequest) (string, error) {
	link := req.VerificationLink
	if link == "" {
		link = s.baseURL + "/verify"
	}
	msg, err := mailer.WelcomeMessage(req.To, req.Name, link)
	if err != nil {
		s.log.Error("welcome render error", map[string]string{"to": req.To, "err": err.Error()})
		return "", apperrors.Upstream("render email", err)
	}
	id, err := s.mail.Send(ctx, msg)
	if err != nil {
		s.log.Error("email send error", map[string]string{"to": req.To, "err": err.Error()})
		return "", apperrors.Upstream("send email", err)
	}
	s.log.Info("email sent", map[string]string{"to": req.To, "id": id})
	return id, nil
}
