package mocks

import (
	"context"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils/mailer"

	"github.com/stretchr/testify/mock"
)

// MailerMock is a testify/mock for mailer.Mailer.
type MailerMock struct{ mock.Mock }

func (m *MailerMock) Send(_ context.Context, msg mailer.Message) (string, error) {
	args := m.Called(msg)
	return args.String(0), args.Error(1)
}

// EmailServiceMock is a testify/mock for services.EmailService.
type EmailServiceMock struct{ mock.Mock }

func (m *EmailServiceMock) SendWelcome(_ context.Context, req models.SendEmailRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}
