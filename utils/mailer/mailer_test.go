package mailer

import (
	"context"
	"testing"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils/redislog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoAPIKeyFallsBackToLogMailer(t *testing.T) {
	m := New("", "noreply@example.com", redislog.New(nil, "", 0, 0))
	_, ok := m.(*LogMailer)
	require.True(t, ok)

	id, err := m.Send(context.Background(), Message{To: "a@b.io", Subject: "hi"})
	require.NoError(t, err)
	assert.Equal(t, DevMessageID, id)
}

func TestNew_APIKeyUsesResend(t *testing.T) {
	_, ok := New("re_test", "noreply@example.com", nil).(*ResendMailer)
	assert.True(t, ok)
}

func TestWelcomeMessage_RendersAndEscapes(t *testing.T) {
	msg, err := WelcomeMessage("jane@example.com", "<Jane>", "https://app.test/verify?t=1")
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", msg.To)
	assert.Equal(t, WelcomeSubject, msg.Subject)
	assert.Contains(t, msg.HTML, "Welcome, &lt;Jane&gt;!")
	assert.Contains(t, msg.HTML, `href="https://app.test/verify?t=1"`)
	assert.Contains(t, msg.Text, "https://app.test/verify?t=1")
}

func TestWelcomeMessage_DefaultName(t *testing.T) {
	msg, err := WelcomeMessage("x@y.io", "", "https://app.test/verify")
	require.NoError(t, err)
	assert.Contains(t, msg.Text, "Welcome, Student!")
}
