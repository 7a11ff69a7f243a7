package mailer

import (
	"bytes"
	"html/template"
	texttemplate "text/template"
	"time"

	"github.com/hyp3rd/ewrap/pkg/ewrap"
)

// WelcomeSubject is the subject line of the welcome email.
const WelcomeSubject = "Welcome to Cursos Play and Learn!"

var welcomeHTML = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<body style="background-color:#f6f9fc;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;padding:20px 0">
  <div style="background-color:#ffffff;border:1px solid #eee;border-radius:5px;margin:0 auto;max-width:600px;padding:20px">
    <h1 style="color:#333;font-size:24px">Welcome, {{.Name}}!</h1>
    <p style="color:#333;font-size:16px;line-height:24px">Thank you for signing up for Cursos Play and Learn, your gateway to interactive learning experiences.</p>
    <p style="color:#333;font-size:16px;line-height:24px">Please verify your email address by clicking the link below:</p>
    <a href="{{.VerificationLink}}" style="background-color:#4f46e5;border-radius:5px;color:#fff;display:inline-block;padding:12px 20px;text-decoration:none">Verify Email Address</a>
    <p style="color:#333;font-size:16px;line-height:24px">If you didn't create an account, you can safely ignore this email.</p>
    <p style="color:#8898aa;font-size:12px">&copy; {{.Year}} Cursos Play and Learn. All rights reserved.</p>
  </div>
</body>
</html>`))

var welcomeText = texttemplate.Must(texttemplate.New("welcome.txt").Parse(`Welcome, {{.Name}}!

Thank you for signing up for Cursos Play and Learn, your gateway to interactive learning experiences.

Please verify your email address: {{.VerificationLink}}

If you didn't create an account, you can safely ignore this email.
`))

type welcomeData struct {
	Name             string
	VerificationLink string
	Year             int
}

// WelcomeMessage renders the welcome email for one recipient.
func WelcomeMessage(to, name, verificationLink string) (Message, error) {
	if name == "" {
		name = "Student"
	}
	data := welcomeData{Name: name, VerificationLink: verificationLink, Year: time.Now().Year()}

	var html, text bytes.Buffer
	if err := welcomeHTML.Execute(&html, data); err != nil {
		return Message{}, ewrap.Wrap(err, "render welcome html")
	}
	if err := welcomeText.Execute(&text, data); err != nil {
		return Message{}, ewrap.Wrap(err, "render welcome text")
	}
	return Message{To: to, Subject: WelcomeSubject, HTML: html.String(), Text: text.String()}, nil
}
