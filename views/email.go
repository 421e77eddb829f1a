package views

import (
	"bytes"
	"html"
)

// VerifyEmailHTML builds the body of the verification email sent to a
// contact-form submitter.
func VerifyEmailHTML(verifyURL string) string {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html><html><body>")
	buf.WriteString("<h2>Please verify your email</h2>")
	buf.WriteString("<p>Someone (hopefully you) submitted my contact form with this address. ")
	buf.WriteString("Click the link below to confirm and your message will be delivered.</p>")
	escaped := html.EscapeString(verifyURL)
	buf.WriteString(`<p><a href="` + escaped + `">Verify my email</a></p>`)
	buf.WriteString("<p>Or copy this link into your browser:</p><p>" + escaped + "</p>")
	buf.WriteString("<p>The link expires in one hour. If you did not submit the form, ignore this email.</p>")
	buf.WriteString("</body></html>")
	return buf.String()
}

// AdminNotificationHTML builds the body of the owner notification sent once
// a submission's email address has been verified.
func AdminNotificationHTML(name, email, message string) string {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html><html><body>")
	buf.WriteString("<h2>New message from the portfolio contact form</h2>")
	buf.WriteString("<p><strong>Name:</strong> " + html.EscapeString(name) + "</p>")
	buf.WriteString("<p><strong>Email:</strong> " + html.EscapeString(email) + "</p>")
	buf.WriteString("<p><strong>Message:</strong></p><p>" + html.EscapeString(message) + "</p>")
	buf.WriteString("</body></html>")
	return buf.String()
}
