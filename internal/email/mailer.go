// Package email dispatches the verification and password-reset links issued
// by the credential store. The demo mailer "delivers" them to the console and
// the WebSocket link channel; the Postmark client sends real mail.
package email

import (
	"fmt"
	"net/url"
)

// Purpose identifies which kind of link is being delivered.
type Purpose string

const (
	PurposeVerification Purpose = "verification" // issued at registration
	PurposeResend       Purpose = "resend"       // re-issued verification
	PurposeReset        Purpose = "reset"        // password reset
)

// Mailer delivers an issued link to its recipient.
type Mailer interface {
	SendLink(purpose Purpose, toEmail, link string) error
}

// VerificationLink builds the clickable verify-email URL.
func VerificationLink(baseURL, token, emailAddr string) string {
	return fmt.Sprintf("%s/verify-email?token=%s&email=%s", baseURL, token, url.QueryEscape(emailAddr))
}

// ResetLink builds the clickable reset-password URL.
func ResetLink(baseURL, token, emailAddr string) string {
	return fmt.Sprintf("%s/reset-password?token=%s&email=%s", baseURL, token, url.QueryEscape(emailAddr))
}
