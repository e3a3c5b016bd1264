package auth

// Code identifies why an operation failed. Success results carry no code.
type Code string

const (
	CodeDuplicateEmail        Code = "duplicate_email"
	CodeNoSuchUser            Code = "no_such_user"
	CodeInvalidCredential     Code = "invalid_credential"
	CodeVerificationRequired  Code = "verification_required"
	CodeAlreadyVerified       Code = "already_verified"
	CodeInvalidOrExpiredToken Code = "invalid_or_expired_token"
	CodeStoreUnavailable      Code = "store_unavailable"
)

// Result is the structured outcome of every credential operation. Failures
// are always reported this way, never as errors the caller must not render.
type Result struct {
	Success              bool   `json:"success"`
	Code                 Code   `json:"code,omitempty"`
	Message              string `json:"message,omitempty"`
	RequiresVerification bool   `json:"requiresVerification,omitempty"`
}

// User-facing messages, suitable for direct display.
const (
	msgDuplicateEmail       = "An account with this email already exists."
	msgNoSuchUser           = "No account found with this email address."
	msgInvalidCredential    = "Invalid password. Please try again."
	msgVerificationRequired = "Please verify your email address before signing in."
	msgAlreadyVerified      = "This email is already verified."
	msgInvalidVerifyToken   = "Invalid or expired verification token."
	msgInvalidResetToken    = "Invalid or expired reset token."
	msgGenericFailure       = "An error occurred. Please try again."

	msgRegistered       = "Account created successfully! Please check your email to verify your account."
	msgResetEmailSent   = "Password reset instructions have been sent to your email address."
	msgPasswordUpdated  = "Password updated successfully! You can now sign in."
	msgEmailVerified    = "Email verified successfully! You can now sign in."
	msgVerificationSent = "Verification email sent! Please check your inbox."
)

func ok(message string) Result {
	return Result{Success: true, Message: message}
}

func fail(code Code, message string) Result {
	return Result{Code: code, Message: message}
}

func storeFailure() Result {
	return Result{Code: CodeStoreUnavailable, Message: msgGenericFailure}
}
