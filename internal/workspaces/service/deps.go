package service

import "context"

// Mailer delivers transactional email. Every send is best-effort: services
// log failures and carry on, a lost email never rolls back the operation
// that triggered it.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, toEmail, link, name string) error
	SendInvitationEmail(ctx context.Context, toEmail, workspaceName, inviterName, link, role string) error
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(email, userID string) (string, error)
}
