// Package mailx sends transactional email over SMTP. Delivery is best-effort
// from the caller's perspective: the services log and swallow send failures
// rather than rolling back the operation that triggered the mail.
package mailx

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer delivers email through a single SMTP endpoint.
type Mailer struct {
	cfg    Config
	client *mail.Client
}

func New(cfg Config) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("mailx: failed to create smtp client: %w", err)
	}
	return &Mailer{cfg: cfg, client: client}, nil
}

// SendVerificationEmail sends the post-registration email containing the
// account verification link.
func (m *Mailer) SendVerificationEmail(ctx context.Context, toEmail, link, name string) error {
	body, err := render(verificationTemplate, map[string]string{
		"Name": name,
		"Link": link,
	})
	if err != nil {
		return err
	}
	return m.send(ctx, toEmail, "Verify Your Email - Zuno Task Management", body)
}

// SendInvitationEmail sends a workspace invitation with its acceptance link.
func (m *Mailer) SendInvitationEmail(ctx context.Context, toEmail, workspaceName, inviterName, link, role string) error {
	body, err := render(invitationTemplate, map[string]string{
		"WorkspaceName": workspaceName,
		"InviterName":   inviterName,
		"Link":          link,
		"Role":          role,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("You've been invited to join %s on Zuno", workspaceName)
	return m.send(ctx, toEmail, subject, body)
}

func (m *Mailer) send(ctx context.Context, toEmail, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mailx: invalid from address: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("mailx: invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailx: failed to send message: %w", err)
	}
	return nil
}

func render(tmpl *template.Template, data map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("mailx: failed to render template: %w", err)
	}
	return buf.String(), nil
}
