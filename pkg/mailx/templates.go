package mailx

import "html/template"

var verificationTemplate = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #333;">Welcome to Zuno Task Management!</h2>
    <p>Hello {{.Name}},</p>
    <p>Thank you for signing up! Please verify your email address by clicking the button below:</p>
    <div style="text-align: center; margin: 30px 0;">
      <a href="{{.Link}}" style="background-color: #4CAF50; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; font-weight: bold;">
        Verify Email Address
      </a>
    </div>
    <p>Or copy and paste this link in your browser:</p>
    <p style="word-break: break-all; color: #666;">{{.Link}}</p>
    <p>This link will expire in 24 hours.</p>
    <p>If you didn't create an account, you can safely ignore this email.</p>
    <br>
    <p>Best regards,<br>The Zuno Team</p>
  </div>
</body>
</html>
`))

var invitationTemplate = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #333;">You've been invited!</h2>
    <p>{{.InviterName}} has invited you to join <strong>{{.WorkspaceName}}</strong> as a {{.Role}}.</p>
    <div style="text-align: center; margin: 30px 0;">
      <a href="{{.Link}}" style="background-color: #4CAF50; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; font-weight: bold;">
        Accept Invitation
      </a>
    </div>
    <p>Or copy and paste this link in your browser:</p>
    <p style="word-break: break-all; color: #666;">{{.Link}}</p>
    <p>This invitation will expire in 7 days.</p>
    <p>If you weren't expecting this invitation, you can safely ignore this email.</p>
    <br>
    <p>Best regards,<br>The Zuno Team</p>
  </div>
</body>
</html>
`))
