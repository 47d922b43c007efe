// internal/email/mailer/member_invitation.go
package mailer

import "github.com/fathomcrm/fathom/internal/email"

// InvitationTemplateData contains data for the invitation email template
type InvitationTemplateData struct {
	FirstName string
	OrgName   string
}

// SendMemberInvitation notifies a user that they were added to an
// organization.
func SendMemberInvitation(s *email.Service, to, firstName, orgName string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "Fathom",
		Subject:      "You've been added to " + orgName,
		TemplateName: "member_invitation",
		TemplateData: InvitationTemplateData{
			FirstName: firstName,
			OrgName:   orgName,
		},
	}

	return s.SendEmail(emailData)
}
