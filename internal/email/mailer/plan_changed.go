// internal/email/mailer/plan_changed.go
package mailer

import "github.com/fathomcrm/fathom/internal/email"

// PlanChangedTemplateData contains data for the plan change email template
type PlanChangedTemplateData struct {
	OrgName  string
	PlanName string
}

// SendPlanChanged confirms a completed plan change to the organization owner.
func SendPlanChanged(s *email.Service, to, orgName, planName string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "Fathom",
		Subject:      orgName + " is now on the " + planName + " plan",
		TemplateName: "plan_changed",
		TemplateData: PlanChangedTemplateData{
			OrgName:  orgName,
			PlanName: planName,
		},
	}

	return s.SendEmail(emailData)
}
