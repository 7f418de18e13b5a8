package sandbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/utils"
	"github.com/MKhiriev/go-visit-feedback/models"
)

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [Notifier] that writes the survey email to the log
// instead of sending it.
func NewLogNotifier(logger *logger.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) SendSurvey(ctx context.Context, customer models.CustomerRecord, link string) error {
	event := n.logger.Info()
	if traceID, ok := utils.TraceIDFromContext(ctx); ok {
		event = event.Str("trace_id", traceID)
	}

	event.
		Str("to", customer.Email).
		Str("subject", SurveySubject(customer)).
		Str("link", link).
		Str("body", SurveyEmail(customer, link)).
		Msg("survey email")
	return nil
}

// SurveySubject is the subject line of the survey email.
func SurveySubject(customer models.CustomerRecord) string {
	return fmt.Sprintf("We'd love your feedback, %s!", customer.Name)
}

// SurveyEmail renders the survey email body.
func SurveyEmail(customer models.CustomerRecord, link string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", customer.Name)
	fmt.Fprintf(&b, "Thank you for visiting %s", customer.BranchName)
	if customer.PurposeOfVisit != "" {
		fmt.Fprintf(&b, " for %s", strings.ToLower(customer.PurposeOfVisit))
	}
	b.WriteString(". We hope it went smoothly and would love to hear how it went.\n\n")
	b.WriteString("Please click the link below to provide your feedback:\n")
	b.WriteString(link)
	b.WriteString("\n\nThank you for your time!\n\nWarm Regards,\n\n")
	b.WriteString(customer.StaffName)
	b.WriteString("\n")
	b.WriteString(customer.BranchName)
	return b.String()
}
