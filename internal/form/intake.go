package form

import (
	"github.com/MKhiriev/go-visit-feedback/models"
)

// Intake form field names. They double as the JSON keys of the customer
// payload.
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldMobile         = "mobile"
	FieldEmailConsent   = "email_consent"
	FieldPurposeOfVisit = "purpose_of_visit"
	FieldCustomPurpose  = "custom_purpose"
	FieldBranchID       = "branch_id"
	FieldBranchName     = "branch_name"
	FieldStaffName      = "staff_name"
)

// PurposeOthers is the purpose option that asks for a free-text purpose.
const PurposeOthers = "Others"

// PurposeOptions lists the selectable purposes of visit. The empty first
// option means "nothing selected".
var PurposeOptions = []string{
	"",
	"New Account",
	"Deposit",
	"Internet Banking",
	"Mortgage Enquiry",
	"General Inquiry",
	PurposeOthers,
}

var intakeFields = []Field{
	{
		Name:    FieldName,
		Label:   "Name",
		Default: TextValue(""),
		Rules:   []Rule{Required("Name is required")},
	},
	{
		Name:    FieldEmail,
		Label:   "Email",
		Default: TextValue(""),
		Rules: []Rule{
			Required("Email is required"),
			Pattern(`^[^\s@]+@[^\s@]+\.[^\s@]+$`, "Enter a valid email address"),
		},
	},
	{
		Name:    FieldMobile,
		Label:   "Mobile",
		Default: TextValue(""),
		Rules: []Rule{
			Required("Mobile number is required"),
			Pattern(`^\d{10,15}$`, "Mobile number must be 10-15 digits"),
		},
	},
	{
		Name:    FieldEmailConsent,
		Label:   "Send me a feedback survey by email",
		Default: BoolValue(false),
	},
	{
		Name:    FieldPurposeOfVisit,
		Label:   "Purpose of visit",
		Default: TextValue(""),
		Rules:   []Rule{Required("Select a purpose of visit")},
	},
	{
		Name:    FieldCustomPurpose,
		Label:   "Please specify",
		Default: TextValue(""),
		Rules:   []Rule{Required("Please specify the purpose of your visit")},
		ActivatedBy: &Activation{
			Field:      FieldPurposeOfVisit,
			Equals:     PurposeOthers,
			Substitute: true,
		},
	},
	{
		Name:    FieldBranchID,
		Label:   "Branch ID",
		Default: TextValue(""),
		Rules:   []Rule{Required("Branch ID is required")},
	},
	{
		Name:    FieldBranchName,
		Label:   "Branch name",
		Default: TextValue(""),
		Rules:   []Rule{Required("Branch name is required")},
	},
	{
		Name:    FieldStaffName,
		Label:   "Staff name",
		Default: TextValue(""),
		Rules:   []Rule{Required("Staff name is required")},
	},
}

// IntakeSchema returns the customer intake form schema.
func IntakeSchema() *Schema {
	return MustSchema(intakeFields, WithFallbackMessage("Could not save customer details. Please try again."))
}

// CustomerFromDraft converts a submitted intake payload into the wire model.
func CustomerFromDraft(d Draft) models.Customer {
	return models.Customer{
		Name:           trimmed(d, FieldName),
		Email:          trimmed(d, FieldEmail),
		Mobile:         trimmed(d, FieldMobile),
		EmailConsent:   d.Bool(FieldEmailConsent),
		PurposeOfVisit: trimmed(d, FieldPurposeOfVisit),
		BranchID:       trimmed(d, FieldBranchID),
		BranchName:     trimmed(d, FieldBranchName),
		StaffName:      trimmed(d, FieldStaffName),
	}
}
