package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-visit-feedback/internal/form"
	"github.com/MKhiriev/go-visit-feedback/models"
)

const (
	FieldName            = form.FieldName
	FieldEmail           = form.FieldEmail
	FieldMobile          = form.FieldMobile
	FieldPurposeOfVisit  = form.FieldPurposeOfVisit
	FieldBranchID        = form.FieldBranchID
	FieldBranchName      = form.FieldBranchName
	FieldStaffName       = form.FieldStaffName
	FieldStarRating      = form.FieldStarRating
	FieldTextualFeedback = form.FieldTextualFeedback
)

var customerFields = []string{
	FieldName, FieldEmail, FieldMobile, FieldPurposeOfVisit,
	FieldBranchID, FieldBranchName, FieldStaffName,
}

var feedbackFields = []string{FieldStarRating, FieldTextualFeedback}

var mobilePattern = regexp.MustCompile(`^\+?\d{10,15}$`)

type FeedbackValidator struct {
}

// NewFeedbackValidator validates [models.Customer] and
// [models.FeedbackSubmission] request bodies.
//
// The mobile number is optional on the API side; when present it must be
// 10-15 digits with an optional leading plus.
func NewFeedbackValidator() Validator {
	return &FeedbackValidator{}
}

func (v *FeedbackValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Customer:
		return v.validateCustomer(ctx, value, fields...)
	case *models.Customer:
		return v.validateCustomer(ctx, *value, fields...)

	case models.FeedbackSubmission:
		return v.validateFeedback(ctx, value, fields...)
	case *models.FeedbackSubmission:
		return v.validateFeedback(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FeedbackValidator) validateCustomer(_ context.Context, c models.Customer, fields ...string) error {
	fields, err := selectFields(customerFields, fields)
	if err != nil {
		return err
	}

	var errs FieldErrors
	for _, field := range fields {
		switch field {
		case FieldName:
			errs = appendRequired(errs, field, c.Name)
		case FieldEmail:
			if strings.TrimSpace(c.Email) == "" {
				errs = appendRequired(errs, field, c.Email)
				continue
			}
			if !isEmail(c.Email) {
				errs = append(errs, &FieldError{
					Field:   field,
					Message: "value is not a valid email address",
					Type:    "value_error",
					Err:     ErrInvalidEmail,
				})
			}
		case FieldMobile:
			if m := strings.TrimSpace(c.Mobile); m != "" && !mobilePattern.MatchString(m) {
				errs = append(errs, &FieldError{
					Field:   field,
					Message: "mobile number must be 10-15 digits",
					Type:    "string_pattern_mismatch",
					Err:     ErrInvalidMobile,
				})
			}
		case FieldPurposeOfVisit:
			errs = appendRequired(errs, field, c.PurposeOfVisit)
		case FieldBranchID:
			errs = appendRequired(errs, field, c.BranchID)
		case FieldBranchName:
			errs = appendRequired(errs, field, c.BranchName)
		case FieldStaffName:
			errs = appendRequired(errs, field, c.StaffName)
		}
	}

	return errs.orNil()
}

func (v *FeedbackValidator) validateFeedback(_ context.Context, fb models.FeedbackSubmission, fields ...string) error {
	fields, err := selectFields(feedbackFields, fields)
	if err != nil {
		return err
	}

	var errs FieldErrors
	for _, field := range fields {
		switch field {
		case FieldStarRating:
			switch {
			case fb.StarRating < form.MinRating:
				errs = append(errs, &FieldError{
					Field:   field,
					Message: fmt.Sprintf("Input should be greater than or equal to %d", form.MinRating),
					Type:    "greater_than_equal",
					Err:     ErrRatingOutOfRange,
				})
			case fb.StarRating > form.MaxRating:
				errs = append(errs, &FieldError{
					Field:   field,
					Message: fmt.Sprintf("Input should be less than or equal to %d", form.MaxRating),
					Type:    "less_than_equal",
					Err:     ErrRatingOutOfRange,
				})
			}
		case FieldTextualFeedback:
			switch n := utf8.RuneCountInString(fb.TextualFeedback); {
			case strings.TrimSpace(fb.TextualFeedback) == "":
				errs = append(errs, &FieldError{
					Field:   field,
					Message: "Field required",
					Type:    "missing",
					Err:     ErrFeedbackIsRequired,
				})
			case n > form.MaxFeedbackLength:
				errs = append(errs, &FieldError{
					Field:   field,
					Message: fmt.Sprintf("String should have at most %d characters", form.MaxFeedbackLength),
					Type:    "string_too_long",
					Err:     ErrFeedbackTooLong,
				})
			}
		}
	}

	return errs.orNil()
}

// selectFields returns all when requested is empty, else requested after
// checking every name is known.
func selectFields(all, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return all, nil
	}
	for _, f := range requested {
		if !slices.Contains(all, f) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}
	return requested, nil
}

func appendRequired(errs FieldErrors, field, value string) FieldErrors {
	if strings.TrimSpace(value) != "" {
		return errs
	}
	return append(errs, &FieldError{
		Field:   field,
		Message: "Field required",
		Type:    "missing",
		Err:     ErrFieldRequired,
	})
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	// ParseAddress accepts "Name <a@b>"; only bare addresses are valid here.
	return addr.Address == strings.TrimSpace(s) && strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@"):], ".")
}
