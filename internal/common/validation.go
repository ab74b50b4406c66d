package common

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Upper bounds for money fields, in KES. Submissions above these are
// rejected upstream of review.
const (
	MaxTuitionFee      = 1_000_000
	MaxAmountRequested = 1_000_000
)

var nationalIDRegex = regexp.MustCompile(`^\d{7,9}$`)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// Validator provides validation utilities
type Validator struct {
	errors []ValidationError
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		errors: make([]ValidationError, 0),
	}
}

// Field validates a field and collects errors
func (v *Validator) Field(fieldName string, value interface{}, rules ...ValidationRule) *Validator {
	for _, rule := range rules {
		if err := rule(fieldName, value); err != nil {
			v.errors = append(v.errors, *err)
		}
	}
	return v
}

// Check records an error with the given message when ok is false.
func (v *Validator) Check(ok bool, fieldName string, value interface{}, message string) *Validator {
	if !ok {
		v.errors = append(v.errors, ValidationError{Field: fieldName, Value: value, Message: message})
	}
	return v
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors
func (v *Validator) Errors() []ValidationError {
	return v.errors
}

// Error returns a combined error
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	return fmt.Errorf("%s", v.ErrorMessage())
}

// ErrorMessage returns a combined error message as string
func (v *Validator) ErrorMessage() string {
	if !v.HasErrors() {
		return ""
	}

	var messages []string
	for _, err := range v.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// ValidationRule represents a single validation rule
type ValidationRule func(fieldName string, value interface{}) *ValidationError

// Required - Common validation rules
func Required(fieldName string, value interface{}) *ValidationError {
	if value == nil {
		return &ValidationError{Field: fieldName, Value: value, Message: "is required"}
	}

	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return &ValidationError{Field: fieldName, Value: value, Message: "is required"}
		}
	case *string:
		if v == nil || strings.TrimSpace(*v) == "" {
			return &ValidationError{Field: fieldName, Value: value, Message: "is required"}
		}
	}
	return nil
}

// MaxLength bounds the rune count of a string field.
func MaxLength(max int) ValidationRule {
	return func(fieldName string, value interface{}) *ValidationError {
		str, ok := value.(string)
		if !ok {
			return nil
		}
		if utf8.RuneCountInString(str) > max {
			return &ValidationError{
				Field:   fieldName,
				Value:   value,
				Message: fmt.Sprintf("must be at most %d characters", max),
			}
		}
		return nil
	}
}

// UUID validates a string is a parseable UUID.
func UUID(fieldName string, value interface{}) *ValidationError {
	str, ok := value.(string)
	if !ok {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be a string"}
	}

	if _, err := uuid.Parse(str); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Value:   value,
			Message: "must be a valid UUID",
		}
	}
	return nil
}

// NationalID validates the national ID format: 7 to 9 digits.
func NationalID(fieldName string, value interface{}) *ValidationError {
	str, ok := value.(string)
	if !ok {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be a string"}
	}
	str = strings.ReplaceAll(str, " ", "")
	if !nationalIDRegex.MatchString(str) {
		return &ValidationError{
			Field:   fieldName,
			Value:   value,
			Message: "must be 7 to 9 digits",
		}
	}
	return nil
}

// NonNegative validates a numeric field is >= 0.
func NonNegative(fieldName string, value interface{}) *ValidationError {
	var negative bool
	switch n := value.(type) {
	case int:
		negative = n < 0
	case float64:
		negative = n < 0
	default:
		return &ValidationError{Field: fieldName, Value: value, Message: "must be numeric"}
	}
	if negative {
		return &ValidationError{Field: fieldName, Value: value, Message: "cannot be negative"}
	}
	return nil
}

// ApplicationInput carries the submission fields the core validates.
// Field-level form validation happens upstream; these are the model
// invariants the review workflow depends on.
type ApplicationInput struct {
	StudentName        string
	InstitutionName    string
	IDNumber           string
	AnnualFamilyIncome float64
	TuitionFee         float64
	AmountRequested    float64
	NumberOfSiblings   int
	SiblingsInSchool   int
}

// ValidateApplication enforces the cross-field invariants of a submission:
// amount_requested <= tuition_fee <= maximum, siblings_in_school <=
// number_of_siblings, non-negative income.
func ValidateApplication(in ApplicationInput) error {
	v := NewValidator()
	v.Field("student_name", in.StudentName, Required)
	v.Field("institution_name", in.InstitutionName, Required)
	v.Field("id_number", in.IDNumber, Required, NationalID)
	v.Field("annual_family_income", in.AnnualFamilyIncome, NonNegative)
	v.Field("number_of_siblings", in.NumberOfSiblings, NonNegative)
	v.Field("siblings_in_school", in.SiblingsInSchool, NonNegative)
	v.Check(in.AmountRequested <= in.TuitionFee,
		"amount_requested", in.AmountRequested, "cannot exceed tuition fee")
	v.Check(in.TuitionFee <= MaxTuitionFee,
		"tuition_fee", in.TuitionFee, fmt.Sprintf("cannot exceed %d", MaxTuitionFee))
	v.Check(in.AmountRequested <= MaxAmountRequested,
		"amount_requested", in.AmountRequested, fmt.Sprintf("cannot exceed %d", MaxAmountRequested))
	v.Check(in.SiblingsInSchool <= in.NumberOfSiblings,
		"siblings_in_school", in.SiblingsInSchool, "cannot exceed number of siblings")
	return v.Error()
}
