package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() ApplicationInput {
	return ApplicationInput{
		StudentName:        "JANE WANJIKU KAMAU",
		InstitutionName:    "Nakuru Girls High School",
		IDNumber:           "12345678",
		AnnualFamilyIncome: 45000,
		TuitionFee:         120000,
		AmountRequested:    80000,
		NumberOfSiblings:   4,
		SiblingsInSchool:   3,
	}
}

func TestValidateApplicationAccepts(t *testing.T) {
	assert.NoError(t, ValidateApplication(validInput()))
}

func TestValidateApplicationRejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*ApplicationInput)
		message string
	}{
		{
			name:    "missing student name",
			mutate:  func(in *ApplicationInput) { in.StudentName = "  " },
			message: "student_name",
		},
		{
			name:    "missing institution",
			mutate:  func(in *ApplicationInput) { in.InstitutionName = "" },
			message: "institution_name",
		},
		{
			name:    "id number too short",
			mutate:  func(in *ApplicationInput) { in.IDNumber = "123456" },
			message: "must be 7 to 9 digits",
		},
		{
			name:    "id number not numeric",
			mutate:  func(in *ApplicationInput) { in.IDNumber = "12A45678" },
			message: "must be 7 to 9 digits",
		},
		{
			name:    "negative income",
			mutate:  func(in *ApplicationInput) { in.AnnualFamilyIncome = -1 },
			message: "cannot be negative",
		},
		{
			name: "requested exceeds tuition",
			mutate: func(in *ApplicationInput) {
				in.AmountRequested = 150000
			},
			message: "cannot exceed tuition fee",
		},
		{
			name: "tuition above maximum",
			mutate: func(in *ApplicationInput) {
				in.TuitionFee = 1_200_000
				in.AmountRequested = 500000
			},
			message: "tuition_fee",
		},
		{
			name: "siblings in school exceeds siblings",
			mutate: func(in *ApplicationInput) {
				in.NumberOfSiblings = 2
				in.SiblingsInSchool = 3
			},
			message: "cannot exceed number of siblings",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			err := ValidateApplication(in)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestValidateApplicationIDNumberAllowsSpaces(t *testing.T) {
	in := validInput()
	in.IDNumber = "12 345 678"
	assert.NoError(t, ValidateApplication(in))
}

func TestValidatorCollectsMultipleErrors(t *testing.T) {
	v := NewValidator()
	v.Field("student_name", "", Required)
	v.Field("id_number", "abc", NationalID)
	assert.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	assert.Contains(t, v.ErrorMessage(), "student_name")
	assert.Contains(t, v.ErrorMessage(), "id_number")
}

func TestMaxLength(t *testing.T) {
	rule := MaxLength(5)
	assert.Nil(t, rule("comments", "short"))
	assert.NotNil(t, rule("comments", "too long"))
}
