package server

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator"
	"github.com/miladmahdian/professional-signup-hub/server/models"
)

const (
	MAX_NAME_LENGTH  = 255
	MAX_PHONE_LENGTH = 20
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ProfessionalParams is one raw sign-up candidate as submitted by the client.
// Pointer fields distinguish 'absent' from 'empty', which is what makes the
// bulk endpoint's partial-update semantics possible.
type ProfessionalParams struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	CompanyName *string `json:"company_name"`
	JobTitle    *string `json:"job_title"`
	Source      *string `json:"source"`
}

// validateProfessionalParams applies every field rule independently &
// collects all violations keyed by field name. It never touches the db -
// uniqueness only surfaces at write time.
//
// 'requirePhone' is set on the single-create path; the bulk path instead
// leaves missing-identity detection to lookupKeyFor.
func validateProfessionalParams(params *ProfessionalParams, requirePhone bool) map[string][]string {
	fieldErrors := map[string][]string{}

	validatePresence(fieldErrors, "full_name", params.FullName, MAX_NAME_LENGTH)

	if email, ok := presentString(params.Email); ok {
		if err := validate.Var(email, "email"); err != nil {
			addFieldError(fieldErrors, "email", "Enter a valid email address.")
		}
	}

	if requirePhone {
		validatePresence(fieldErrors, "phone", params.Phone, MAX_PHONE_LENGTH)
	} else if phone, ok := presentString(params.Phone); ok && utf8.RuneCountInString(phone) > MAX_PHONE_LENGTH {
		addFieldError(fieldErrors, "phone", maxLengthMsg(MAX_PHONE_LENGTH))
	}

	if params.Source == nil {
		addFieldError(fieldErrors, "source", "This field is required.")
	} else if err := validate.Var(*params.Source, sourceChoices()); err != nil {
		addFieldError(fieldErrors, "source", fmt.Sprintf("%q is not a valid choice.", *params.Source))
	}

	for field, value := range map[string]*string{"company_name": params.CompanyName, "job_title": params.JobTitle} {
		if v, ok := presentString(value); ok && utf8.RuneCountInString(v) > MAX_NAME_LENGTH {
			addFieldError(fieldErrors, field, maxLengthMsg(MAX_NAME_LENGTH))
		}
	}

	return fieldErrors
}

// fields returns only the fields the client actually supplied, trimmed &
// keyed by column name - the shape Professional.Update expects. A supplied
// but blank email/phone maps to nil, i.e. clears the column.
func (params *ProfessionalParams) fields() map[string]interface{} {
	data := map[string]interface{}{}

	if params.FullName != nil {
		data["full_name"] = strings.TrimSpace(*params.FullName)
	}
	if params.Email != nil {
		data["email"] = blankToNil(*params.Email)
	}
	if params.Phone != nil {
		data["phone"] = blankToNil(*params.Phone)
	}
	if params.CompanyName != nil {
		data["company_name"] = strings.TrimSpace(*params.CompanyName)
	}
	if params.JobTitle != nil {
		data["job_title"] = strings.TrimSpace(*params.JobTitle)
	}
	if params.Source != nil {
		data["source"] = *params.Source
	}

	return data
}

// record builds a new Professional from validated params, defaulting the
// optional descriptive fields to "".
func (params *ProfessionalParams) record() *models.Professional {
	professional := models.Professional{
		FullName:    strings.TrimSpace(stringOr(params.FullName, "")),
		Email:       blankToNil(stringOr(params.Email, "")),
		Phone:       blankToNil(stringOr(params.Phone, "")),
		CompanyName: strings.TrimSpace(stringOr(params.CompanyName, "")),
		JobTitle:    strings.TrimSpace(stringOr(params.JobTitle, "")),
		Source:      stringOr(params.Source, ""),
	}

	return &professional
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func validatePresence(fieldErrors map[string][]string, field string, value *string, maxLength int) {
	if value == nil {
		addFieldError(fieldErrors, field, "This field is required.")
		return
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		addFieldError(fieldErrors, field, "This field may not be blank.")
		return
	}

	if utf8.RuneCountInString(trimmed) > maxLength {
		addFieldError(fieldErrors, field, maxLengthMsg(maxLength))
	}
}

func addFieldError(fieldErrors map[string][]string, field, message string) {
	fieldErrors[field] = append(fieldErrors[field], message)
}

func maxLengthMsg(maxLength int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", maxLength)
}

func sourceChoices() string {
	return fmt.Sprintf("oneof=%v", strings.Join(models.SignupSources, " "))
}

// presentString reports whether a param was supplied with a non-blank value
func presentString(value *string) (string, bool) {
	if value == nil {
		return "", false
	}

	trimmed := strings.TrimSpace(*value)
	return trimmed, trimmed != ""
}

func blankToNil(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}

	return *value
}
