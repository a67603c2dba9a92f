package server

import (
	"errors"

	"github.com/miladmahdian/professional-signup-hub/server/models"
	"gorm.io/gorm"
)

const identityRequiredMsg = "Either email or phone is required."

// lookupKey is the identity a candidate is matched on: email when supplied,
// phone otherwise. Decided per candidate at upsert time, never stored.
type lookupKey struct {
	Field string
	Value string
}

// lookupKeyFor picks a candidate's identity key. The second return value is
// false when the candidate carries neither identity field.
func lookupKeyFor(params *ProfessionalParams) (lookupKey, bool) {
	if email, ok := presentString(params.Email); ok {
		return lookupKey{Field: "email", Value: email}, true
	}

	if phone, ok := presentString(params.Phone); ok {
		return lookupKey{Field: "phone", Value: phone}, true
	}

	return lookupKey{}, false
}

// findMatch looks up at most one existing record by the chosen key.
// The lookup is exact-match as-stored; a miss returns (nil, nil).
func findMatch(key lookupKey) (*models.Professional, error) {
	professional, err := models.FindProfessionalBy(key.Field, key.Value)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return professional, nil
}
