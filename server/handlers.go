package server

import (
	"encoding/json"
	"net/http"

	"github.com/miladmahdian/professional-signup-hub/server/models"
)

// listProfessionals returns every record newest-first, optionally narrowed
// by '?source='. An unknown source value is a search that matches nothing,
// not a validation failure - the response is 200 with [].
func listProfessionals(rw http.ResponseWriter, r *http.Request) {
	professionals, err := models.AllProfessionals(r.URL.Query().Get("source"))
	if err != nil {
		writeJSON(rw, detailError(err.Error()), http.StatusInternalServerError)
		return
	}

	writeJSON(rw, professionals, http.StatusOK)
}

// createProfessional handles the single-create path, where phone is
// mandatory & uniqueness failures surface as a whole-request 400.
func createProfessional(rw http.ResponseWriter, r *http.Request) {
	params := ProfessionalParams{}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeJSON(rw, detailError("Expected a professional object."), http.StatusBadRequest)
		return
	}

	fieldErrors := validateProfessionalParams(&params, true)
	checkTakenIdentityFields(fieldErrors, &params)
	if len(fieldErrors) > 0 {
		writeJSON(rw, fieldErrors, http.StatusBadRequest)
		return
	}

	professional := params.record()
	if err := models.CreateProfessional(professional); err != nil {
		if models.IsUniqueConstraintError(err) {
			writeJSON(rw, nonFieldErrors(err.Error()), http.StatusBadRequest)
			return
		}

		writeJSON(rw, detailError(err.Error()), http.StatusInternalServerError)
		return
	}

	writeJSON(rw, professional, http.StatusCreated)
}

// bulkUpsertProfessionals accepts a JSON array of candidates & always
// answers 200 - per-item failures are data in the response body, never a
// request-level error.
func bulkUpsertProfessionals(rw http.ResponseWriter, r *http.Request) {
	items := []json.RawMessage{}

	err := json.NewDecoder(r.Body).Decode(&items)
	if err != nil || items == nil {
		writeJSON(rw, detailError("Expected a list of professional objects."), http.StatusBadRequest)
		return
	}

	writeJSON(rw, bulkUpsert(items), http.StatusOK)
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

// checkTakenIdentityFields flags email/phone values that already belong to
// another record, so the caller gets a field-keyed message instead of a raw
// constraint error. The db's unique indexes still back this up at write time.
func checkTakenIdentityFields(fieldErrors map[string][]string, params *ProfessionalParams) {
	identityFields := []struct {
		name  string
		value *string
	}{
		{"email", params.Email},
		{"phone", params.Phone},
	}

	for _, field := range identityFields {
		value, ok := presentString(field.value)
		if !ok {
			continue
		}

		existing, err := findMatch(lookupKey{Field: field.name, Value: value})
		if err != nil {
			logg.Errorf("create professional: %v lookup failed: %v", field.name, err)
			continue
		}

		if existing != nil {
			addFieldError(fieldErrors, field.name, "professional with this "+field.name+" already exists.")
		}
	}
}
