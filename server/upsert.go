package server

import (
	"encoding/json"

	"github.com/miladmahdian/professional-signup-hub/server/models"
)

type BulkItemResult struct {
	Index        int                  `json:"index"`
	Professional *models.Professional `json:"professional"`
}

type BulkItemError struct {
	Index int             `json:"index"`
	Data  json.RawMessage `json:"data"`
	// Either a field->messages map from validation, or a
	// non_field_errors entry for identity/constraint failures.
	Errors interface{} `json:"errors"`
}

type BulkResult struct {
	Created []BulkItemResult `json:"created"`
	Updated []BulkItemResult `json:"updated"`
	Errors  []BulkItemError  `json:"errors"`
}

// bulkUpsert runs every candidate through validate -> resolve identity ->
// create-or-update, strictly in input order. Each item's lookup hits current
// db state, so later items observe records written earlier in the same batch.
// Every input index lands in exactly one bucket; a failed item never affects
// the others & nothing is rolled back.
func bulkUpsert(items []json.RawMessage) BulkResult {
	result := BulkResult{
		Created: []BulkItemResult{},
		Updated: []BulkItemResult{},
		Errors:  []BulkItemError{},
	}

	for index, item := range items {
		params := ProfessionalParams{}
		if err := json.Unmarshal(item, &params); err != nil {
			result.addError(index, item, nonFieldErrors("Expected an object of professional fields."))
			continue
		}

		if fieldErrors := validateProfessionalParams(&params, false); len(fieldErrors) > 0 {
			result.addError(index, item, fieldErrors)
			continue
		}

		key, ok := lookupKeyFor(&params)
		if !ok {
			result.addError(index, item, nonFieldErrors(identityRequiredMsg))
			continue
		}

		existing, err := findMatch(key)
		if err != nil {
			logg.Errorf("bulk upsert: lookup by %v failed for item %v: %v", key.Field, index, err)
			result.addError(index, item, nonFieldErrors(err.Error()))
			continue
		}

		if existing == nil {
			result.createRecord(index, item, &params)
			continue
		}

		result.updateRecord(index, item, &params, existing)
	}

	return result
}

func (result *BulkResult) createRecord(index int, item json.RawMessage, params *ProfessionalParams) {
	professional := params.record()

	if err := models.CreateProfessional(professional); err != nil {
		logWriteFailure("create", index, err)
		result.addError(index, item, nonFieldErrors(err.Error()))
		return
	}

	result.Created = append(result.Created, BulkItemResult{Index: index, Professional: professional})
}

func (result *BulkResult) updateRecord(index int, item json.RawMessage, params *ProfessionalParams, existing *models.Professional) {
	if err := existing.Update(params.fields()); err != nil {
		logWriteFailure("update", index, err)
		result.addError(index, item, nonFieldErrors(err.Error()))
		return
	}

	if err := existing.Reload(); err != nil {
		logg.Errorf("bulk upsert: reload after update failed for item %v: %v", index, err)
		result.addError(index, item, nonFieldErrors(err.Error()))
		return
	}

	result.Updated = append(result.Updated, BulkItemResult{Index: index, Professional: existing})
}

func (result *BulkResult) addError(index int, item json.RawMessage, detail interface{}) {
	result.Errors = append(result.Errors, BulkItemError{Index: index, Data: item, Errors: detail})
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func nonFieldErrors(message string) map[string][]string {
	return map[string][]string{"non_field_errors": {message}}
}

// Constraint violations are the caller's data colliding with the store's
// unique indexes - expected traffic, logged at info. Anything else is the
// store misbehaving & worth an error log, even though the caller sees the
// same per-item response shape either way.
func logWriteFailure(op string, index int, err error) {
	if models.IsUniqueConstraintError(err) {
		logg.Infof("bulk upsert: %v rejected for item %v: %v", op, index, err)
		return
	}

	logg.Errorf("bulk upsert: %v failed for item %v: %v", op, index, err)
}
