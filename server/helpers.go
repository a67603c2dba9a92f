package server

import (
	"encoding/json"
	"net/http"
)

// ---------------------------------------------------------------------------------//
// Handler Helper functions
// --------------------------------------------------------------------------------//

func writeJSON(rw http.ResponseWriter, payload interface{}, statusCode int) {
	if statusCode >= http.StatusInternalServerError {
		logg.Error(payload)
	} else if statusCode >= http.StatusBadRequest {
		logg.Info(payload)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(statusCode)
	json.NewEncoder(rw).Encode(payload)
}

// detailError is the shape of a request-level failure, e.g. an unparsable body
func detailError(message string) map[string]string {
	return map[string]string{"detail": message}
}
