package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mannancrackers/shop/app/services"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("writeJSON: failed to encode response: %v", err)
	}
}

// writeCheckoutError flattens a checkout error into the API envelope:
// {success:false, error, error_type, error_code} plus any detail keys at
// the top level.
func writeCheckoutError(w http.ResponseWriter, cerr *services.CheckoutError) {
	body := map[string]interface{}{
		"success":    false,
		"error":      cerr.Message,
		"error_type": string(cerr.Type),
		"error_code": cerr.Code,
	}
	for key, value := range cerr.Details {
		body[key] = value
	}
	writeJSON(w, cerr.Code, body)
}

// writeServiceError routes a service failure to the right envelope:
// typed checkout errors keep their own code and message, anything else
// becomes a generic 500.
func writeServiceError(w http.ResponseWriter, err error, serverMessage string) {
	var cerr *services.CheckoutError
	if errors.As(err, &cerr) {
		writeCheckoutError(w, cerr)
		return
	}

	log.Printf("writeServiceError: ❌ %v", err)
	writeCheckoutError(w, &services.CheckoutError{
		Type:    services.ErrTypeServer,
		Message: serverMessage,
		Code:    http.StatusInternalServerError,
	})
}
