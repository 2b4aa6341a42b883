package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"restaurant-catalog/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// writeError maps the error taxonomy onto status codes and serialises the
// {errors, status} envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.Printf("[catalog] internal error: %v", err)
	}

	writeJSON(w, status, domain.ErrorBody{
		Errors: domain.MessagesOf(err),
		Status: status,
	})
}

// decode unmarshals and field-validates a request body. On failure the
// error response has already been written and ok is false.
func decode[T any](v *validator.Validate, w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body: %v", err))
		return req, false
	}
	if err := v.Struct(req); err != nil {
		writeError(w, fieldErrors(err))
		return req, false
	}
	return req, true
}

func fieldErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Validationf("%v", err)
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, strings.ToLower(fe.Field())+": is required")
		case "gt":
			messages = append(messages, strings.ToLower(fe.Field())+": must be greater than "+fe.Param())
		default:
			messages = append(messages, strings.ToLower(fe.Field())+": failed "+fe.Tag()+" validation")
		}
	}
	return domain.ValidationErrors(messages)
}
